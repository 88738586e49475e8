package tagged

import (
	"github.com/amp-labs/semtype/semantic"
	"github.com/google/uuid"
)

// UUIDKind is the semantic kind of UUIDs tagged with Tag.
type UUIDKind[Tag any] struct{}

func (UUIDKind[Tag]) Name() string {
	return "UUID[" + tagName[Tag]() + "]"
}

// Valid rejects the nil UUID.
func (UUIDKind[Tag]) Valid(id uuid.UUID) bool {
	return id != uuid.Nil
}

// UUID is a non-nil UUID belonging to the Tag domain.
type UUID[Tag any] = semantic.Type[uuid.UUID, UUIDKind[Tag]]

func NewUUID[Tag any](raw uuid.UUID) (UUID[Tag], error) {
	return semantic.New[UUIDKind[Tag]](raw)
}

// ParseUUID parses s in any format uuid.Parse accepts and wraps the result.
func ParseUUID[Tag any](s string) (UUID[Tag], error) {
	raw, err := uuid.Parse(s)
	if err != nil {
		return UUID[Tag]{}, err
	}

	return NewUUID[Tag](raw)
}

// GenerateUUID returns a fresh random (version 4) UUID in the Tag domain.
func GenerateUUID[Tag any]() (UUID[Tag], error) {
	raw, err := uuid.NewRandom()
	if err != nil {
		return UUID[Tag]{}, err
	}

	return NewUUID[Tag](raw)
}
