// Package mismatch mixes id domains and must not compile.
package mismatch

import "github.com/amp-labs/semtype/tagged"

type Book struct {
	ID       tagged.ID[int, Book]
	AuthorID tagged.ID[int, Author]
}

type Author struct {
	ID tagged.ID[int, Author]
}

func bookByID(id tagged.ID[int, Book]) Book {
	return Book{ID: id}
}

func mixUp() {
	authorID := tagged.Must[Author](7)
	bookID := tagged.Must[Book](7)

	_ = bookByID(authorID)
	_ = bookByID(7)
	_ = bookID == authorID

	var book Book
	book.AuthorID = bookID
}
