// Package match uses id domains correctly and must compile.
package match

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

func Lookup() bool {
	author := Author{ID: tagged.Must[Author](7)}
	book := bookByID(tagged.Must[Book](7))
	book.AuthorID = author.ID

	return book.ID == tagged.Must[Book](7) && book.AuthorID == author.ID
}
