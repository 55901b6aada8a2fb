package book

import (
	"errors"
)

// ErrNotFound is returned when a catalog index is out of range.
var ErrNotFound = errors.New("book not found")

// Book is an immutable book record. All three fields are always present.
type Book struct {
	Title  string
	Author string
	Year   uint32
}

// catalog is the fixed, ordered book list compiled into the module.
var catalog = [...]Book{
	{Title: "Chadwick the Crab", Author: "Priscilla Cummings", Year: 2009},
	{Title: "The Little Prince", Author: "Antoine de Saint-Exupéry", Year: 1943},
	{Title: "The Hobbit", Author: "J. R. R. Tolkien", Year: 1937},
}

// Catalog returns a copy of the fixed catalog in its defined order.
func Catalog() []Book {
	out := make([]Book, len(catalog))
	copy(out, catalog[:])
	return out
}

// ToMapping converts a record into a fresh, frozen mapping holding exactly
// title, author and year, in that order.
func ToMapping(b Book) *Mapping {
	m := NewMapping(3)
	_ = m.Set("title", b.Title)
	_ = m.Set("author", b.Author)
	_ = m.Set("year", float64(b.Year))
	return m.Freeze()
}

// ToArray converts records into mappings, preserving order. The result is
// never nil, so an empty input encodes as [].
func ToArray(books []Book) []*Mapping {
	out := make([]*Mapping, len(books))
	for i, b := range books {
		out[i] = ToMapping(b)
	}
	return out
}
