package book

import (
	"context"
	"fmt"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Books builds a fresh array of mappings from the catalog on every call.
func (s *Service) Books(ctx context.Context) ([]*Mapping, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return ToArray(books), nil
}

// BookAt returns the mapping for the record at index i.
func (s *Service) BookAt(ctx context.Context, i int) (*Mapping, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if i < 0 || i >= len(books) {
		return nil, fmt.Errorf("%w: index %d", ErrNotFound, i)
	}
	return ToMapping(books[i]), nil
}

// First returns the mapping for the first catalog record.
func (s *Service) First(ctx context.Context) (*Mapping, error) {
	return s.BookAt(ctx, 0)
}
