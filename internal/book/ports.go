package book

import (
	"context"
)

// Repository defines the contract for reading the book catalog.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
}

// StaticRepository serves the compiled-in catalog. It holds no state and is
// safe for concurrent use.
type StaticRepository struct{}

func NewStaticRepository() StaticRepository {
	return StaticRepository{}
}

func (StaticRepository) List(ctx context.Context) ([]Book, error) {
	return Catalog(), nil
}
