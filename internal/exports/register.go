package exports

import (
	"allbooks/internal/book"
	"context"
	"fmt"
)

const (
	NameChadwick = "chadwick"
	NameBooks    = "books"
	NameGetBooks = "get_books"
)

// Register installs the book exports. chadwick and books are built once
// here; get_books rebuilds the array on every call. All three read the
// catalog through svc.
func Register(ctx context.Context, m *Module, svc *book.Service) error {
	chadwick, err := svc.First(ctx)
	if err != nil {
		return fmt.Errorf("build %s: %w", NameChadwick, err)
	}
	if err := m.ExportValue(NameChadwick, chadwick); err != nil {
		return err
	}

	books, err := svc.Books(ctx)
	if err != nil {
		return fmt.Errorf("build %s: %w", NameBooks, err)
	}
	if err := m.ExportValue(NameBooks, books); err != nil {
		return err
	}

	return m.ExportFunc(NameGetBooks, func(ctx context.Context) (any, error) {
		return svc.Books(ctx)
	})
}

// New returns a module with the book exports installed.
func New(ctx context.Context, svc *book.Service) (*Module, error) {
	m := NewModule()
	if err := Register(ctx, m, svc); err != nil {
		return nil, err
	}
	return m, nil
}
