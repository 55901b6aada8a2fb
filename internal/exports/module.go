// Package exports is the boundary a host consumes: a set of named exports,
// each either a static value or a zero-argument function.
package exports

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	ErrUnknownExport   = errors.New("unknown export")
	ErrDuplicateExport = errors.New("duplicate export")
	ErrNotCallable     = errors.New("export is not callable")
	ErrNotValue        = errors.New("export is a function")
)

// Kind tells static values apart from callables.
type Kind string

const (
	KindValue    Kind = "value"
	KindFunction Kind = "function"
)

// Func is a zero-argument export. Each call may build a fresh result.
type Func func(ctx context.Context) (any, error)

type export struct {
	kind  Kind
	value any
	fn    Func
}

// Module holds exports in registration order. Exports are written once
// during initialization and only read afterwards.
type Module struct {
	mu      sync.RWMutex
	exports map[string]export
	order   []string
}

func NewModule() *Module {
	return &Module{exports: make(map[string]export)}
}

// ExportValue binds name to a static value shared by every reader. Slice
// values are copied, so the caller keeps no handle on the stored slice.
// Elements must themselves be immutable (e.g. frozen mappings).
func (m *Module) ExportValue(name string, v any) error {
	return m.add(name, export{kind: KindValue, value: shallowCopy(v)})
}

// ExportFunc binds name to a callable.
func (m *Module) ExportFunc(name string, fn Func) error {
	if fn == nil {
		return fmt.Errorf("export %q: nil function", name)
	}
	return m.add(name, export{kind: KindFunction, fn: fn})
}

func (m *Module) add(name string, e export) error {
	if name == "" {
		return errors.New("export name is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.exports[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateExport, name)
	}
	m.exports[name] = e
	m.order = append(m.order, name)
	return nil
}

// Names returns export names in registration order.
func (m *Module) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Kind reports what kind of export name is.
func (m *Module) Kind(name string) (Kind, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.exports[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownExport, name)
	}
	return e.kind, nil
}

// Get returns the value bound to name. Function exports are not invoked.
func (m *Module) Get(name string) (any, error) {
	m.mu.RLock()
	e, ok := m.exports[name]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExport, name)
	}
	if e.kind != KindValue {
		return nil, fmt.Errorf("%w: %s", ErrNotValue, name)
	}
	return shallowCopy(e.value), nil
}

// Call invokes the function bound to name.
func (m *Module) Call(ctx context.Context, name string) (any, error) {
	m.mu.RLock()
	e, ok := m.exports[name]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExport, name)
	}
	if e.kind != KindFunction {
		return nil, fmt.Errorf("%w: %s", ErrNotCallable, name)
	}
	return e.fn(ctx)
}

// shallowCopy returns a fresh slice for slice values and v otherwise.
func shallowCopy(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(out, rv)
	return out.Interface()
}
