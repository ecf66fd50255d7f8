package testutil

import (
	"context"
	"testing"
)

// TestComponent is a fixture with a start/stop lifecycle that can be rewound
// between cases.
type TestComponent interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Reset(ctx context.Context) error
}

// CleanupFunc stops a component started by Setup.
type CleanupFunc func() error

// Setup starts a test component and returns a cleanup function.
//
//	cleanup, err := testutil.Setup(cassette)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer cleanup()
func Setup(component TestComponent) (CleanupFunc, error) {
	return SetupWithContext(context.Background(), component)
}

// SetupWithContext starts a test component with a custom context.
func SetupWithContext(ctx context.Context, component TestComponent) (CleanupFunc, error) {
	if err := component.Start(ctx); err != nil {
		return nil, err
	}
	return func() error { return component.Stop(ctx) }, nil
}

// THelper provides testing.T integration for fixtures.
type THelper struct {
	t   testing.TB
	ctx context.Context
}

// T wraps a testing.TB so fixtures are cleaned up when the test ends.
func T(t testing.TB) *THelper {
	return &THelper{t: t, ctx: context.Background()}
}

// WithContext sets a custom context for the helper.
func (h *THelper) WithContext(ctx context.Context) *THelper {
	h.ctx = ctx
	return h
}

// Setup starts a component and registers its Stop with t.Cleanup.
func (h *THelper) Setup(component TestComponent) {
	h.t.Helper()
	if err := component.Start(h.ctx); err != nil {
		h.t.Fatalf("failed to start component %s: %v", component.Name(), err)
	}
	h.t.Cleanup(func() {
		if err := component.Stop(h.ctx); err != nil {
			h.t.Errorf("failed to stop component %s: %v", component.Name(), err)
		}
	})
}

// Reset rewinds a component.
func (h *THelper) Reset(component TestComponent) {
	h.t.Helper()
	if err := component.Reset(h.ctx); err != nil {
		h.t.Fatalf("failed to reset component %s: %v", component.Name(), err)
	}
}

// Cassette loads and starts a named cassette.
func (h *THelper) Cassette(name string) *Cassette {
	h.t.Helper()
	c, err := LoadCassette(name)
	if err != nil {
		h.t.Fatalf("failed to load cassette %s: %v", name, err)
	}
	h.Setup(c)
	return c
}

// Replay starts an inline cassette.
func (h *THelper) Replay(interactions ...Interaction) *Cassette {
	h.t.Helper()
	c := NewCassette(h.t.Name(), interactions...)
	h.Setup(c)
	return c
}
