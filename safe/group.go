// Package safe provides a panic-safe error group with context awareness and
// error aggregation for concurrent operations. Server lifecycles run their
// accept loops and shutdown watchers under it so a panic in one side never
// takes the process down silently.
package safe

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Evavic44/faker/errors"
	"github.com/Evavic44/faker/logging"
)

// Group enhances errgroup.Group with panic recovery and error aggregation.
type Group struct {
	eg      *errgroup.Group
	ctx     context.Context
	mu      sync.Mutex
	errs    []error
	recover RecoverFunc
}

// RecoverFunc defines a custom panic recovery handler.
type RecoverFunc func(r any)

// DefaultRecover logs panics with stack traces.
func DefaultRecover(r any) {
	logging.Default().Error("recovered from panic",
		logging.AnyAttr("panic", r),
		logging.StringAttr("stack", string(debug.Stack())),
	)
}

// Option configures a Group.
type Option func(*Group)

// WithRecover sets a custom panic recovery handler.
func WithRecover(recover RecoverFunc) Option {
	return func(g *Group) {
		g.recover = recover
	}
}

// WithContext initializes a Group with a context and options. The returned
// context is canceled when any task fails.
func WithContext(ctx context.Context, opts ...Option) (*Group, context.Context) {
	eg, ctx := errgroup.WithContext(ctx)
	g := &Group{
		eg:   eg,
		ctx:  ctx,
		errs: make([]error, 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.recover == nil {
		g.recover = DefaultRecover
	}
	return g, ctx
}

// Go runs a function in a goroutine with panic recovery.
// Errors are collected and can be retrieved via Wait().
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.eg.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				g.recover(r)
				err = fmt.Errorf("panic: %v\n%s", r, string(debug.Stack()))
				g.collect(err)
			}
		}()
		err = fn(g.ctx)
		if err != nil {
			g.collect(err)
		}
		return err
	})
}

// Wait blocks until all goroutines complete and returns the collected
// errors as one aggregated error, nil when every task succeeded.
func (g *Group) Wait() error {
	_ = g.eg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.errs) == 0 {
		return nil
	}
	return errors.Prefix(errors.Append(nil, g.errs...), "safe:")
}

// Errors returns a copy of all collected errors.
func (g *Group) Errors() []error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]error{}, g.errs...)
}

func (g *Group) collect(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}
