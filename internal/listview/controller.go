// Package listview sequences list fetches so that the most recently issued
// request's rows are what ends up displayed, even when an older in-flight
// response resolves later.
package listview

import (
	"context"
	"sync"
)

type FetchFunc[T any] func(ctx context.Context) ([]T, error)

type Controller[T any] struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
	rows    []T
}

func NewController[T any]() *Controller[T] {
	return &Controller[T]{}
}

// Refresh issues a fetch and applies its rows unless a newer fetch has
// already been applied. Stale responses are discarded silently; stale errors
// are discarded too, since a newer fetch supersedes them.
func (c *Controller[T]) Refresh(ctx context.Context, fetch FetchFunc[T]) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.mu.Unlock()

	rows, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.applied {
		return nil
	}
	c.applied = seq

	if err != nil {
		return err
	}
	c.rows = rows
	return nil
}

func (c *Controller[T]) Rows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows
}
