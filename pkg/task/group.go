/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package task

import (
	"context"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// Group runs goroutines and collects the first error.
type Group interface {
	Go(fn func() error)
	TryGo(fn func() error) bool
	SetLimit(n int)
	Wait() error
}

// GroupAdapter adapts an *errgroup.Group to Group.
type GroupAdapter struct {
	abstraction.Adapter[*errgroup.Group]
}

var _ Group = (*GroupAdapter)(nil)

// WrapGroup wraps g
func WrapGroup(g *errgroup.Group) *GroupAdapter {
	return &GroupAdapter{Adapter: abstraction.NewAdapter(g)}
}

// NewGroup forwards to errgroup.WithContext. The returned context is
// canceled when a goroutine fails or Wait returns.
func NewGroup(ctx context.Context) (*GroupAdapter, context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	return WrapGroup(g), ctx
}

func (g *GroupAdapter) Go(fn func() error)         { g.Unwrap().Go(fn) }
func (g *GroupAdapter) TryGo(fn func() error) bool { return g.Unwrap().TryGo(fn) }
func (g *GroupAdapter) SetLimit(n int)             { g.Unwrap().SetLimit(n) }
func (g *GroupAdapter) Wait() error                { return g.Unwrap().Wait() }

// Semaphore is a weighted semaphore.
type Semaphore interface {
	Acquire(ctx context.Context, n int64) error
	TryAcquire(n int64) bool
	Release(n int64)
}

// SemaphoreAdapter adapts a *semaphore.Weighted to Semaphore.
type SemaphoreAdapter struct {
	abstraction.Adapter[*semaphore.Weighted]
}

var _ Semaphore = (*SemaphoreAdapter)(nil)

// NewSemaphore creates a semaphore with total weight n
func NewSemaphore(n int64) *SemaphoreAdapter {
	return WrapSemaphore(semaphore.NewWeighted(n))
}

// WrapSemaphore wraps s
func WrapSemaphore(s *semaphore.Weighted) *SemaphoreAdapter {
	return &SemaphoreAdapter{Adapter: abstraction.NewAdapter(s)}
}

func (s *SemaphoreAdapter) Acquire(ctx context.Context, n int64) error {
	return s.Unwrap().Acquire(ctx, n)
}

func (s *SemaphoreAdapter) TryAcquire(n int64) bool { return s.Unwrap().TryAcquire(n) }
func (s *SemaphoreAdapter) Release(n int64)         { s.Unwrap().Release(n) }

// Pool runs context-aware goroutines with bounded concurrency.
type Pool interface {
	Go(fn func(ctx context.Context) error)
	Wait() error
}

// PoolAdapter adapts a conc *pool.ContextPool to Pool.
type PoolAdapter struct {
	abstraction.Adapter[*pool.ContextPool]
}

var _ Pool = (*PoolAdapter)(nil)

// PoolOptions configures NewPool
type PoolOptions struct {
	// MaxGoroutines bounds concurrency. Zero means unbounded.
	MaxGoroutines int
	// CancelOnError cancels the pool's context after the first failure.
	CancelOnError bool
}

// NewPool creates a pool whose goroutines receive a context derived from
// ctx.
func NewPool(ctx context.Context, opts PoolOptions) *PoolAdapter {
	p := pool.New()
	if opts.MaxGoroutines > 0 {
		p = p.WithMaxGoroutines(opts.MaxGoroutines)
	}
	cp := p.WithContext(ctx)
	if opts.CancelOnError {
		cp = cp.WithCancelOnError()
	}
	return WrapPool(cp)
}

// WrapPool wraps p
func WrapPool(p *pool.ContextPool) *PoolAdapter {
	return &PoolAdapter{Adapter: abstraction.NewAdapter(p)}
}

func (p *PoolAdapter) Go(fn func(ctx context.Context) error) { p.Unwrap().Go(fn) }

// Wait returns the combined errors of all goroutines.
func (p *PoolAdapter) Wait() error { return p.Unwrap().Wait() }
