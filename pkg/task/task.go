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

// Package task provides a channel-backed future with combinators, and
// interfaces in front of the synchronization primitives from sync,
// golang.org/x/sync and sourcegraph/conc.
package task

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
)

// Status is the lifecycle state of a Task.
type Status int

const (
	// StatusRunning means the task has not completed yet.
	StatusRunning Status = iota
	StatusRanToCompletion
	StatusFaulted
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusRanToCompletion:
		return "RanToCompletion"
	case StatusFaulted:
		return "Faulted"
	case StatusCanceled:
		return "Canceled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ErrNoTasks is returned by combinators that need at least one task
var ErrNoTasks = errors.New("no tasks given")

// PanicError is the error of a task whose function panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Value)
}

// Unwrap returns the panic value when it is an error
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Task is a value that becomes available once an asynchronous operation
// completes.
type Task[T any] interface {
	// Done is closed when the task completes.
	Done() <-chan struct{}
	// Wait blocks until the task completes or ctx ends. In the latter case
	// it returns ctx's error and the task keeps running.
	Wait(ctx context.Context) (T, error)
	// Result blocks until the task completes.
	Result() (T, error)
	Status() Status
	IsCompleted() bool
	IsFaulted() bool
	IsCanceled() bool
	// Err returns the task's error, or nil while it is running.
	Err() error
}

type future[T any] struct {
	done   chan struct{}
	once   sync.Once
	value  T
	err    error
	status Status
}

var _ Task[struct{}] = (*future[struct{}])(nil)

func newFuture[T any]() *future[T] {
	return &future[T]{done: make(chan struct{})}
}

// complete records the outcome. Only the first call has an effect.
func (f *future[T]) complete(v T, err error) bool {
	completed := false
	f.once.Do(func() {
		f.value, f.err, f.status = v, err, classify(err)
		close(f.done)
		completed = true
	})
	return completed
}

func classify(err error) Status {
	switch {
	case err == nil:
		return StatusRanToCompletion
	case IsCancellation(err):
		return StatusCanceled
	default:
		return StatusFaulted
	}
}

func (f *future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (f *future[T]) Result() (T, error) {
	<-f.done
	return f.value, f.err
}

func (f *future[T]) Status() Status {
	select {
	case <-f.done:
		return f.status
	default:
		return StatusRunning
	}
}

func (f *future[T]) IsCompleted() bool { return f.Status() != StatusRunning }
func (f *future[T]) IsFaulted() bool   { return f.Status() == StatusFaulted }
func (f *future[T]) IsCanceled() bool  { return f.Status() == StatusCanceled }

func (f *future[T]) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// Run starts fn on a new goroutine. fn receives ctx and should return
// when it ends. If ctx has already ended, fn is not started and the task
// is canceled.
func Run[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Task[T] {
	f := newFuture[T]()
	if err := ctx.Err(); err != nil {
		var zero T
		f.complete(zero, err)
		return f
	}
	go func() {
		var (
			v   T
			err error
		)
		defer func() {
			if r := recover(); r != nil {
				var zero T
				f.complete(zero, &PanicError{Value: r, Stack: debug.Stack()})
				return
			}
			f.complete(v, err)
		}()
		v, err = fn(ctx)
	}()
	return f
}

// FromResult returns a task that has already completed with v
func FromResult[T any](v T) Task[T] {
	f := newFuture[T]()
	f.complete(v, nil)
	return f
}

// FromError returns a task that has already failed with err. A
// cancellation error makes the task canceled rather than faulted.
func FromError[T any](err error) Task[T] {
	f := newFuture[T]()
	var zero T
	f.complete(zero, err)
	return f
}

// Canceled returns a task that has already been canceled
func Canceled[T any]() Task[T] {
	return FromError[T](context.Canceled)
}

// CompletionSource produces a Task whose outcome is set by hand.
type CompletionSource[T any] struct {
	f *future[T]
}

// NewCompletionSource creates a source with a running task
func NewCompletionSource[T any]() *CompletionSource[T] {
	return &CompletionSource[T]{f: newFuture[T]()}
}

// Task returns the task controlled by s
func (s *CompletionSource[T]) Task() Task[T] {
	return s.f
}

// TrySetResult completes the task with v. It reports false if the task
// had already completed.
func (s *CompletionSource[T]) TrySetResult(v T) bool {
	return s.f.complete(v, nil)
}

// TrySetError fails the task with err
func (s *CompletionSource[T]) TrySetError(err error) bool {
	if err == nil {
		err = errors.New("task failed with a nil error")
	}
	var zero T
	return s.f.complete(zero, err)
}

// TrySetCanceled cancels the task
func (s *CompletionSource[T]) TrySetCanceled() bool {
	var zero T
	return s.f.complete(zero, context.Canceled)
}
