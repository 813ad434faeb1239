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
	"errors"
	"time"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// ContinueWith runs fn once t completes. fn receives the completed task.
// The continuation is canceled if ctx ends first.
func ContinueWith[T, U any](ctx context.Context, t Task[T], fn func(ctx context.Context, prev Task[T]) (U, error)) Task[U] {
	return Run(ctx, func(ctx context.Context) (U, error) {
		select {
		case <-t.Done():
		case <-ctx.Done():
			var zero U
			return zero, ctx.Err()
		}
		return fn(ctx, t)
	})
}

// WhenAll completes when every task has completed. The results keep the
// order of tasks. Failures are aggregated: if any task faulted the
// aggregate holds the faults only, so the combined task is faulted;
// otherwise it holds the cancellations and the combined task is canceled.
func WhenAll[T any](ctx context.Context, tasks ...Task[T]) Task[[]T] {
	return Run(ctx, func(ctx context.Context) ([]T, error) {
		results := make([]T, len(tasks))
		var faults, cancellations []error
		for i, t := range tasks {
			select {
			case <-t.Done():
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			v, err := t.Result()
			results[i] = v
			switch classify(err) {
			case StatusFaulted:
				faults = append(faults, err)
			case StatusCanceled:
				cancellations = append(cancellations, err)
			}
		}
		if len(faults) > 0 {
			return results, utilerrors.Reduce(utilerrors.NewAggregate(faults))
		}
		if len(cancellations) > 0 {
			return results, utilerrors.Reduce(utilerrors.NewAggregate(cancellations))
		}
		return results, nil
	})
}

// WhenAny completes with the index of the first task to complete. It
// does not report that task's error; inspect tasks[i] for it.
func WhenAny[T any](ctx context.Context, tasks ...Task[T]) Task[int] {
	if len(tasks) == 0 {
		return FromError[int](ErrNoTasks)
	}
	first := make(chan int, len(tasks))
	for i, t := range tasks {
		go func() {
			<-t.Done()
			first <- i
		}()
	}
	return Run(ctx, func(ctx context.Context) (int, error) {
		select {
		case i := <-first:
			return i, nil
		case <-ctx.Done():
			return -1, ctx.Err()
		}
	})
}

// Delay returns a task that completes after d, or is canceled when ctx
// ends first.
func Delay(ctx context.Context, d time.Duration) Task[struct{}] {
	return Run(ctx, func(ctx context.Context) (struct{}, error) {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return struct{}{}, nil
		case <-ctx.Done():
			return struct{}{}, ctx.Err()
		}
	})
}

// IsCancellation reports whether err came from an ended context
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
