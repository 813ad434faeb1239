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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

var _ = Describe("Task", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Run", func() {
		It("completes with the function's result", func() {
			t := Run(ctx, func(context.Context) (int, error) {
				return 42, nil
			})
			v, err := t.Result()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(42))
			Expect(t.Status()).To(Equal(StatusRanToCompletion))
			Expect(t.IsCompleted()).To(BeTrue())
			Expect(t.IsFaulted()).To(BeFalse())
		})

		It("faults when the function fails", func() {
			boom := errors.New("boom")
			t := Run(ctx, func(context.Context) (int, error) {
				return 0, boom
			})
			Eventually(t.Done()).Should(BeClosed())
			Expect(t.IsFaulted()).To(BeTrue())
			Expect(t.Err()).To(MatchError(boom))
		})

		It("is canceled when the function returns a cancellation error", func() {
			cctx, cancel := context.WithCancel(ctx)
			t := Run(cctx, func(ctx context.Context) (int, error) {
				<-ctx.Done()
				return 0, ctx.Err()
			})
			Consistently(t.Done(), "50ms").ShouldNot(BeClosed())
			Expect(t.Status()).To(Equal(StatusRunning))
			Expect(t.Err()).NotTo(HaveOccurred())

			cancel()
			Eventually(t.Done()).Should(BeClosed())
			Expect(t.IsCanceled()).To(BeTrue())
			Expect(t.IsFaulted()).To(BeFalse())
		})

		It("does not start when the context has already ended", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			started := false
			t := Run(cctx, func(context.Context) (int, error) {
				started = true
				return 1, nil
			})
			Expect(t.IsCanceled()).To(BeTrue())
			Expect(started).To(BeFalse())
		})

		It("faults with a PanicError when the function panics", func() {
			t := Run(ctx, func(context.Context) (int, error) {
				panic("kaboom")
			})
			_, err := t.Result()
			var panicErr *PanicError
			Expect(errors.As(err, &panicErr)).To(BeTrue())
			Expect(panicErr.Value).To(Equal("kaboom"))
			Expect(panicErr.Stack).NotTo(BeEmpty())
			Expect(t.IsFaulted()).To(BeTrue())
		})

		It("stops waiting when the caller's context ends", func() {
			t := Run(ctx, func(ctx context.Context) (int, error) {
				time.Sleep(time.Second)
				return 1, nil
			})
			wctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
			defer cancel()
			_, err := t.Wait(wctx)
			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(t.IsCompleted()).To(BeFalse())
		})
	})

	Describe("completed tasks", func() {
		It("builds them from values and errors", func() {
			v, err := FromResult("x").Result()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("x"))

			Expect(FromError[int](errors.New("bad")).IsFaulted()).To(BeTrue())
			Expect(FromError[int](context.DeadlineExceeded).IsCanceled()).To(BeTrue())
			Expect(Canceled[int]().IsCanceled()).To(BeTrue())
		})

		It("is set once through a completion source", func() {
			src := NewCompletionSource[int]()
			Expect(src.Task().IsCompleted()).To(BeFalse())
			Expect(src.TrySetResult(7)).To(BeTrue())
			Expect(src.TrySetError(errors.New("late"))).To(BeFalse())
			Expect(src.TrySetCanceled()).To(BeFalse())

			v, err := src.Task().Result()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(7))
		})
	})

	Describe("ContinueWith", func() {
		It("runs after the antecedent and sees its outcome", func() {
			src := NewCompletionSource[int]()
			next := ContinueWith(ctx, src.Task(), func(_ context.Context, prev Task[int]) (string, error) {
				v, err := prev.Result()
				if err != nil {
					return "", err
				}
				return time.Duration(v).String(), nil
			})
			Consistently(next.Done(), "20ms").ShouldNot(BeClosed())

			src.TrySetResult(int(time.Second))
			v, err := next.Result()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("1s"))
		})

		It("is canceled when its context ends first", func() {
			cctx, cancel := context.WithCancel(ctx)
			next := ContinueWith(cctx, NewCompletionSource[int]().Task(), func(context.Context, Task[int]) (int, error) {
				return 1, nil
			})
			cancel()
			Eventually(next.Done()).Should(BeClosed())
			Expect(next.IsCanceled()).To(BeTrue())
		})
	})

	Describe("WhenAll", func() {
		It("returns results in order", func() {
			slow := Run(ctx, func(context.Context) (int, error) {
				time.Sleep(20 * time.Millisecond)
				return 1, nil
			})
			all := WhenAll(ctx, slow, FromResult(2), FromResult(3))
			v, err := all.Result()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal([]int{1, 2, 3}))
		})

		It("aggregates faults", func() {
			e1, e2 := errors.New("one"), errors.New("two")
			all := WhenAll(ctx, FromError[int](e1), FromResult(2), FromError[int](e2), Canceled[int]())
			v, err := all.Result()
			Expect(v).To(Equal([]int{0, 2, 0, 0}))
			var agg utilerrors.Aggregate
			Expect(errors.As(err, &agg)).To(BeTrue())
			Expect(agg.Errors()).To(HaveLen(2))
			Expect(errors.Is(err, e2)).To(BeTrue())
			Expect(all.IsFaulted()).To(BeTrue())
		})

		It("is canceled when children were only canceled", func() {
			all := WhenAll(ctx, FromResult(1), Canceled[int]())
			Eventually(all.Done()).Should(BeClosed())
			Expect(all.IsCanceled()).To(BeTrue())
			Expect(all.Err()).To(MatchError(context.Canceled))
		})

		It("completes immediately with no tasks", func() {
			v, err := WhenAll[int](ctx).Result()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeEmpty())
		})
	})

	Describe("WhenAny", func() {
		It("reports the first task to complete", func() {
			pending := NewCompletionSource[int]()
			first := WhenAny(ctx, pending.Task(), FromResult(5))
			i, err := first.Result()
			Expect(err).NotTo(HaveOccurred())
			Expect(i).To(Equal(1))
		})

		It("fails without tasks", func() {
			_, err := WhenAny[int](ctx).Result()
			Expect(err).To(MatchError(ErrNoTasks))
		})
	})

	Describe("Delay", func() {
		It("completes after the duration", func() {
			start := time.Now()
			_, err := Delay(ctx, 20*time.Millisecond).Result()
			Expect(err).NotTo(HaveOccurred())
			Expect(time.Since(start)).To(BeNumerically(">=", 20*time.Millisecond))
		})

		It("is canceled by its context", func() {
			cctx, cancel := context.WithCancel(ctx)
			d := Delay(cctx, time.Hour)
			cancel()
			Eventually(d.Done()).Should(BeClosed())
			Expect(d.IsCanceled()).To(BeTrue())
		})
	})

	It("names statuses", func() {
		Expect(StatusFaulted.String()).To(Equal("Faulted"))
		Expect(Status(99).String()).To(Equal("Status(99)"))
	})
})
