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
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/util/wait"
)

var _ = Describe("Primitives", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("CancellationSource", func() {
		It("cancels its context", func() {
			src := NewCancellationSource(ctx)
			Expect(src.IsCancellationRequested()).To(BeFalse())
			src.Cancel()
			Expect(src.IsCancellationRequested()).To(BeTrue())
			Expect(src.Context().Err()).To(MatchError(context.Canceled))
			src.Cancel()
		})

		It("cancels after a delay", func() {
			src := NewCancellationSource(nil)
			defer src.Close()
			src.CancelAfter(time.Hour)
			src.CancelAfter(10 * time.Millisecond)
			Eventually(src.Context().Done()).Should(BeClosed())
		})

		It("follows its parent", func() {
			parent, cancel := context.WithCancel(ctx)
			src := NewCancellationSource(parent)
			cancel()
			Eventually(src.IsCancellationRequested).Should(BeTrue())
		})
	})

	Describe("Group", func() {
		It("returns the first error and cancels the derived context", func() {
			g, gctx := NewGroup(ctx)
			boom := errors.New("boom")
			g.Go(func() error { return boom })
			g.Go(func() error {
				<-gctx.Done()
				return gctx.Err()
			})
			Expect(g.Wait()).To(MatchError(boom))
		})

		It("limits concurrency", func() {
			g, _ := NewGroup(ctx)
			g.SetLimit(1)
			release := make(chan struct{})
			g.Go(func() error {
				<-release
				return nil
			})
			Expect(g.TryGo(func() error { return nil })).To(BeFalse())
			close(release)
			Expect(g.Wait()).To(Succeed())
		})
	})

	Describe("Semaphore", func() {
		It("bounds the acquired weight", func() {
			sem := NewSemaphore(2)
			Expect(sem.Acquire(ctx, 2)).To(Succeed())
			Expect(sem.TryAcquire(1)).To(BeFalse())

			cctx, cancel := context.WithCancel(ctx)
			cancel()
			Expect(sem.Acquire(cctx, 1)).To(MatchError(context.Canceled))

			sem.Release(1)
			Expect(sem.TryAcquire(1)).To(BeTrue())
		})
	})

	Describe("Pool", func() {
		It("runs every goroutine and combines errors", func() {
			p := NewPool(ctx, PoolOptions{MaxGoroutines: 2})
			var ran atomic.Int32
			e1, e2 := errors.New("one"), errors.New("two")
			for _, err := range []error{nil, e1, nil, e2} {
				p.Go(func(context.Context) error {
					ran.Add(1)
					return err
				})
			}
			err := p.Wait()
			Expect(ran.Load()).To(Equal(int32(4)))
			Expect(errors.Is(err, e1)).To(BeTrue())
			Expect(errors.Is(err, e2)).To(BeTrue())
		})

		It("cancels the context on error when asked", func() {
			p := NewPool(ctx, PoolOptions{CancelOnError: true})
			p.Go(func(context.Context) error { return errors.New("fail") })
			p.Go(func(ctx context.Context) error {
				<-ctx.Done()
				return nil
			})
			Expect(p.Wait()).To(HaveOccurred())
		})
	})

	Describe("locks", func() {
		It("forwards to sync.Mutex", func() {
			var raw sync.Mutex
			m := NewMutex(&raw)
			m.Lock()
			Expect(raw.TryLock()).To(BeFalse())
			Expect(m.TryLock()).To(BeFalse())
			m.Unlock()
			Expect(m.TryLock()).To(BeTrue())
			m.Unlock()
		})

		It("forwards to sync.RWMutex", func() {
			m := NewRWMutex(nil)
			m.RLock()
			Expect(m.TryRLock()).To(BeTrue())
			Expect(m.TryLock()).To(BeFalse())
			m.RUnlock()
			m.RLocker().Unlock()
			Expect(m.TryLock()).To(BeTrue())
			m.Unlock()
		})

		It("forwards to sync.WaitGroup and sync.Once", func() {
			wg := NewWaitGroup(nil)
			once := NewOnce(nil)
			var calls atomic.Int32
			for range 3 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					once.Do(func() { calls.Add(1) })
				}()
			}
			wg.Wait()
			Expect(calls.Load()).To(Equal(int32(1)))
		})
	})

	Describe("Clock", func() {
		It("creates working timers", func() {
			var clock Clock = RealClock{}
			start := clock.Now()
			timer := clock.NewTimer(time.Hour)
			Expect(timer.Stop()).To(BeTrue())
			timer.Reset(5 * time.Millisecond)
			Eventually(timer.C()).Should(Receive())
			Eventually(clock.After(time.Millisecond)).Should(Receive())
			clock.Sleep(time.Millisecond)
			Expect(clock.Since(start)).To(BeNumerically(">", 0))
		})
	})

	Describe("Poll", func() {
		It("returns once the condition holds", func() {
			var n atomic.Int32
			err := Poll(ctx, time.Millisecond, time.Second, func(context.Context) (bool, error) {
				return n.Add(1) >= 3, nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(n.Load()).To(Equal(int32(3)))
		})

		It("reports the condition's error", func() {
			boom := errors.New("boom")
			err := Poll(ctx, time.Millisecond, time.Second, func(context.Context) (bool, error) {
				return false, boom
			})
			Expect(err).To(MatchError(boom))
		})

		It("times out", func() {
			err := Poll(ctx, time.Millisecond, 20*time.Millisecond, func(context.Context) (bool, error) {
				return false, nil
			})
			Expect(wait.Interrupted(err)).To(BeTrue())
		})
	})
})
