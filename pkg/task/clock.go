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
	"time"

	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// Timer fires once after a duration.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
	Reset(d time.Duration) bool
}

// TimerAdapter adapts a *time.Timer to Timer.
type TimerAdapter struct {
	abstraction.Adapter[*time.Timer]
}

var _ Timer = (*TimerAdapter)(nil)

// NewTimer wraps t
func NewTimer(t *time.Timer) *TimerAdapter {
	return &TimerAdapter{Adapter: abstraction.NewAdapter(t)}
}

func (t *TimerAdapter) C() <-chan time.Time        { return t.Unwrap().C }
func (t *TimerAdapter) Stop() bool                 { return t.Unwrap().Stop() }
func (t *TimerAdapter) Reset(d time.Duration) bool { return t.Unwrap().Reset(d) }

// Clock tells time and creates timers.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	NewTimer(d time.Duration) Timer
	After(d time.Duration) <-chan time.Time
	Sleep(d time.Duration)
}

// RealClock forwards to package time.
type RealClock struct{}

var _ Clock = RealClock{}

func (RealClock) Now() time.Time                         { return time.Now() }
func (RealClock) Since(t time.Time) time.Duration        { return time.Since(t) }
func (RealClock) NewTimer(d time.Duration) Timer         { return NewTimer(time.NewTimer(d)) }
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
func (RealClock) Sleep(d time.Duration)                  { time.Sleep(d) }

// Poll checks cond every interval until it returns true, returns an
// error, or timeout elapses. cond runs once immediately. Use
// wait.Interrupted to detect a timeout or an ended ctx.
func Poll(ctx context.Context, interval, timeout time.Duration, cond func(ctx context.Context) (bool, error)) error {
	return wait.PollUntilContextTimeout(ctx, interval, timeout, true, cond)
}
