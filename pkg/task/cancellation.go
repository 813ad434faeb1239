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
	"sync"
	"time"
)

// CancellationSource owns a cancelable context. The zero value is not
// usable; create one with NewCancellationSource.
type CancellationSource struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	timer *time.Timer
}

// NewCancellationSource derives a cancelable context from parent. A nil
// parent means context.Background().
func NewCancellationSource(parent context.Context) *CancellationSource {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &CancellationSource{ctx: ctx, cancel: cancel}
}

// Context returns the context canceled by Cancel
func (s *CancellationSource) Context() context.Context {
	return s.ctx
}

// Cancel cancels the context. Later calls do nothing.
func (s *CancellationSource) Cancel() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	s.cancel()
}

// CancelAfter schedules Cancel after d, replacing any earlier schedule.
func (s *CancellationSource) CancelAfter(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, s.cancel)
}

// IsCancellationRequested reports whether the context has ended
func (s *CancellationSource) IsCancellationRequested() bool {
	return s.ctx.Err() != nil
}

// Close releases the source's resources by canceling its context.
func (s *CancellationSource) Close() error {
	s.Cancel()
	return nil
}
