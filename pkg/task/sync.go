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
	"sync"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// Locker is a lock that can also be tried.
type Locker interface {
	sync.Locker
	TryLock() bool
}

// Mutex adapts a *sync.Mutex to Locker.
type Mutex struct {
	abstraction.Adapter[*sync.Mutex]
}

var _ Locker = (*Mutex)(nil)

// NewMutex wraps m. A nil m allocates a new mutex.
func NewMutex(m *sync.Mutex) *Mutex {
	if m == nil {
		m = &sync.Mutex{}
	}
	return &Mutex{Adapter: abstraction.NewAdapter(m)}
}

func (m *Mutex) Lock()         { m.Unwrap().Lock() }
func (m *Mutex) Unlock()       { m.Unwrap().Unlock() }
func (m *Mutex) TryLock() bool { return m.Unwrap().TryLock() }

// RWLocker is a reader/writer lock.
type RWLocker interface {
	Locker
	RLock()
	RUnlock()
	TryRLock() bool
	RLocker() sync.Locker
}

// RWMutex adapts a *sync.RWMutex to RWLocker.
type RWMutex struct {
	abstraction.Adapter[*sync.RWMutex]
}

var _ RWLocker = (*RWMutex)(nil)

// NewRWMutex wraps m. A nil m allocates a new mutex.
func NewRWMutex(m *sync.RWMutex) *RWMutex {
	if m == nil {
		m = &sync.RWMutex{}
	}
	return &RWMutex{Adapter: abstraction.NewAdapter(m)}
}

func (m *RWMutex) Lock()                { m.Unwrap().Lock() }
func (m *RWMutex) Unlock()              { m.Unwrap().Unlock() }
func (m *RWMutex) TryLock() bool        { return m.Unwrap().TryLock() }
func (m *RWMutex) RLock()               { m.Unwrap().RLock() }
func (m *RWMutex) RUnlock()             { m.Unwrap().RUnlock() }
func (m *RWMutex) TryRLock() bool       { return m.Unwrap().TryRLock() }
func (m *RWMutex) RLocker() sync.Locker { return m.Unwrap().RLocker() }

// WaitGroup waits for a collection of goroutines.
type WaitGroup interface {
	Add(delta int)
	Done()
	Wait()
}

// WaitGroupAdapter adapts a *sync.WaitGroup to WaitGroup.
type WaitGroupAdapter struct {
	abstraction.Adapter[*sync.WaitGroup]
}

var _ WaitGroup = (*WaitGroupAdapter)(nil)

// NewWaitGroup wraps wg. A nil wg allocates a new one.
func NewWaitGroup(wg *sync.WaitGroup) *WaitGroupAdapter {
	if wg == nil {
		wg = &sync.WaitGroup{}
	}
	return &WaitGroupAdapter{Adapter: abstraction.NewAdapter(wg)}
}

func (w *WaitGroupAdapter) Add(delta int) { w.Unwrap().Add(delta) }
func (w *WaitGroupAdapter) Done()         { w.Unwrap().Done() }
func (w *WaitGroupAdapter) Wait()         { w.Unwrap().Wait() }

// Once runs a function at most once.
type Once interface {
	Do(fn func())
}

// OnceAdapter adapts a *sync.Once to Once.
type OnceAdapter struct {
	abstraction.Adapter[*sync.Once]
}

var _ Once = (*OnceAdapter)(nil)

// NewOnce wraps o. A nil o allocates a new one.
func NewOnce(o *sync.Once) *OnceAdapter {
	if o == nil {
		o = &sync.Once{}
	}
	return &OnceAdapter{Adapter: abstraction.NewAdapter(o)}
}

func (o *OnceAdapter) Do(fn func()) { o.Unwrap().Do(fn) }
