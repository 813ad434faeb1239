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

// Package handle wraps operating system file descriptors behind an
// interface with explicit validity checks and reference counting.
package handle

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"syscall"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// InvalidFd is the descriptor value os.File reports once closed
const InvalidFd = ^uintptr(0)

// ErrNotReferenced is returned by Release without a matching AddRef
var ErrNotReferenced = errors.New("handle has no outstanding references")

// Handle is an operating system resource handle.
type Handle interface {
	Fd() uintptr
	Name() string
	Close() error
	IsClosed() bool
	IsInvalid() bool
	SyscallConn() (syscall.RawConn, error)
}

// FileHandle adapts an *os.File to Handle.
//
// Close through the adapter is deferred while references taken with
// AddRef are outstanding; the last Release then closes the file.
type FileHandle struct {
	abstraction.Adapter[*os.File]

	mu             sync.Mutex
	refs           int
	closeRequested bool
	closed         bool
}

var _ Handle = (*FileHandle)(nil)

// NewFileHandle wraps f
func NewFileHandle(f *os.File) *FileHandle {
	return &FileHandle{Adapter: abstraction.NewAdapter(f)}
}

// ToHandle returns f as a Handle, or nil if f is nil
func ToHandle(f *os.File) Handle {
	return abstraction.ToInterface(f, func(f *os.File) Handle {
		return NewFileHandle(f)
	})
}

// Open opens name read-only and wraps the file
func Open(name string) (*FileHandle, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return NewFileHandle(f), nil
}

// Fd forwards to os.File.Fd, which also switches the descriptor to
// blocking mode.
func (h *FileHandle) Fd() uintptr {
	return h.Unwrap().Fd()
}

func (h *FileHandle) Name() string {
	return h.Unwrap().Name()
}

func (h *FileHandle) SyscallConn() (syscall.RawConn, error) {
	return h.Unwrap().SyscallConn()
}

// Close closes the file, or marks it for closing once every reference is
// released. A second Close returns os.ErrClosed.
func (h *FileHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closeRequested {
		return &os.PathError{Op: "close", Path: h.Name(), Err: os.ErrClosed}
	}
	h.closeRequested = true
	if h.refs > 0 {
		return nil
	}
	return h.closeLocked()
}

func (h *FileHandle) closeLocked() error {
	h.closed = true
	return h.Unwrap().Close()
}

// IsClosed reports whether Close was called through the adapter
func (h *FileHandle) IsClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closeRequested
}

// IsInvalid reports whether the descriptor can no longer be used: the
// file was closed, or the operating system no longer recognizes the
// descriptor.
func (h *FileHandle) IsInvalid() bool {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		return true
	}
	return !h.valid()
}

func (h *FileHandle) valid() bool {
	rc, err := h.Unwrap().SyscallConn()
	if err != nil {
		return false
	}
	ok := false
	if err := rc.Control(func(fd uintptr) {
		ok = fd != InvalidFd && fdValid(fd)
	}); err != nil {
		return false
	}
	return ok
}

// AddRef keeps the file open until a matching Release, even if Close is
// called in between.
func (h *FileHandle) AddRef() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closeRequested {
		return &os.PathError{Op: "addref", Path: h.Name(), Err: os.ErrClosed}
	}
	h.refs++
	return nil
}

// Release drops a reference taken with AddRef. If Close was requested
// meanwhile, the last Release closes the file and returns its error.
func (h *FileHandle) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.refs == 0 {
		return fmt.Errorf("release %s: %w", h.Name(), ErrNotReferenced)
	}
	h.refs--
	if h.refs == 0 && h.closeRequested && !h.closed {
		return h.closeLocked()
	}
	return nil
}

// Refs returns the number of outstanding references
func (h *FileHandle) Refs() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.refs
}
