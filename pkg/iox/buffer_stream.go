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

package iox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// BufferStream adapts a *bytes.Buffer. It reads and writes but cannot seek.
type BufferStream struct {
	abstraction.Adapter[*bytes.Buffer]
}

var _ Stream = (*BufferStream)(nil)

// NewBufferStream wraps buf
func NewBufferStream(buf *bytes.Buffer) *BufferStream {
	return &BufferStream{Adapter: abstraction.NewAdapter(buf)}
}

// ToBufferStream returns buf as a Stream, or nil if buf is nil
func ToBufferStream(buf *bytes.Buffer) Stream {
	return abstraction.ToInterface(buf, func(buf *bytes.Buffer) Stream {
		return NewBufferStream(buf)
	})
}

func (s *BufferStream) Read(p []byte) (int, error) {
	return s.Unwrap().Read(p)
}

func (s *BufferStream) Write(p []byte) (int, error) {
	return s.Unwrap().Write(p)
}

func (s *BufferStream) WriteString(str string) (int, error) {
	return s.Unwrap().WriteString(str)
}

// Close is a no-op, a buffer holds no resources.
func (s *BufferStream) Close() error { return nil }

func (s *BufferStream) Name() string { return "" }

func (s *BufferStream) Flush() error { return nil }

func (s *BufferStream) CanRead() bool  { return true }
func (s *BufferStream) CanWrite() bool { return true }
func (s *BufferStream) CanSeek() bool  { return false }

func (s *BufferStream) Seek(int64, int) (int64, error) {
	return 0, errors.ErrUnsupported
}

func (s *BufferStream) ReadAt([]byte, int64) (int, error) {
	return 0, errors.ErrUnsupported
}

func (s *BufferStream) WriteAt([]byte, int64) (int, error) {
	return 0, errors.ErrUnsupported
}

// Length returns the number of unread bytes
func (s *BufferStream) Length() (int64, error) {
	return int64(s.Unwrap().Len()), nil
}

func (s *BufferStream) Position() (int64, error) {
	return 0, errors.ErrUnsupported
}

// SetLength keeps the first n unread bytes. The buffer cannot grow this
// way, so n past the unread length is an error.
func (s *BufferStream) SetLength(n int64) error {
	if n < 0 || n > int64(s.Unwrap().Len()) {
		return fmt.Errorf("set length %d: %w", n, errors.ErrUnsupported)
	}
	s.Unwrap().Truncate(int(n))
	return nil
}

func (s *BufferStream) CopyTo(dst io.Writer) (int64, error) {
	if dst == nil {
		return 0, ErrNilWriter
	}
	return s.Unwrap().WriteTo(dst)
}

func (s *BufferStream) CopyToContext(ctx context.Context, dst io.Writer) (int64, error) {
	return copyToContext(ctx, s.Unwrap(), dst)
}
