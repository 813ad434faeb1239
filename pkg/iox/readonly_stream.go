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
	"context"
	"errors"
	"io"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// ReadOnlyStream adapts a forward-only io.ReadCloser such as an HTTP
// response body.
type ReadOnlyStream struct {
	abstraction.Adapter[io.ReadCloser]
	name string
}

var _ Stream = (*ReadOnlyStream)(nil)

// NewReadOnlyStream wraps rc. name is reported by Name and may be empty.
func NewReadOnlyStream(rc io.ReadCloser, name string) *ReadOnlyStream {
	return &ReadOnlyStream{Adapter: abstraction.NewAdapter(rc), name: name}
}

// ToReadOnlyStream returns rc as a Stream, or nil if rc is nil
func ToReadOnlyStream(rc io.ReadCloser) Stream {
	return abstraction.ToInterface(rc, func(rc io.ReadCloser) Stream {
		return NewReadOnlyStream(rc, "")
	})
}

func (s *ReadOnlyStream) Read(p []byte) (int, error) {
	return s.Unwrap().Read(p)
}

func (s *ReadOnlyStream) Close() error {
	return s.Unwrap().Close()
}

func (s *ReadOnlyStream) Name() string { return s.name }

func (s *ReadOnlyStream) CanRead() bool  { return true }
func (s *ReadOnlyStream) CanWrite() bool { return false }
func (s *ReadOnlyStream) CanSeek() bool  { return false }

// Flush has nothing to commit on a read-only stream.
func (s *ReadOnlyStream) Flush() error { return nil }

func (s *ReadOnlyStream) Write([]byte) (int, error) {
	return 0, errors.ErrUnsupported
}

func (s *ReadOnlyStream) WriteAt([]byte, int64) (int, error) {
	return 0, errors.ErrUnsupported
}

func (s *ReadOnlyStream) Seek(int64, int) (int64, error) {
	return 0, errors.ErrUnsupported
}

// ReadAt forwards when the wrapped reader implements io.ReaderAt.
func (s *ReadOnlyStream) ReadAt(p []byte, off int64) (int, error) {
	if ra, ok := s.Unwrap().(io.ReaderAt); ok {
		return ra.ReadAt(p, off)
	}
	return 0, errors.ErrUnsupported
}

func (s *ReadOnlyStream) Length() (int64, error) {
	return 0, errors.ErrUnsupported
}

func (s *ReadOnlyStream) Position() (int64, error) {
	return 0, errors.ErrUnsupported
}

func (s *ReadOnlyStream) SetLength(int64) error {
	return errors.ErrUnsupported
}

func (s *ReadOnlyStream) CopyTo(dst io.Writer) (int64, error) {
	return copyTo(s.Unwrap(), dst)
}

func (s *ReadOnlyStream) CopyToContext(ctx context.Context, dst io.Writer) (int64, error) {
	return copyToContext(ctx, s.Unwrap(), dst)
}
