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

// Package iox puts interfaces in front of the standard library's byte
// streams and buffered text readers and writers.
//
// Each adapter stores the concrete value it was built from and forwards
// every call to it. Errors come back exactly as the wrapped value returned
// them.
package iox

import (
	"context"
	"errors"
	"io"
)

// copyBufferSize matches the chunk size io.Copy uses.
const copyBufferSize = 32 * 1024

// Stream is a byte stream that may support reading, writing and seeking.
// Members the underlying value cannot support return errors.ErrUnsupported.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
	io.ReaderAt
	io.WriterAt

	// Name identifies the stream, for files the path it was opened with.
	Name() string

	// Flush commits buffered data to the underlying device.
	Flush() error

	CanRead() bool
	CanWrite() bool
	CanSeek() bool

	// Length returns the size of the stream in bytes.
	Length() (int64, error)

	// Position returns the current offset.
	Position() (int64, error)

	// SetLength truncates or extends the stream. Streams that cannot take
	// the requested length return an error wrapping errors.ErrUnsupported.
	SetLength(n int64) error

	// CopyTo copies the remainder of the stream into dst.
	CopyTo(dst io.Writer) (int64, error)

	// CopyToContext is CopyTo that stops between chunks once ctx is done.
	CopyToContext(ctx context.Context, dst io.Writer) (int64, error)
}

// ErrNilWriter is returned by CopyTo when the destination is nil
var ErrNilWriter = errors.New("destination writer is nil")

func copyTo(src io.Reader, dst io.Writer) (int64, error) {
	if dst == nil {
		return 0, ErrNilWriter
	}
	return io.Copy(dst, src)
}

func copyToContext(ctx context.Context, src io.Reader, dst io.Writer) (int64, error) {
	if dst == nil {
		return 0, ErrNilWriter
	}
	buf := make([]byte, copyBufferSize)
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		nr, rerr := src.Read(buf)
		if nr > 0 {
			nw, werr := dst.Write(buf[:nr])
			written += int64(nw)
			if werr != nil {
				return written, werr
			}
			if nw != nr {
				return written, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}
