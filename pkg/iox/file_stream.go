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
	"io"

	"github.com/spf13/afero"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// FileStream adapts an afero.File, which *os.File and afero's in-memory
// files both satisfy, to Stream.
type FileStream struct {
	abstraction.Adapter[afero.File]
}

var _ Stream = (*FileStream)(nil)

// NewFileStream wraps f
func NewFileStream(f afero.File) *FileStream {
	return &FileStream{Adapter: abstraction.NewAdapter(f)}
}

// ToStream returns f as a Stream, or nil if f is nil
func ToStream(f afero.File) Stream {
	return abstraction.ToInterface(f, func(f afero.File) Stream {
		return NewFileStream(f)
	})
}

func (s *FileStream) Read(p []byte) (int, error) {
	return s.Unwrap().Read(p)
}

func (s *FileStream) Write(p []byte) (int, error) {
	return s.Unwrap().Write(p)
}

// WriteString forwards to the file's WriteString
func (s *FileStream) WriteString(str string) (int, error) {
	return s.Unwrap().WriteString(str)
}

func (s *FileStream) Seek(offset int64, whence int) (int64, error) {
	return s.Unwrap().Seek(offset, whence)
}

func (s *FileStream) Close() error {
	return s.Unwrap().Close()
}

func (s *FileStream) ReadAt(p []byte, off int64) (int, error) {
	return s.Unwrap().ReadAt(p, off)
}

func (s *FileStream) WriteAt(p []byte, off int64) (int, error) {
	return s.Unwrap().WriteAt(p, off)
}

func (s *FileStream) Name() string {
	return s.Unwrap().Name()
}

// Flush forwards to Sync
func (s *FileStream) Flush() error {
	return s.Unwrap().Sync()
}

func (s *FileStream) CanRead() bool  { return true }
func (s *FileStream) CanWrite() bool { return true }
func (s *FileStream) CanSeek() bool  { return true }

// Length returns Stat().Size()
func (s *FileStream) Length() (int64, error) {
	info, err := s.Unwrap().Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (s *FileStream) Position() (int64, error) {
	return s.Unwrap().Seek(0, io.SeekCurrent)
}

// SetLength forwards to Truncate
func (s *FileStream) SetLength(n int64) error {
	return s.Unwrap().Truncate(n)
}

func (s *FileStream) CopyTo(dst io.Writer) (int64, error) {
	return copyTo(s.Unwrap(), dst)
}

func (s *FileStream) CopyToContext(ctx context.Context, dst io.Writer) (int64, error) {
	return copyToContext(ctx, s.Unwrap(), dst)
}
