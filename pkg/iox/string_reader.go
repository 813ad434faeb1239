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
	"io"
	"strings"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// StringReader reads from an in-memory string.
type StringReader interface {
	io.Reader
	io.ReaderAt
	io.ByteScanner
	io.RuneScanner
	io.Seeker
	io.WriterTo

	Len() int
	Size() int64
	Reset(s string)
}

// StringReaderAdapter adapts a *strings.Reader to StringReader.
type StringReaderAdapter struct {
	abstraction.Adapter[*strings.Reader]
}

var _ StringReader = (*StringReaderAdapter)(nil)

// NewStringReader wraps r
func NewStringReader(r *strings.Reader) *StringReaderAdapter {
	return &StringReaderAdapter{Adapter: abstraction.NewAdapter(r)}
}

// ToStringReader returns r as a StringReader, or nil if r is nil
func ToStringReader(r *strings.Reader) StringReader {
	return abstraction.ToInterface(r, func(r *strings.Reader) StringReader {
		return NewStringReader(r)
	})
}

func (r *StringReaderAdapter) Read(p []byte) (int, error) {
	return r.Unwrap().Read(p)
}

func (r *StringReaderAdapter) ReadAt(p []byte, off int64) (int, error) {
	return r.Unwrap().ReadAt(p, off)
}

func (r *StringReaderAdapter) ReadByte() (byte, error) {
	return r.Unwrap().ReadByte()
}

func (r *StringReaderAdapter) UnreadByte() error {
	return r.Unwrap().UnreadByte()
}

func (r *StringReaderAdapter) ReadRune() (rune, int, error) {
	return r.Unwrap().ReadRune()
}

func (r *StringReaderAdapter) UnreadRune() error {
	return r.Unwrap().UnreadRune()
}

func (r *StringReaderAdapter) Seek(offset int64, whence int) (int64, error) {
	return r.Unwrap().Seek(offset, whence)
}

func (r *StringReaderAdapter) WriteTo(w io.Writer) (int64, error) {
	return r.Unwrap().WriteTo(w)
}

func (r *StringReaderAdapter) Len() int {
	return r.Unwrap().Len()
}

func (r *StringReaderAdapter) Size() int64 {
	return r.Unwrap().Size()
}

func (r *StringReaderAdapter) Reset(s string) {
	r.Unwrap().Reset(s)
}
