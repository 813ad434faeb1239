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

package text

import (
	"bytes"
	"fmt"
	"io"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// ByteBuffer is a variable-sized buffer of bytes that can be read from and
// written to.
type ByteBuffer interface {
	io.ReadWriter
	io.StringWriter
	io.ByteScanner
	io.RuneScanner
	io.ByteWriter
	io.ReaderFrom
	io.WriterTo
	fmt.Stringer

	WriteRune(r rune) (int, error)
	ReadString(delim byte) (string, error)
	ReadBytes(delim byte) ([]byte, error)
	Next(n int) []byte
	Bytes() []byte
	Len() int
	Cap() int
	Available() int
	AvailableBuffer() []byte
	Grow(n int)
	Truncate(n int)
	Reset()
}

// Buffer adapts a *bytes.Buffer to ByteBuffer.
type Buffer struct {
	abstraction.Adapter[*bytes.Buffer]
}

var _ ByteBuffer = (*Buffer)(nil)

// NewBuffer wraps buf
func NewBuffer(buf *bytes.Buffer) *Buffer {
	return &Buffer{Adapter: abstraction.NewAdapter(buf)}
}

// ToByteBuffer returns buf as a ByteBuffer, or nil if buf is nil
func ToByteBuffer(buf *bytes.Buffer) ByteBuffer {
	return abstraction.ToInterface(buf, func(buf *bytes.Buffer) ByteBuffer {
		return NewBuffer(buf)
	})
}

func (b *Buffer) Read(p []byte) (int, error)            { return b.Unwrap().Read(p) }
func (b *Buffer) Write(p []byte) (int, error)           { return b.Unwrap().Write(p) }
func (b *Buffer) WriteString(s string) (int, error)     { return b.Unwrap().WriteString(s) }
func (b *Buffer) WriteByte(c byte) error                { return b.Unwrap().WriteByte(c) }
func (b *Buffer) WriteRune(r rune) (int, error)         { return b.Unwrap().WriteRune(r) }
func (b *Buffer) ReadByte() (byte, error)               { return b.Unwrap().ReadByte() }
func (b *Buffer) UnreadByte() error                     { return b.Unwrap().UnreadByte() }
func (b *Buffer) ReadRune() (rune, int, error)          { return b.Unwrap().ReadRune() }
func (b *Buffer) UnreadRune() error                     { return b.Unwrap().UnreadRune() }
func (b *Buffer) ReadString(delim byte) (string, error) { return b.Unwrap().ReadString(delim) }
func (b *Buffer) ReadBytes(delim byte) ([]byte, error)  { return b.Unwrap().ReadBytes(delim) }
func (b *Buffer) ReadFrom(r io.Reader) (int64, error)   { return b.Unwrap().ReadFrom(r) }
func (b *Buffer) WriteTo(w io.Writer) (int64, error)    { return b.Unwrap().WriteTo(w) }
func (b *Buffer) Next(n int) []byte                     { return b.Unwrap().Next(n) }
func (b *Buffer) Bytes() []byte                         { return b.Unwrap().Bytes() }
func (b *Buffer) String() string                        { return b.Unwrap().String() }
func (b *Buffer) Len() int                              { return b.Unwrap().Len() }
func (b *Buffer) Cap() int                              { return b.Unwrap().Cap() }
func (b *Buffer) Available() int                        { return b.Unwrap().Available() }
func (b *Buffer) AvailableBuffer() []byte               { return b.Unwrap().AvailableBuffer() }
func (b *Buffer) Grow(n int)                            { b.Unwrap().Grow(n) }
func (b *Buffer) Truncate(n int)                        { b.Unwrap().Truncate(n) }
func (b *Buffer) Reset()                                { b.Unwrap().Reset() }
