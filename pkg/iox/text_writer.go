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
	"bufio"
	"io"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// TextWriter writes text through a buffer.
type TextWriter interface {
	io.Writer
	io.StringWriter
	io.ByteWriter

	WriteRune(r rune) (int, error)

	// WriteLine writes s followed by the writer's newline.
	WriteLine(s string) (int, error)

	Flush() error
	Available() int
	Buffered() int
	Size() int
	Reset(w io.Writer)
}

// BufferedWriter adapts a *bufio.Writer to TextWriter.
type BufferedWriter struct {
	abstraction.Adapter[*bufio.Writer]
	newline string
}

var _ TextWriter = (*BufferedWriter)(nil)

// WriterOption configures a BufferedWriter
type WriterOption func(*BufferedWriter)

// WithNewline sets the terminator WriteLine appends. The default is "\n".
func WithNewline(nl string) WriterOption {
	return func(w *BufferedWriter) {
		w.newline = nl
	}
}

// NewBufferedWriter wraps bw
func NewBufferedWriter(bw *bufio.Writer, opts ...WriterOption) *BufferedWriter {
	w := &BufferedWriter{Adapter: abstraction.NewAdapter(bw), newline: "\n"}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewTextWriter buffers w and wraps the result
func NewTextWriter(w io.Writer, opts ...WriterOption) TextWriter {
	if abstraction.IsNil(w) {
		return nil
	}
	return NewBufferedWriter(bufio.NewWriter(w), opts...)
}

// ToTextWriter returns bw as a TextWriter, or nil if bw is nil
func ToTextWriter(bw *bufio.Writer) TextWriter {
	return abstraction.ToInterface(bw, func(bw *bufio.Writer) TextWriter {
		return NewBufferedWriter(bw)
	})
}

func (w *BufferedWriter) Write(p []byte) (int, error) {
	return w.Unwrap().Write(p)
}

func (w *BufferedWriter) WriteString(s string) (int, error) {
	return w.Unwrap().WriteString(s)
}

func (w *BufferedWriter) WriteByte(c byte) error {
	return w.Unwrap().WriteByte(c)
}

func (w *BufferedWriter) WriteRune(r rune) (int, error) {
	return w.Unwrap().WriteRune(r)
}

func (w *BufferedWriter) WriteLine(s string) (int, error) {
	n, err := w.Unwrap().WriteString(s)
	if err != nil {
		return n, err
	}
	m, err := w.Unwrap().WriteString(w.newline)
	return n + m, err
}

func (w *BufferedWriter) Flush() error {
	return w.Unwrap().Flush()
}

func (w *BufferedWriter) Available() int {
	return w.Unwrap().Available()
}

func (w *BufferedWriter) Buffered() int {
	return w.Unwrap().Buffered()
}

func (w *BufferedWriter) Size() int {
	return w.Unwrap().Size()
}

func (w *BufferedWriter) Reset(dst io.Writer) {
	w.Unwrap().Reset(dst)
}
