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
	"strings"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// TextReader reads text from a buffered source.
type TextReader interface {
	io.Reader
	io.ByteScanner
	io.RuneScanner

	Peek(n int) ([]byte, error)
	ReadString(delim byte) (string, error)

	// ReadLine returns the next line without its trailing "\n" or "\r\n".
	// A final line without a terminator is returned with a nil error; once
	// nothing is left ReadLine returns "", io.EOF.
	ReadLine() (string, error)

	// ReadToEnd returns everything up to EOF.
	ReadToEnd() (string, error)

	Buffered() int
	Discard(n int) (int, error)
	Reset(r io.Reader)
	Size() int
}

// BufferedReader adapts a *bufio.Reader to TextReader.
type BufferedReader struct {
	abstraction.Adapter[*bufio.Reader]
}

var _ TextReader = (*BufferedReader)(nil)

// NewBufferedReader wraps br
func NewBufferedReader(br *bufio.Reader) *BufferedReader {
	return &BufferedReader{Adapter: abstraction.NewAdapter(br)}
}

// NewTextReader buffers r and wraps the result
func NewTextReader(r io.Reader) TextReader {
	if abstraction.IsNil(r) {
		return nil
	}
	if tr, ok := r.(TextReader); ok {
		return tr
	}
	return NewBufferedReader(bufio.NewReader(r))
}

// ToTextReader returns br as a TextReader, or nil if br is nil
func ToTextReader(br *bufio.Reader) TextReader {
	return abstraction.ToInterface(br, func(br *bufio.Reader) TextReader {
		return NewBufferedReader(br)
	})
}

func (r *BufferedReader) Read(p []byte) (int, error) {
	return r.Unwrap().Read(p)
}

func (r *BufferedReader) ReadByte() (byte, error) {
	return r.Unwrap().ReadByte()
}

func (r *BufferedReader) UnreadByte() error {
	return r.Unwrap().UnreadByte()
}

func (r *BufferedReader) ReadRune() (rune, int, error) {
	return r.Unwrap().ReadRune()
}

func (r *BufferedReader) UnreadRune() error {
	return r.Unwrap().UnreadRune()
}

func (r *BufferedReader) Peek(n int) ([]byte, error) {
	return r.Unwrap().Peek(n)
}

func (r *BufferedReader) ReadString(delim byte) (string, error) {
	return r.Unwrap().ReadString(delim)
}

func (r *BufferedReader) ReadLine() (string, error) {
	line, err := r.Unwrap().ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
		return strings.TrimSuffix(trimmed, "\r"), nil
	}
	return line, nil
}

func (r *BufferedReader) ReadToEnd() (string, error) {
	var sb strings.Builder
	_, err := r.Unwrap().WriteTo(&sb)
	return sb.String(), err
}

func (r *BufferedReader) Buffered() int {
	return r.Unwrap().Buffered()
}

func (r *BufferedReader) Discard(n int) (int, error) {
	return r.Unwrap().Discard(n)
}

func (r *BufferedReader) Reset(src io.Reader) {
	r.Unwrap().Reset(src)
}

func (r *BufferedReader) Size() int {
	return r.Unwrap().Size()
}
