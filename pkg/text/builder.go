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

// Package text wraps the standard library's mutable string and byte
// builders and golang.org/x/text character encodings behind interfaces.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// StringBuilder builds a string piece by piece.
type StringBuilder interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
	fmt.Stringer

	WriteRune(r rune) (int, error)
	Len() int
	Cap() int
	Grow(n int)
	Reset()

	// AppendLine writes s and a newline.
	AppendLine(s string) (int, error)

	// AppendFormat writes according to a format specifier.
	AppendFormat(format string, args ...any) (int, error)
}

// Builder adapts a *strings.Builder to StringBuilder.
type Builder struct {
	abstraction.Adapter[*strings.Builder]
}

var _ StringBuilder = (*Builder)(nil)

// NewBuilder wraps sb
func NewBuilder(sb *strings.Builder) *Builder {
	return &Builder{Adapter: abstraction.NewAdapter(sb)}
}

// NewStringBuilder returns a StringBuilder over a fresh strings.Builder
// with at least capacity bytes preallocated.
func NewStringBuilder(capacity int) StringBuilder {
	sb := &strings.Builder{}
	if capacity > 0 {
		sb.Grow(capacity)
	}
	return NewBuilder(sb)
}

// ToStringBuilder returns sb as a StringBuilder, or nil if sb is nil
func ToStringBuilder(sb *strings.Builder) StringBuilder {
	return abstraction.ToInterface(sb, func(sb *strings.Builder) StringBuilder {
		return NewBuilder(sb)
	})
}

func (b *Builder) Write(p []byte) (int, error) {
	return b.Unwrap().Write(p)
}

func (b *Builder) WriteString(s string) (int, error) {
	return b.Unwrap().WriteString(s)
}

func (b *Builder) WriteByte(c byte) error {
	return b.Unwrap().WriteByte(c)
}

func (b *Builder) WriteRune(r rune) (int, error) {
	return b.Unwrap().WriteRune(r)
}

func (b *Builder) String() string {
	return b.Unwrap().String()
}

func (b *Builder) Len() int {
	return b.Unwrap().Len()
}

func (b *Builder) Cap() int {
	return b.Unwrap().Cap()
}

func (b *Builder) Grow(n int) {
	b.Unwrap().Grow(n)
}

func (b *Builder) Reset() {
	b.Unwrap().Reset()
}

func (b *Builder) AppendLine(s string) (int, error) {
	return b.Unwrap().WriteString(s + "\n")
}

func (b *Builder) AppendFormat(format string, args ...any) (int, error) {
	return fmt.Fprintf(b.Unwrap(), format, args...)
}
