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

	"golang.org/x/text/transform"

	"github.com/codihuston/stdseam/pkg/abstraction"
	"github.com/codihuston/stdseam/pkg/text"
)

// NewEncodedReader returns a TextReader that decodes r from enc into UTF-8.
// A nil enc reads r as UTF-8.
func NewEncodedReader(r io.Reader, enc text.Encoding) TextReader {
	if abstraction.IsNil(r) {
		return nil
	}
	if enc == nil {
		enc = text.UTF8
	}
	return NewBufferedReader(bufio.NewReader(transform.NewReader(r, enc.NewDecoder())))
}

// EncodedWriter is a TextWriter that encodes UTF-8 input into another
// encoding before it reaches the destination. Flush drains the buffer into
// the encoder; Close also finalizes the encoder, which stateful encodings
// need to emit their closing shift sequence.
type EncodedWriter struct {
	*BufferedWriter
	encoder *transform.Writer
}

var _ TextWriter = (*EncodedWriter)(nil)

// NewEncodedWriter returns a writer that encodes into enc before writing to
// w. A nil enc writes UTF-8. A nil w yields a nil *EncodedWriter; check it
// before storing the result in a TextWriter.
func NewEncodedWriter(w io.Writer, enc text.Encoding, opts ...WriterOption) *EncodedWriter {
	if abstraction.IsNil(w) {
		return nil
	}
	if enc == nil {
		enc = text.UTF8
	}
	tw := transform.NewWriter(w, enc.NewEncoder())
	return &EncodedWriter{
		BufferedWriter: NewBufferedWriter(bufio.NewWriter(tw), opts...),
		encoder:        tw,
	}
}

// Close flushes the buffer and any partial input held by the encoder. It
// does not close the destination.
func (w *EncodedWriter) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	return w.encoder.Close()
}
