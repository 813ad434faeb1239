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
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// ErrUnknownEncoding is returned by LookupEncoding for names it cannot resolve
var ErrUnknownEncoding = errors.New("unknown encoding")

// Encoding converts between UTF-8 and another character encoding.
type Encoding interface {
	abstraction.Abstraction[encoding.Encoding]

	// Name is the canonical name the encoding was resolved to.
	Name() string
	NewDecoder() *encoding.Decoder
	NewEncoder() *encoding.Encoder
}

// EncodingAdapter adapts an x/text encoding.Encoding to Encoding.
type EncodingAdapter struct {
	abstraction.Adapter[encoding.Encoding]
	name string
}

var _ Encoding = (*EncodingAdapter)(nil)

// UTF8 passes UTF-8 through unchanged.
var UTF8 Encoding = NewEncoding(unicode.UTF8, "utf-8")

// NewEncoding wraps enc under the given name
func NewEncoding(enc encoding.Encoding, name string) *EncodingAdapter {
	return &EncodingAdapter{Adapter: abstraction.NewAdapter(enc), name: name}
}

// LookupEncoding resolves an IANA or WHATWG encoding label such as
// "latin1", "windows-1252" or "shift_jis".
func LookupEncoding(name string) (Encoding, error) {
	label := strings.TrimSpace(name)
	if label == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownEncoding)
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = strings.ToLower(label)
	}
	return NewEncoding(enc, canonical), nil
}

func (e *EncodingAdapter) Name() string {
	return e.name
}

func (e *EncodingAdapter) NewDecoder() *encoding.Decoder {
	return e.Unwrap().NewDecoder()
}

func (e *EncodingAdapter) NewEncoder() *encoding.Encoder {
	return e.Unwrap().NewEncoder()
}
