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

package httpx

import (
	"io"
	"net/http"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// Header is a set of HTTP header fields.
type Header interface {
	abstraction.Abstraction[http.Header]

	Get(key string) string
	Values(key string) []string
	Set(key, value string)
	Add(key, value string)
	Del(key string)
	Clone() Header
	Write(w io.Writer) error
}

// HeaderAdapter adapts an http.Header to Header. Since http.Header is a
// map, changes through the adapter are visible through the wrapped value.
type HeaderAdapter struct {
	abstraction.Adapter[http.Header]
}

var _ Header = (*HeaderAdapter)(nil)

// NewHeader wraps h
func NewHeader(h http.Header) *HeaderAdapter {
	return &HeaderAdapter{Adapter: abstraction.NewAdapter(h)}
}

// ToHeader returns h as a Header, or nil if h is nil
func ToHeader(h http.Header) Header {
	return abstraction.ToInterface(h, func(h http.Header) Header {
		return NewHeader(h)
	})
}

func (h *HeaderAdapter) Get(key string) string {
	return h.Unwrap().Get(key)
}

func (h *HeaderAdapter) Values(key string) []string {
	return h.Unwrap().Values(key)
}

func (h *HeaderAdapter) Set(key, value string) {
	h.Unwrap().Set(key, value)
}

func (h *HeaderAdapter) Add(key, value string) {
	h.Unwrap().Add(key, value)
}

func (h *HeaderAdapter) Del(key string) {
	h.Unwrap().Del(key)
}

func (h *HeaderAdapter) Clone() Header {
	return ToHeader(h.Unwrap().Clone())
}

func (h *HeaderAdapter) Write(w io.Writer) error {
	return h.Unwrap().Write(w)
}
