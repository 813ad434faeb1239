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
	"net/http"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// RoundTripper executes a single HTTP transaction and can drop idle
// connections.
type RoundTripper interface {
	http.RoundTripper
	CloseIdleConnections()
}

// TransportAdapter adapts an *http.Transport to RoundTripper.
type TransportAdapter struct {
	abstraction.Adapter[*http.Transport]
}

var _ RoundTripper = (*TransportAdapter)(nil)

// NewTransport wraps t
func NewTransport(t *http.Transport) *TransportAdapter {
	return &TransportAdapter{Adapter: abstraction.NewAdapter(t)}
}

func (t *TransportAdapter) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.Unwrap().RoundTrip(req)
}

func (t *TransportAdapter) CloseIdleConnections() {
	t.Unwrap().CloseIdleConnections()
}

// Clone forwards to the transport's Clone and wraps the copy
func (t *TransportAdapter) Clone() *TransportAdapter {
	return NewTransport(t.Unwrap().Clone())
}

// RoundTripperAdapter adapts any http.RoundTripper to RoundTripper.
type RoundTripperAdapter struct {
	abstraction.Adapter[http.RoundTripper]
}

var _ RoundTripper = (*RoundTripperAdapter)(nil)

// NewRoundTripper wraps rt
func NewRoundTripper(rt http.RoundTripper) *RoundTripperAdapter {
	return &RoundTripperAdapter{Adapter: abstraction.NewAdapter(rt)}
}

func (r *RoundTripperAdapter) RoundTrip(req *http.Request) (*http.Response, error) {
	return r.Unwrap().RoundTrip(req)
}

// CloseIdleConnections forwards when the wrapped round tripper supports it.
func (r *RoundTripperAdapter) CloseIdleConnections() {
	type closeIdler interface {
		CloseIdleConnections()
	}
	if c, ok := r.Unwrap().(closeIdler); ok {
		c.CloseIdleConnections()
	}
}

// ToRoundTripper returns rt as a RoundTripper, or nil if rt is nil
func ToRoundTripper(rt http.RoundTripper) RoundTripper {
	if t, ok := rt.(*http.Transport); ok && t != nil {
		return NewTransport(t)
	}
	return abstraction.ToInterface(rt, func(rt http.RoundTripper) RoundTripper {
		return NewRoundTripper(rt)
	})
}

// RoundTripperFunc lets an ordinary function act as an http.RoundTripper.
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Handler decorates a round tripper, the way a delegating message handler
// wraps the next handler in a pipeline.
type Handler func(next http.RoundTripper) http.RoundTripper

// Chain wraps base with handlers. The first handler is the outermost, so it
// sees the request first and the response last. A nil base means
// http.DefaultTransport.
func Chain(base http.RoundTripper, handlers ...Handler) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	rt := base
	for i := len(handlers) - 1; i >= 0; i-- {
		if handlers[i] == nil {
			continue
		}
		rt = handlers[i](rt)
	}
	return rt
}
