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

// Package httpx puts interfaces in front of the net/http client stack:
// clients, transports, requests, responses and headers. It also provides
// opt-in round-tripper decorators and a factory that builds configured
// clients.
package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/codihuston/stdseam/pkg/abstraction"
	"github.com/codihuston/stdseam/pkg/iox"
)

// Client sends HTTP requests.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
	Get(url string) (*http.Response, error)
	Head(url string) (*http.Response, error)
	Post(url, contentType string, body io.Reader) (*http.Response, error)
	PostForm(url string, data url.Values) (*http.Response, error)
	CloseIdleConnections()

	Timeout() time.Duration
	SetTimeout(d time.Duration)

	// Transport returns the client's round tripper, or nil when the client
	// uses http.DefaultTransport implicitly.
	Transport() RoundTripper
	Jar() http.CookieJar
}

// ClientAdapter adapts an *http.Client to Client.
type ClientAdapter struct {
	abstraction.Adapter[*http.Client]
}

var _ Client = (*ClientAdapter)(nil)

// NewClient wraps c
func NewClient(c *http.Client) *ClientAdapter {
	return &ClientAdapter{Adapter: abstraction.NewAdapter(c)}
}

// ToClient returns c as a Client, or nil if c is nil
func ToClient(c *http.Client) Client {
	return abstraction.ToInterface(c, func(c *http.Client) Client {
		return NewClient(c)
	})
}

func (c *ClientAdapter) Do(req *http.Request) (*http.Response, error) {
	return c.Unwrap().Do(req)
}

func (c *ClientAdapter) Get(url string) (*http.Response, error) {
	return c.Unwrap().Get(url)
}

func (c *ClientAdapter) Head(url string) (*http.Response, error) {
	return c.Unwrap().Head(url)
}

func (c *ClientAdapter) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	return c.Unwrap().Post(url, contentType, body)
}

func (c *ClientAdapter) PostForm(url string, data url.Values) (*http.Response, error) {
	return c.Unwrap().PostForm(url, data)
}

func (c *ClientAdapter) CloseIdleConnections() {
	c.Unwrap().CloseIdleConnections()
}

func (c *ClientAdapter) Timeout() time.Duration {
	return c.Unwrap().Timeout
}

func (c *ClientAdapter) SetTimeout(d time.Duration) {
	c.Unwrap().Timeout = d
}

func (c *ClientAdapter) Transport() RoundTripper {
	return ToRoundTripper(c.Unwrap().Transport)
}

func (c *ClientAdapter) Jar() http.CookieJar {
	return c.Unwrap().Jar
}

// GetStream sends a GET request and returns the response body as a
// read-only stream. Non-2xx responses are closed and reported as a
// *StatusError.
func GetStream(ctx context.Context, c Client, rawURL string) (iox.Stream, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	r := NewResponse(resp)
	if err := r.EnsureSuccessStatusCode(); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r.Body(), nil
}

// GetBytes sends a GET request and reads the whole body.
func GetBytes(ctx context.Context, c Client, rawURL string) ([]byte, error) {
	body, err := GetStream(ctx, c, rawURL)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = body.Close()
	}()
	return io.ReadAll(body)
}

// GetString sends a GET request and returns the body as a string.
func GetString(ctx context.Context, c Client, rawURL string) (string, error) {
	data, err := GetBytes(ctx, c, rawURL)
	return string(data), err
}
