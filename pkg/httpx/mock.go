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
	"net/url"
	"strings"
	"time"
)

// MockClient implements Client for testing
type MockClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)

	Requests        []*http.Request
	IdleConnsClosed bool
	timeout         time.Duration
}

var _ Client = (*MockClient)(nil)

// Do implements Client. Without DoFunc it answers 200 with an empty body.
func (m *MockClient) Do(req *http.Request) (*http.Response, error) {
	m.Requests = append(m.Requests, req)
	if m.DoFunc != nil {
		return m.DoFunc(req)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader("")),
		Request:    req,
	}, nil
}

// Get implements Client
func (m *MockClient) Get(url string) (*http.Response, error) {
	return m.send(http.MethodGet, url, "", nil)
}

// Head implements Client
func (m *MockClient) Head(url string) (*http.Response, error) {
	return m.send(http.MethodHead, url, "", nil)
}

// Post implements Client
func (m *MockClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	return m.send(http.MethodPost, url, contentType, body)
}

// PostForm implements Client
func (m *MockClient) PostForm(url string, data url.Values) (*http.Response, error) {
	return m.send(http.MethodPost, url, "application/x-www-form-urlencoded", strings.NewReader(data.Encode()))
}

func (m *MockClient) send(method, url, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return m.Do(req)
}

// CloseIdleConnections implements Client
func (m *MockClient) CloseIdleConnections() {
	m.IdleConnsClosed = true
}

// Timeout implements Client
func (m *MockClient) Timeout() time.Duration {
	return m.timeout
}

// SetTimeout implements Client
func (m *MockClient) SetTimeout(d time.Duration) {
	m.timeout = d
}

// Transport implements Client
func (m *MockClient) Transport() RoundTripper {
	return nil
}

// Jar implements Client
func (m *MockClient) Jar() http.CookieJar {
	return nil
}

// MockClientFactory implements ClientFactory for testing
type MockClientFactory struct {
	CreateClientFunc func(kind string, config *ClientConfig, auth *AuthConfig) (Client, error)
	CreatedClients   []Client
}

// CreateClient implements ClientFactory
func (m *MockClientFactory) CreateClient(kind string, config *ClientConfig, auth *AuthConfig) (Client, error) {
	if m.CreateClientFunc != nil {
		client, err := m.CreateClientFunc(kind, config, auth)
		if err == nil && client != nil {
			m.CreatedClients = append(m.CreatedClients, client)
		}
		return client, err
	}

	// Default mock behavior
	client := &MockClient{}
	m.CreatedClients = append(m.CreatedClients, client)
	return client, nil
}

// NewMockClientFactory creates a new mock client factory
func NewMockClientFactory() *MockClientFactory {
	return &MockClientFactory{
		CreatedClients: make([]Client, 0),
	}
}

// NewFailingMockClientFactory creates a mock factory that always fails
func NewFailingMockClientFactory(err error) *MockClientFactory {
	return &MockClientFactory{
		CreateClientFunc: func(kind string, config *ClientConfig, auth *AuthConfig) (Client, error) {
			return nil, err
		},
		CreatedClients: make([]Client, 0),
	}
}

// NewMockClientFactoryWithClient creates a mock factory that returns a specific client
func NewMockClientFactoryWithClient(client Client) *MockClientFactory {
	return &MockClientFactory{
		CreateClientFunc: func(kind string, config *ClientConfig, auth *AuthConfig) (Client, error) {
			return client, nil
		},
		CreatedClients: make([]Client, 0),
	}
}
