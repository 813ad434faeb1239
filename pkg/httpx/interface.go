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
	"time"
)

// Client kinds understood by DefaultClientFactory
const (
	KindDefault  = "default"
	KindRetrying = "retrying"
)

// ClientConfig contains common configuration for HTTP clients
type ClientConfig struct {
	// Timeout bounds the whole exchange, including reading the body. Zero
	// means no timeout.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool
	// UserAgent is sent when the request does not set one.
	UserAgent string

	// MaxRetries, RetryWaitMin and RetryWaitMax apply to the retrying kind.
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// RateLimit is the sustained number of requests per second, zero for
	// unlimited. Burst defaults to 1.
	RateLimit float64
	Burst     int
}

// AuthConfig contains authentication information
type AuthConfig struct {
	Type     string // "basic" or "bearer"
	Username string
	Password string
	Token    string
}

// Authentication types understood by WithAuth
const (
	AuthTypeBasic  = "basic"
	AuthTypeBearer = "bearer"
)

// ClientFactory creates HTTP clients by kind
type ClientFactory interface {
	CreateClient(kind string, config *ClientConfig, auth *AuthConfig) (Client, error)
}
