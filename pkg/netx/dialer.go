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

package netx

import (
	"context"
	"net"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// Dialer opens connections.
type Dialer interface {
	Dial(network, address string) (Conn, error)
	DialContext(ctx context.Context, network, address string) (Conn, error)
}

// DialerAdapter adapts a *net.Dialer to Dialer.
type DialerAdapter struct {
	abstraction.Adapter[*net.Dialer]
}

var _ Dialer = (*DialerAdapter)(nil)

// NewDialer wraps d. A nil d uses a zero net.Dialer.
func NewDialer(d *net.Dialer) *DialerAdapter {
	if d == nil {
		d = &net.Dialer{}
	}
	return &DialerAdapter{Adapter: abstraction.NewAdapter(d)}
}

func (d *DialerAdapter) Dial(network, address string) (Conn, error) {
	c, err := d.Unwrap().Dial(network, address)
	if err != nil {
		return nil, err
	}
	return NewConn(c), nil
}

func (d *DialerAdapter) DialContext(ctx context.Context, network, address string) (Conn, error) {
	c, err := d.Unwrap().DialContext(ctx, network, address)
	if err != nil {
		return nil, err
	}
	return NewConn(c), nil
}

// Resolver looks up names and numbers.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
	LookupPort(ctx context.Context, network, service string) (int, error)
	LookupCNAME(ctx context.Context, host string) (string, error)
	LookupTXT(ctx context.Context, name string) ([]string, error)
}

// ResolverAdapter adapts a *net.Resolver to Resolver.
type ResolverAdapter struct {
	abstraction.Adapter[*net.Resolver]
}

var _ Resolver = (*ResolverAdapter)(nil)

// NewResolver wraps r. A nil r uses net.DefaultResolver.
func NewResolver(r *net.Resolver) *ResolverAdapter {
	if r == nil {
		r = net.DefaultResolver
	}
	return &ResolverAdapter{Adapter: abstraction.NewAdapter(r)}
}

func (r *ResolverAdapter) LookupHost(ctx context.Context, host string) ([]string, error) {
	return r.Unwrap().LookupHost(ctx, host)
}

func (r *ResolverAdapter) LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error) {
	return r.Unwrap().LookupIPAddr(ctx, host)
}

func (r *ResolverAdapter) LookupPort(ctx context.Context, network, service string) (int, error) {
	return r.Unwrap().LookupPort(ctx, network, service)
}

func (r *ResolverAdapter) LookupCNAME(ctx context.Context, host string) (string, error) {
	return r.Unwrap().LookupCNAME(ctx, host)
}

func (r *ResolverAdapter) LookupTXT(ctx context.Context, name string) ([]string, error) {
	return r.Unwrap().LookupTXT(ctx, name)
}
