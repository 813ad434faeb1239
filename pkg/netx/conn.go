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

// Package netx puts interfaces in front of net connections, listeners,
// dialers and resolvers, and of gorilla websocket connections.
package netx

import (
	"net"
	"time"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// Conn is a stream-oriented network connection.
type Conn interface {
	abstraction.Abstraction[net.Conn]

	Read(b []byte) (int, error)
	Write(b []byte) (int, error)
	Close() error
	LocalAddr() net.Addr
	RemoteAddr() net.Addr
	SetDeadline(t time.Time) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
}

// ConnAdapter adapts a net.Conn to Conn.
type ConnAdapter struct {
	abstraction.Adapter[net.Conn]
}

var (
	_ Conn     = (*ConnAdapter)(nil)
	_ net.Conn = (*ConnAdapter)(nil)
)

// NewConn wraps c
func NewConn(c net.Conn) *ConnAdapter {
	return &ConnAdapter{Adapter: abstraction.NewAdapter(c)}
}

// ToConn returns c as a Conn, or nil if c is nil
func ToConn(c net.Conn) Conn {
	return abstraction.ToInterface(c, func(c net.Conn) Conn {
		return NewConn(c)
	})
}

func (c *ConnAdapter) Read(b []byte) (int, error)  { return c.Unwrap().Read(b) }
func (c *ConnAdapter) Write(b []byte) (int, error) { return c.Unwrap().Write(b) }
func (c *ConnAdapter) Close() error                { return c.Unwrap().Close() }
func (c *ConnAdapter) LocalAddr() net.Addr         { return c.Unwrap().LocalAddr() }
func (c *ConnAdapter) RemoteAddr() net.Addr        { return c.Unwrap().RemoteAddr() }

func (c *ConnAdapter) SetDeadline(t time.Time) error {
	return c.Unwrap().SetDeadline(t)
}

func (c *ConnAdapter) SetReadDeadline(t time.Time) error {
	return c.Unwrap().SetReadDeadline(t)
}

func (c *ConnAdapter) SetWriteDeadline(t time.Time) error {
	return c.Unwrap().SetWriteDeadline(t)
}

// Listener accepts incoming connections.
type Listener interface {
	abstraction.Abstraction[net.Listener]

	Accept() (Conn, error)
	Close() error
	Addr() net.Addr
}

// ListenerAdapter adapts a net.Listener to Listener.
type ListenerAdapter struct {
	abstraction.Adapter[net.Listener]
}

var _ Listener = (*ListenerAdapter)(nil)

// NewListener wraps l
func NewListener(l net.Listener) *ListenerAdapter {
	return &ListenerAdapter{Adapter: abstraction.NewAdapter(l)}
}

// ToListener returns l as a Listener, or nil if l is nil
func ToListener(l net.Listener) Listener {
	return abstraction.ToInterface(l, func(l net.Listener) Listener {
		return NewListener(l)
	})
}

// Listen forwards to net.Listen and wraps the result
func Listen(network, address string) (Listener, error) {
	l, err := net.Listen(network, address)
	if err != nil {
		return nil, err
	}
	return NewListener(l), nil
}

// Accept waits for the next connection and wraps it
func (l *ListenerAdapter) Accept() (Conn, error) {
	c, err := l.Unwrap().Accept()
	if err != nil {
		return nil, err
	}
	return NewConn(c), nil
}

func (l *ListenerAdapter) Close() error   { return l.Unwrap().Close() }
func (l *ListenerAdapter) Addr() net.Addr { return l.Unwrap().Addr() }
