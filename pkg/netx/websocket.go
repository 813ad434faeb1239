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
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

// WebSocket is a message-oriented websocket connection.
type WebSocket interface {
	abstraction.Abstraction[*websocket.Conn]

	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	NextReader() (messageType int, r io.Reader, err error)
	NextWriter(messageType int) (io.WriteCloser, error)
	WriteControl(messageType int, data []byte, deadline time.Time) error
	ReadJSON(v any) error
	WriteJSON(v any) error
	Close() error
	LocalAddr() net.Addr
	RemoteAddr() net.Addr
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	Subprotocol() string
}

// WebSocketAdapter adapts a *websocket.Conn to WebSocket.
type WebSocketAdapter struct {
	abstraction.Adapter[*websocket.Conn]
}

var _ WebSocket = (*WebSocketAdapter)(nil)

// NewWebSocket wraps c
func NewWebSocket(c *websocket.Conn) *WebSocketAdapter {
	return &WebSocketAdapter{Adapter: abstraction.NewAdapter(c)}
}

// ToWebSocket returns c as a WebSocket, or nil if c is nil
func ToWebSocket(c *websocket.Conn) WebSocket {
	return abstraction.ToInterface(c, func(c *websocket.Conn) WebSocket {
		return NewWebSocket(c)
	})
}

func (w *WebSocketAdapter) ReadMessage() (int, []byte, error) {
	return w.Unwrap().ReadMessage()
}

func (w *WebSocketAdapter) WriteMessage(messageType int, data []byte) error {
	return w.Unwrap().WriteMessage(messageType, data)
}

func (w *WebSocketAdapter) NextReader() (int, io.Reader, error) {
	return w.Unwrap().NextReader()
}

func (w *WebSocketAdapter) NextWriter(messageType int) (io.WriteCloser, error) {
	return w.Unwrap().NextWriter(messageType)
}

func (w *WebSocketAdapter) WriteControl(messageType int, data []byte, deadline time.Time) error {
	return w.Unwrap().WriteControl(messageType, data, deadline)
}

func (w *WebSocketAdapter) ReadJSON(v any) error  { return w.Unwrap().ReadJSON(v) }
func (w *WebSocketAdapter) WriteJSON(v any) error { return w.Unwrap().WriteJSON(v) }
func (w *WebSocketAdapter) Close() error          { return w.Unwrap().Close() }
func (w *WebSocketAdapter) LocalAddr() net.Addr   { return w.Unwrap().LocalAddr() }
func (w *WebSocketAdapter) RemoteAddr() net.Addr  { return w.Unwrap().RemoteAddr() }
func (w *WebSocketAdapter) Subprotocol() string   { return w.Unwrap().Subprotocol() }

func (w *WebSocketAdapter) SetReadDeadline(t time.Time) error {
	return w.Unwrap().SetReadDeadline(t)
}

func (w *WebSocketAdapter) SetWriteDeadline(t time.Time) error {
	return w.Unwrap().SetWriteDeadline(t)
}

// WebSocketDialer opens client websocket connections.
type WebSocketDialer interface {
	DialContext(ctx context.Context, urlStr string, header http.Header) (WebSocket, *http.Response, error)
}

// WebSocketDialerAdapter adapts a *websocket.Dialer to WebSocketDialer.
type WebSocketDialerAdapter struct {
	abstraction.Adapter[*websocket.Dialer]
}

var _ WebSocketDialer = (*WebSocketDialerAdapter)(nil)

// NewWebSocketDialer wraps d. A nil d uses websocket.DefaultDialer.
func NewWebSocketDialer(d *websocket.Dialer) *WebSocketDialerAdapter {
	if d == nil {
		d = websocket.DefaultDialer
	}
	return &WebSocketDialerAdapter{Adapter: abstraction.NewAdapter(d)}
}

// DialContext dials urlStr. The handshake response is returned even when
// the dial fails so callers can inspect it.
func (d *WebSocketDialerAdapter) DialContext(ctx context.Context, urlStr string, header http.Header) (WebSocket, *http.Response, error) {
	c, resp, err := d.Unwrap().DialContext(ctx, urlStr, header)
	if err != nil {
		return nil, resp, err
	}
	return NewWebSocket(c), resp, nil
}

// WebSocketUpgrader turns server-side HTTP requests into websocket
// connections.
type WebSocketUpgrader interface {
	Upgrade(w http.ResponseWriter, r *http.Request, responseHeader http.Header) (WebSocket, error)
}

// WebSocketUpgraderAdapter adapts a *websocket.Upgrader to
// WebSocketUpgrader.
type WebSocketUpgraderAdapter struct {
	abstraction.Adapter[*websocket.Upgrader]
}

var _ WebSocketUpgrader = (*WebSocketUpgraderAdapter)(nil)

// NewWebSocketUpgrader wraps u. A nil u uses a zero websocket.Upgrader.
func NewWebSocketUpgrader(u *websocket.Upgrader) *WebSocketUpgraderAdapter {
	if u == nil {
		u = &websocket.Upgrader{}
	}
	return &WebSocketUpgraderAdapter{Adapter: abstraction.NewAdapter(u)}
}

func (u *WebSocketUpgraderAdapter) Upgrade(w http.ResponseWriter, r *http.Request, responseHeader http.Header) (WebSocket, error) {
	c, err := u.Unwrap().Upgrade(w, r, responseHeader)
	if err != nil {
		return nil, err
	}
	return NewWebSocket(c), nil
}
