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
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type greeting struct {
	Text string `json:"text"`
}

var _ = Describe("WebSocket", func() {
	var (
		server *httptest.Server
		wsURL  string
	)

	BeforeEach(func() {
		upgrader := NewWebSocketUpgrader(&websocket.Upgrader{Subprotocols: []string{"echo"}})
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ws, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			defer ws.Close()
			for {
				mt, data, err := ws.ReadMessage()
				if err != nil {
					return
				}
				if err := ws.WriteMessage(mt, data); err != nil {
					return
				}
			}
		}))
		wsURL = "ws" + strings.TrimPrefix(server.URL, "http")
	})

	AfterEach(func() {
		server.Close()
	})

	It("exchanges messages through wrapped connections", func() {
		dialer := NewWebSocketDialer(&websocket.Dialer{Subprotocols: []string{"echo"}})
		ws, resp, err := dialer.DialContext(context.Background(), wsURL, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusSwitchingProtocols))
		defer ws.Close()

		Expect(ws.Subprotocol()).To(Equal("echo"))
		Expect(ws.RemoteAddr().String()).To(Equal(strings.TrimPrefix(server.URL, "http://")))

		Expect(ws.WriteMessage(websocket.TextMessage, []byte("hi"))).To(Succeed())
		mt, data, err := ws.ReadMessage()
		Expect(err).NotTo(HaveOccurred())
		Expect(mt).To(Equal(websocket.TextMessage))
		Expect(string(data)).To(Equal("hi"))

		Expect(ws.WriteJSON(greeting{Text: "hello"})).To(Succeed())
		var got greeting
		Expect(ws.ReadJSON(&got)).To(Succeed())
		Expect(got.Text).To(Equal("hello"))

		w, err := ws.NextWriter(websocket.BinaryMessage)
		Expect(err).NotTo(HaveOccurred())
		_, err = w.Write([]byte{1, 2, 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Close()).To(Succeed())
		mt, r, err := ws.NextReader()
		Expect(err).NotTo(HaveOccurred())
		Expect(mt).To(Equal(websocket.BinaryMessage))
		buf := make([]byte, 3)
		_, err = r.Read(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(buf).To(Equal([]byte{1, 2, 3}))
	})

	It("returns the handshake response when the dial fails", func() {
		plain := httptest.NewServer(http.NotFoundHandler())
		defer plain.Close()

		ws, resp, err := NewWebSocketDialer(nil).DialContext(context.Background(), "ws"+strings.TrimPrefix(plain.URL, "http"), nil)
		Expect(err).To(MatchError(websocket.ErrBadHandshake))
		Expect(ws).To(BeNil())
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
	})

	It("converts nil to a nil interface", func() {
		Expect(ToWebSocket(nil)).To(BeNil())
	})
})
