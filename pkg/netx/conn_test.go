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
	"errors"
	"io"
	"net"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

var _ = Describe("Conn", func() {
	It("forwards to the wrapped connection", func() {
		a, b := net.Pipe()
		defer b.Close()
		conn := ToConn(a)
		Expect(conn.Unwrap()).To(BeIdenticalTo(a))

		go func() {
			defer GinkgoRecover()
			_, err := conn.Write([]byte("ping"))
			Expect(err).NotTo(HaveOccurred())
		}()
		buf := make([]byte, 4)
		_, err := io.ReadFull(b, buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(buf)).To(Equal("ping"))

		Expect(conn.LocalAddr()).To(Equal(a.LocalAddr()))
		Expect(conn.RemoteAddr()).To(Equal(a.RemoteAddr()))
		Expect(conn.Close()).To(Succeed())
	})

	It("propagates deadline errors unchanged", func() {
		a, b := net.Pipe()
		defer b.Close()
		conn := NewConn(a)
		defer conn.Close()

		Expect(conn.SetReadDeadline(time.Now().Add(-time.Second))).To(Succeed())
		_, err := conn.Read(make([]byte, 1))
		Expect(errors.Is(err, os.ErrDeadlineExceeded)).To(BeTrue())

		Expect(conn.SetDeadline(time.Time{})).To(Succeed())
		Expect(conn.SetWriteDeadline(time.Now().Add(-time.Second))).To(Succeed())
		_, err = conn.Write([]byte("x"))
		Expect(errors.Is(err, os.ErrDeadlineExceeded)).To(BeTrue())
	})

	It("does not stack adapters", func() {
		a, b := net.Pipe()
		defer a.Close()
		defer b.Close()
		conn := NewConn(a)
		Expect(ToConn(conn)).To(BeIdenticalTo(conn))
		Expect(ToConn(nil)).To(BeNil())

		raw, ok := abstraction.ToImplementation[net.Conn](conn)
		Expect(ok).To(BeTrue())
		Expect(raw).To(BeIdenticalTo(a))
	})
})

var _ = Describe("Listener and Dialer", func() {
	var listener Listener

	BeforeEach(func() {
		var err error
		listener, err = Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			_ = listener.Close()
		})
	})

	It("accepts wrapped connections from a wrapped dialer", func() {
		accepted := make(chan Conn, 1)
		go func() {
			defer GinkgoRecover()
			c, err := listener.Accept()
			Expect(err).NotTo(HaveOccurred())
			accepted <- c
		}()

		client, err := NewDialer(nil).DialContext(context.Background(), "tcp", listener.Addr().String())
		Expect(err).NotTo(HaveOccurred())
		defer client.Close()

		var server Conn
		Eventually(accepted).Should(Receive(&server))
		defer server.Close()
		_, ok := server.(*ConnAdapter)
		Expect(ok).To(BeTrue())

		_, err = client.Write([]byte("hello"))
		Expect(err).NotTo(HaveOccurred())
		buf := make([]byte, 5)
		_, err = io.ReadFull(server, buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(buf)).To(Equal("hello"))
	})

	It("returns dial errors unchanged", func() {
		addr := listener.Addr().String()
		Expect(listener.Close()).To(Succeed())

		_, err := NewDialer(&net.Dialer{Timeout: time.Second}).Dial("tcp", addr)
		var opErr *net.OpError
		Expect(errors.As(err, &opErr)).To(BeTrue())
	})

	It("fails Accept after Close", func() {
		Expect(listener.Close()).To(Succeed())
		_, err := listener.Accept()
		Expect(errors.Is(err, net.ErrClosed)).To(BeTrue())
	})
})

var _ = Describe("Resolver", func() {
	var resolver Resolver

	BeforeEach(func() {
		resolver = NewResolver(nil)
	})

	It("resolves IP literals without a lookup", func() {
		addrs, err := resolver.LookupHost(context.Background(), "127.0.0.1")
		Expect(err).NotTo(HaveOccurred())
		Expect(addrs).To(Equal([]string{"127.0.0.1"}))

		ips, err := resolver.LookupIPAddr(context.Background(), "::1")
		Expect(err).NotTo(HaveOccurred())
		Expect(ips).To(HaveLen(1))
		Expect(ips[0].IP.IsLoopback()).To(BeTrue())
	})

	It("resolves numeric ports", func() {
		port, err := resolver.LookupPort(context.Background(), "tcp", "8080")
		Expect(err).NotTo(HaveOccurred())
		Expect(port).To(Equal(8080))
	})
})
