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
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/codihuston/stdseam/pkg/abstraction"
)

var _ = Describe("ClientAdapter", func() {
	var (
		server *httptest.Server
		inner  *http.Client
		client *ClientAdapter
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mux := http.NewServeMux()
		mux.HandleFunc("/hello", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Method", r.Method)
			_, _ = io.WriteString(w, "hello "+r.Method)
		})
		mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", r.Header.Get("Content-Type"))
			_, _ = io.Copy(w, r.Body)
		})
		mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusNotFound)
		})
		server = httptest.NewServer(mux)
		inner = server.Client()
		client = NewClient(inner)
	})

	AfterEach(func() {
		server.Close()
	})

	It("exposes the wrapped client", func() {
		Expect(client.Unwrap()).To(BeIdenticalTo(inner))
		got, ok := abstraction.ToImplementation[*http.Client](Client(client))
		Expect(ok).To(BeTrue())
		Expect(got).To(BeIdenticalTo(inner))
	})

	It("forwards Get and Head", func() {
		resp, err := client.Get(server.URL + "/hello")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(Equal("hello GET"))

		head, err := client.Head(server.URL + "/hello")
		Expect(err).NotTo(HaveOccurred())
		Expect(head.Body.Close()).To(Succeed())
		Expect(head.Header.Get("X-Method")).To(Equal(http.MethodHead))
	})

	It("forwards Post and PostForm", func() {
		resp, err := client.Post(server.URL+"/echo", "text/plain", strings.NewReader("payload"))
		Expect(err).NotTo(HaveOccurred())
		body, _ := io.ReadAll(resp.Body)
		Expect(resp.Body.Close()).To(Succeed())
		Expect(string(body)).To(Equal("payload"))
		Expect(resp.Header.Get("Content-Type")).To(Equal("text/plain"))

		resp, err = client.PostForm(server.URL+"/echo", url.Values{"a": {"1"}})
		Expect(err).NotTo(HaveOccurred())
		body, _ = io.ReadAll(resp.Body)
		Expect(resp.Body.Close()).To(Succeed())
		Expect(string(body)).To(Equal("a=1"))
	})

	It("forwards the timeout to the wrapped client", func() {
		client.SetTimeout(3 * time.Second)
		Expect(inner.Timeout).To(Equal(3 * time.Second))
		Expect(client.Timeout()).To(Equal(3 * time.Second))
	})

	It("wraps the transport", func() {
		rt := client.Transport()
		Expect(rt).NotTo(BeNil())
		t, ok := rt.(*TransportAdapter)
		Expect(ok).To(BeTrue())
		Expect(t.Unwrap()).To(BeIdenticalTo(inner.Transport))
		client.CloseIdleConnections()
	})

	It("returns nil transport when the client uses the default", func() {
		Expect(NewClient(&http.Client{}).Transport()).To(BeNil())
	})

	It("propagates transport errors unchanged", func() {
		boom := errors.New("boom")
		c := NewClient(&http.Client{Transport: RoundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, boom
		})})
		_, err := c.Get("http://example.invalid/")
		Expect(errors.Is(err, boom)).To(BeTrue())
	})

	Describe("helpers", func() {
		It("reads strings and bytes", func() {
			s, err := GetString(ctx, client, server.URL+"/hello")
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(Equal("hello GET"))

			b, err := GetBytes(ctx, client, server.URL+"/hello")
			Expect(err).NotTo(HaveOccurred())
			Expect(b).To(Equal([]byte("hello GET")))
		})

		It("returns a read-only stream", func() {
			stream, err := GetStream(ctx, client, server.URL+"/hello")
			Expect(err).NotTo(HaveOccurred())
			defer stream.Close()
			Expect(stream.CanRead()).To(BeTrue())
			Expect(stream.CanSeek()).To(BeFalse())
			Expect(stream.Name()).To(HaveSuffix("/hello"))
		})

		It("reports non-success statuses", func() {
			_, err := GetString(ctx, client, server.URL+"/missing")
			var statusErr *StatusError
			Expect(errors.As(err, &statusErr)).To(BeTrue())
			Expect(statusErr.StatusCode).To(Equal(http.StatusNotFound))
			Expect(statusErr.Method).To(Equal(http.MethodGet))
			Expect(statusErr.Error()).To(ContainSubstring("404"))
		})

		It("fails on malformed URLs", func() {
			_, err := GetString(ctx, client, "://bad")
			Expect(err).To(HaveOccurred())
		})
	})

	It("converts nil to a nil interface", func() {
		Expect(ToClient(nil)).To(BeNil())
	})
})
