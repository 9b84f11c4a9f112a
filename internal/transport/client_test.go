package transport_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/libtranslate/internal/transport"
)

var _ = Describe("Client", func() {
	var (
		server *httptest.Server
		client *transport.Client
	)

	BeforeEach(func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("hello " + r.URL.Query().Get("q")))
		})
		mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
		mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/ok?q=redirected", http.StatusFound)
		})
		mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
			w.Write([]byte("late"))
		})
		server = httptest.NewServer(mux)
		client = transport.New(100 * time.Millisecond)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("New", func() {
		It("should fall back to the default timeout", func() {
			Expect(transport.New(0).Timeout()).To(Equal(transport.DefaultTimeout))
		})

		It("should keep a positive timeout", func() {
			Expect(client.Timeout()).To(Equal(100 * time.Millisecond))
		})
	})

	Describe("Get", func() {
		It("should return the body of a successful response", func() {
			body, err := client.Get(context.Background(), server.URL+"/ok?q=world")
			Expect(err).NotTo(HaveOccurred())
			Expect(body).To(Equal("hello world"))
		})

		It("should follow redirects", func() {
			body, err := client.Get(context.Background(), server.URL+"/moved")
			Expect(err).NotTo(HaveOccurred())
			Expect(body).To(Equal("hello redirected"))
		})

		It("should report error statuses", func() {
			_, err := client.Get(context.Background(), server.URL+"/missing")

			var statusErr *transport.StatusError
			Expect(errors.As(err, &statusErr)).To(BeTrue())
			Expect(statusErr.Code).To(Equal(http.StatusNotFound))
			Expect(statusErr.Error()).To(ContainSubstring("404"))
		})

		It("should time out slow backends", func() {
			_, err := client.Get(context.Background(), server.URL+"/slow")
			Expect(err).To(MatchError(transport.ErrRequest))
		})

		It("should wrap connection failures", func() {
			addr := server.URL
			server.Close()

			_, err := client.Get(context.Background(), addr+"/ok")
			Expect(err).To(MatchError(transport.ErrRequest))
		})

		It("should stop waiting when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := transport.New(time.Second).Get(ctx, server.URL+"/slow")
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})
