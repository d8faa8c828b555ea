package netx

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDownload(t *testing.T) {
	file := []byte("hello, s3")
	ctx := context.Background()

	t.Run("success 200 OK", func(t *testing.T) {
		var gotMethod string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			_, _ = w.Write(file)
		}))
		defer ts.Close()

		got, err := Download(ctx, ts.Client(), ts.URL+"/quote-media/q1/a.jpg", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodGet {
			t.Fatalf("method = %s, want GET", gotMethod)
		}
		if !bytes.Equal(got, file) {
			t.Fatalf("body = %q, want %q", got, file)
		}
	})

	t.Run("non-200 -> error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("Request has expired"))
		}))
		defer ts.Close()

		_, err := Download(ctx, nil, ts.URL, 0)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "download failed: 403") || !strings.Contains(err.Error(), "expired") {
			t.Fatalf("error = %q", err.Error())
		}
	})

	t.Run("limit", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(file)
		}))
		defer ts.Close()

		if _, err := Download(ctx, nil, ts.URL, 4); !errors.Is(err, ErrTooLarge) {
			t.Fatalf("err = %v, want ErrTooLarge", err)
		}
		if got, err := Download(ctx, nil, ts.URL, int64(len(file))); err != nil || len(got) != len(file) {
			t.Fatalf("exact limit: got %d bytes, err=%v", len(got), err)
		}
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		_, err := Download(ctx, nil, ts.URL, 0)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if strings.Contains(err.Error(), "download failed") {
			t.Fatalf("got wrong kind of error: %v", err)
		}
	})
}
