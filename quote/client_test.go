package quote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomypizza/orderdesk/quote"
)

func TestFetchReturnsServedQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":"Molto bene.","author":"Chef"}`))
	}))
	defer srv.Close()

	c := quote.New(quote.WithEndpoint(srv.URL))
	q := c.Fetch(context.Background())
	if q.Text != "Molto bene." || q.Author != "Chef" {
		t.Errorf("unexpected quote: %+v", q)
	}
}

func TestFetchFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := quote.New(quote.WithEndpoint(srv.URL))
	q := c.Fetch(context.Background())
	if q.Text == "" || q.Author == "" {
		t.Errorf("fallback quote should be complete, got %+v", q)
	}
}

func TestFetchFallsBackOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{`))
	}))
	defer srv.Close()

	c := quote.New(quote.WithEndpoint(srv.URL))
	q := c.Fetch(context.Background())
	if q.Text == "" {
		t.Error("expected a fallback quote")
	}
}

func TestFetchFallsBackOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := quote.New(
		quote.WithEndpoint(srv.URL),
		quote.WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}),
	)

	start := time.Now()
	q := c.Fetch(context.Background())
	if q.Text == "" {
		t.Error("expected a fallback quote on timeout")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("fetch should fail fast on timeout, took %v", elapsed)
	}
}

func TestFetchFallsBackWhenUnreachable(t *testing.T) {
	c := quote.New(quote.WithEndpoint("http://127.0.0.1:1/random"))
	q := c.Fetch(context.Background())
	if q.Text == "" {
		t.Error("expected a fallback quote when the endpoint is unreachable")
	}
}
