package obisgo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oceanbio/obisgo"
	"github.com/oceanbio/obisgo/client"
	"github.com/oceanbio/obisgo/query"
	"github.com/oceanbio/obisgo/taxa"
)

func TestNewClient(t *testing.T) {
	const agent = "obisgo-test"

	var gotAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c, err := obisgo.NewClient(
		client.WithTimeout(5*time.Second),
		client.WithUserAgent(agent),
	)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	req, err := c.Request(context.Background(), c.URL("http", ts.Listener.Addr().String(), "/"), http.MethodGet)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if err := c.Do(req, http.StatusOK); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if gotAgent != agent {
		t.Errorf("expected User-Agent %q, got %q", agent, gotAgent)
	}

	// Options configure the built client only, never the shared default.
	if http.DefaultClient.Timeout != 0 {
		t.Errorf("http.DefaultClient.Timeout changed: %v", http.DefaultClient.Timeout)
	}
	if http.DefaultClient.Transport != nil {
		t.Error("http.DefaultClient.Transport changed")
	}
}

func TestNewTaxa(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`{"total":1}`))
	}))
	defer ts.Close()

	c, err := obisgo.NewTaxa(taxa.WithBaseURL(ts.URL + "/v3/"))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	res, err := c.Search(context.Background(), query.String("Mola mola"))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	data, ok := res.Data.(map[string]any)
	if !ok || data["total"] != float64(1) {
		t.Errorf("unexpected response data: %v", res.Data)
	}
}
