package fetcher

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/page-1.html" {
			w.Write([]byte("<html><body>catalogue page</body></html>"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewCollyFetcher("test-agent", 2*time.Second)

	body, err := f.Fetch(srv.URL + "/page-1.html")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.Contains(body, "catalogue page") {
		t.Errorf("Fetch() body = %q", body)
	}
}

func TestFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer srv.Close()

	f := NewCollyFetcher("test-agent", 2*time.Second)

	if _, err := f.Fetch(srv.URL + "/missing.html"); err == nil {
		t.Error("Fetch() returned no error for a 404")
	}
}

func TestFetchSequentialCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("page " + r.URL.Path))
	}))
	defer srv.Close()

	f := NewCollyFetcher("test-agent", 2*time.Second)

	first, err := f.Fetch(srv.URL + "/page-1.html")
	if err != nil {
		t.Fatalf("first Fetch() error = %v", err)
	}
	second, err := f.Fetch(srv.URL + "/page-2.html")
	if err != nil {
		t.Fatalf("second Fetch() error = %v", err)
	}
	if first == second {
		t.Error("sequential fetches returned the same body")
	}
}
