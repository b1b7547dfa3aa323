package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFetchJSONFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"note_id":"n1"},{"note_id":"n2"}]`))
	}))
	defer srv.Close()

	var records []map[string]string
	c := New(5 * time.Second)
	if err := c.FetchJSON(context.Background(), srv.URL, &records); err != nil {
		t.Fatalf("FetchJSON: %v", err)
	}
	if len(records) != 2 || records[0]["note_id"] != "n1" {
		t.Errorf("records = %v", records)
	}
}

func TestFetchJSONNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	var v any
	c := New(5 * time.Second)
	if err := c.FetchJSON(context.Background(), srv.URL+"/gone.json", &v); err == nil {
		t.Error("expected error for 404")
	}
}

func TestFetchJSONMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	var v []any
	c := New(5 * time.Second)
	if err := c.FetchJSON(context.Background(), srv.URL, &v); err == nil {
		t.Error("expected decode error")
	}
}

func TestFetchJSONFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")
	if err := os.WriteFile(path, []byte(`["a","b"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	var v []string
	c := New(5 * time.Second)
	if err := c.FetchJSON(context.Background(), path, &v); err != nil {
		t.Fatalf("FetchJSON: %v", err)
	}
	if len(v) != 2 {
		t.Errorf("v = %v", v)
	}
}

func TestFetchJSONMissingFile(t *testing.T) {
	var v any
	c := New(5 * time.Second)
	if err := c.FetchJSON(context.Background(), filepath.Join(t.TempDir(), "nope.json"), &v); err == nil {
		t.Error("expected error for missing file")
	}
}
