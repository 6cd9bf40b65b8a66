package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"backoffice/internal/domain"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestListAcceptsBothEnvelopes(t *testing.T) {
	bodies := map[string]string{
		"/wrapped": `{"status":"success","data":[{"_id":"r1","roomName":"Deluxe"},{"_id":"r2","roomName":"Suite"}]}`,
		"/bare":    `[{"_id":"r1","roomName":"Deluxe"},{"_id":"r2","roomName":"Suite"}]`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(bodies[r.URL.Path])); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, 0, staticToken("tok"))

	for _, name := range []string{"wrapped", "bare"} {
		records, err := c.List(context.Background(), domain.Entity{Name: name, IDField: "_id"})
		if err != nil {
			t.Fatalf("List(%s) returned error: %v", name, err)
		}
		if len(records) != 2 {
			t.Fatalf("List(%s) returned %d records, want 2", name, len(records))
		}
		if records[0].ID("_id") != "r1" || records[1].ID("_id") != "r2" {
			t.Fatalf("List(%s) normalized wrong ids: %v", name, records)
		}
	}
}

func TestListMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(`{"status":"success","data":"not-a-list"}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, 0, staticToken("tok"))
	if _, err := c.List(context.Background(), domain.Rooms); !domain.IsMalformedResponse(err) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
}

func TestNoCredentialBlocksNetworkCall(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		if _, err := w.Write([]byte(`[]`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, 0, staticToken(""))
	if _, err := c.List(context.Background(), domain.Rooms); !domain.IsUnauthenticated(err) {
		t.Fatalf("expected UnauthenticatedError, got %v", err)
	}
	if n := atomic.LoadInt64(&calls); n != 0 {
		t.Fatalf("expected zero network calls without credential, got %d", n)
	}
}

func TestRemoteErrorCarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		if _, err := w.Write([]byte(`{"message":"check-out before check-in"}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, 0, staticToken("tok"))
	_, err := c.Create(context.Background(), domain.Bookings, map[string]any{"guestName": "x"})
	var remote domain.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remote.Message != "check-out before check-in" {
		t.Fatalf("backend message not surfaced, got %q", remote.Message)
	}
}

func TestRemoteErrorUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		if _, err := w.Write([]byte(`<html>boom</html>`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, 0, staticToken("tok"))
	err := c.Remove(context.Background(), domain.Offers, "o1")
	var remote domain.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remote.Message != "request failed" {
		t.Fatalf("expected generic fallback message, got %q", remote.Message)
	}
}

func TestRemoveTwiceSurfacesNotFound(t *testing.T) {
	deleted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if deleted {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, 0, staticToken("tok"))
	if err := c.Remove(context.Background(), domain.Halls, "h1"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := c.Remove(context.Background(), domain.Halls, "h1"); !domain.IsNotFound(err) {
		t.Fatalf("second delete should be NotFound, got %v", err)
	}
}

func TestCreateUsesAltPathForHalls(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if _, err := w.Write([]byte(`{"status":"success","data":{"_id":"h9"}}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, 0, staticToken("tok"))
	record, err := c.Create(context.Background(), domain.Halls, map[string]any{"hallName": "Ballroom"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if gotPath != "/halls/create" {
		t.Fatalf("hall creation hit %q, want /halls/create", gotPath)
	}
	if record.ID("_id") != "h9" {
		t.Fatalf("created record not normalized: %v", record)
	}
}

func TestRequestsCarryBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if _, err := w.Write([]byte(`[]`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, 0, staticToken("tok-123"))
	if _, err := c.List(context.Background(), domain.Members); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("missing bearer header, got %q", gotAuth)
	}
}
