package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestGetResourceAsync(t *testing.T) {
	defer goleak.VerifyNone(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"name":"alice","value":42}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	f := GetResourceAsync[item](context.Background(), c, "/items/42")
	result, err := f.Wait(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Model != (item{Name: "alice", Value: 42}) {
		t.Errorf("decoded %+v", result.Model)
	}
}

func TestAsync_ConcurrentRequests(t *testing.T) {
	defer goleak.VerifyNone(t)

	var served atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served.Add(1)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"name":"n","value":1}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	const n = 16
	futures := make([]*Future[item], n)
	for i := range futures {
		futures[i] = GetResourceAsync[item](context.Background(), c, "/items")
	}
	for i, f := range futures {
		if _, err := f.Wait(context.Background()); err != nil {
			t.Errorf("future %d: %v", i, err)
		}
	}
	if served.Load() != n {
		t.Errorf("expected %d requests, served %d", n, served.Load())
	}
}

func TestAsync_ConfigurationErrorResolvesImmediately(t *testing.T) {
	defer goleak.VerifyNone(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no network call expected")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	f := CreateResourceAsync[Empty](context.Background(), c, "/items", item{Name: "x"},
		WithHeaders(map[string]string{"Content-Type": "application/xml"}))
	_, err := f.Wait(context.Background())
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestAsync_CancellationDuringNetworkExchange(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	f := GetResourceAsync[item](ctx, c, "/items")

	cancel()
	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	_, err := f.Wait(waitCtx)
	if err == nil {
		t.Fatal("expected an error after cancellation")
	}
}

func TestAsync_WaitHonorsItsOwnContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))

	c := newTestClient(t, srv.URL)
	f := GetResourceAsync[item](context.Background(), c, "/items")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := f.Wait(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	// Let the in-flight request finish before the server shuts down.
	close(release)
	f.Wait(context.Background())
	srv.Close()
}

func TestAsync_DeleteResourceAsync(t *testing.T) {
	defer goleak.VerifyNone(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(204)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.DeleteResourceAsync(context.Background(), "/items/3").Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
