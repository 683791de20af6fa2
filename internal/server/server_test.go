package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/fibmatrix/internal/fibonacci"
	"github.com/agbru/fibmatrix/internal/logging"
	"github.com/agbru/fibmatrix/internal/service"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := logging.NewZerologAdapter(zerolog.Nop())
	svc := service.NewCalculatorService(fibonacci.NewDefaultFactory(), logger, 10_000)
	return NewServer("127.0.0.1:0", svc, logger)
}

func doRequest(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %v", body["status"])
	}
}

func TestHandleAlgorithms(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/v1/algorithms")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Algorithms []string `json:"algorithms"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Algorithms) != 2 {
		t.Errorf("algorithms = %v, want two entries", body.Algorithms)
	}
}

func TestHandleCalculate(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/fibonacci?n=10")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var body calculateResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if body.Value != "55" || body.N != 10 || body.Algorithm != "matrix" || body.Digits != 2 {
			t.Errorf("unexpected body: %+v", body)
		}
	})

	t.Run("explicit algorithm", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/fibonacci?n=20&algo=iterative")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "6765") {
			t.Errorf("body missing F(20): %s", rec.Body.String())
		}
	})

	t.Run("missing n", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		if rec := doRequest(t, s, http.MethodGet, "/api/v1/fibonacci"); rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("negative n is an invalid argument", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/fibonacci?n=-1")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "invalid argument") {
			t.Errorf("body does not describe the invalid argument: %s", rec.Body.String())
		}
	})

	t.Run("non-numeric n", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		if rec := doRequest(t, s, http.MethodGet, "/api/v1/fibonacci?n=ten"); rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("n above the ceiling", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/fibonacci?n=10001")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "maximum") {
			t.Errorf("body does not mention the ceiling: %s", rec.Body.String())
		}
	})

	t.Run("unknown algorithm is a client error", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/fibonacci?n=10&algo=closed-form")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "closed-form") {
			t.Errorf("body does not name the bad algorithm: %s", rec.Body.String())
		}
	})

	t.Run("wrong method", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		if rec := doRequest(t, s, http.MethodPost, "/api/v1/fibonacci?n=10"); rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})
}

func TestHandleMetrics(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	// Generate some traffic first so counters exist.
	doRequest(t, s, http.MethodGet, "/api/v1/fibonacci?n=10")

	rec := doRequest(t, s, http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "fibmatrix_requests_total") {
		t.Errorf("scrape output missing request counter")
	}
}

// TestServeReturnsOnListenerFailure covers the lifecycle path where serving
// fails on its own: the server must report the error immediately instead of
// blocking until an external shutdown signal arrives.
func TestServeReturnsOnListenerFailure(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	ln.Close()

	done := make(chan error, 1)
	go func() { done <- s.serve(context.Background(), ln) }()

	select {
	case err := <-done:
		if err == nil {
			t.Errorf("serve returned nil after the listener failed")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not return after the listener failed")
	}
}

func TestRunShutsDownGracefully(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// Give the listener a moment to come up, then ask for shutdown.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}
