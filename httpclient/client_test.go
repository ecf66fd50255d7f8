package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/fidor/logger"
)

func TestClient_Do_GET(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/cards/42" {
			t.Errorf("expected /cards/42, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != DefaultAccept {
			t.Errorf("expected Accept %q, got %q", DefaultAccept, got)
		}
		if r.Header.Get(headerRequestID) == "" {
			t.Error("expected X-Request-ID header")
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": 42})
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/cards/42"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsSuccess() {
		t.Errorf("expected success, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(resp.Body), "42") {
		t.Errorf("unexpected body %s", resp.Body)
	}
	if resp.RequestID == "" {
		t.Error("expected request id on response")
	}
}

func TestClient_Do_POST_JSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected Content-Type application/json, got %s", ct)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["amount"] != float64(1000) {
			t.Errorf("expected amount 1000, got %v", body["amount"])
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":2366}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "internal_transfers",
		Body:   map[string]any{"amount": 1000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
}

func TestClient_Do_RawBytesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		if string(data) != `{"a":1}` {
			t.Errorf("unexpected body %s", data)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/x", Body: []byte(`{"a":1}`)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_HeadersAuthAndQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer override" {
			t.Errorf("expected request auth to win, got %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "fidor-go/test" {
			t.Errorf("expected user agent, got %q", got)
		}
		if got := r.Header.Get("X-Default"); got != "d" {
			t.Errorf("expected default header, got %q", got)
		}
		if got := r.Header.Get("X-Per-Request"); got != "p" {
			t.Errorf("expected request header, got %q", got)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL:   srv.URL + "/",
		Auth:      BearerAuth("default"),
		UserAgent: "fidor-go/test",
		Headers:   map[string]string{"X-Default": "d"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = c.Do(context.Background(), Request{
		Method:  http.MethodGet,
		Path:    "/cards",
		Query:   map[string]string{"page": "2"},
		Headers: map[string]string{"X-Per-Request": "p"},
		Auth:    BearerAuth("override"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_ErrorStatusKeepsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"account_id":["something specific"]}}`))
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	resp, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/internal_transfers", Body: map[string]any{}})
	if err == nil {
		t.Fatal("expected error for 422")
	}
	if !IsRejected(err) {
		t.Errorf("expected rejected error, got %v", err)
	}
	if resp == nil || resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected response to be returned with the error, got %+v", resp)
	}
	if !strings.Contains(string(resp.Body), "something specific") {
		t.Errorf("expected body, got %s", resp.Body)
	}
}

func TestClient_Do_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, _ := New(Config{BaseURL: url})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/cards"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsConnection(err) {
		t.Errorf("expected connection error, got %v", err)
	}
}

func TestClient_Do_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/slow"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsTimeout(err) {
		t.Errorf("expected timeout error, got %v", err)
	}
}

func TestClient_Do_EncodeFailure(t *testing.T) {
	c, _ := New(Config{BaseURL: "http://127.0.0.1:1"})
	_, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/x", Body: map[string]any{"ch": make(chan int)}})
	e, ok := AsError(err)
	if !ok || e.Code != ErrCodeEncoding {
		t.Fatalf("expected encoding error, got %v", err)
	}
}

func TestClient_LogsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)
	c, _ := New(Config{BaseURL: srv.URL}, WithLogger(log))

	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/accounts"})
	if !IsServerError(err) {
		t.Fatalf("expected server error, got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"path":"/accounts"`) || !strings.Contains(out, `"status":500`) {
		t.Errorf("expected failure log with path and status, got %s", out)
	}
}

func TestClient_WithHTTPClient(t *testing.T) {
	hc := &http.Client{}
	c, err := New(Config{}, WithHTTPClient(hc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Unwrap() != hc {
		t.Error("expected custom http client")
	}
	if c.Name() != "fidor" {
		t.Errorf("expected default name, got %q", c.Name())
	}
}
