package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/kbukum/fidor/testutil/fixtures"
)

// RecordedRequest describes a request the cassette must answer.
type RecordedRequest struct {
	Method string            `json:"method"`
	Path   string            `json:"path"`
	Query  map[string]string `json:"query,omitempty"`
}

// RecordedResponse is the reply played back for a matching request.
type RecordedResponse struct {
	Status  int               `json:"status"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    json.RawMessage   `json:"body,omitempty"`
	// RawBody is sent verbatim instead of Body, e.g. for HTML error pages.
	RawBody string `json:"raw_body,omitempty"`
}

// Interaction is one recorded exchange.
type Interaction struct {
	Request  RecordedRequest  `json:"request"`
	Response RecordedResponse `json:"response"`
}

// Call is a request received by the cassette server.
type Call struct {
	Method  string
	Path    string
	Query   map[string]string
	Headers http.Header
	Body    []byte
}

// JSON decodes the call body into a generic map.
func (c Call) JSON() (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(c.Body, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Cassette replays interactions over HTTP.
type Cassette struct {
	name         string
	interactions []Interaction

	mu        sync.Mutex
	server    *httptest.Server
	played    []bool
	calls     []Call
	unmatched []Call
}

type cassetteFile struct {
	Interactions []Interaction `json:"interactions"`
}

// NewCassette creates a cassette from inline interactions.
func NewCassette(name string, interactions ...Interaction) *Cassette {
	return &Cassette{
		name:         name,
		interactions: interactions,
		played:       make([]bool, len(interactions)),
	}
}

// LoadCassette reads a named recording from the fixtures package.
func LoadCassette(name string) (*Cassette, error) {
	data, err := fixtures.Cassette(name)
	if err != nil {
		return nil, err
	}
	var f cassetteFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("testutil: cassette %s: %w", name, err)
	}
	return NewCassette(name, f.Interactions...), nil
}

// Name returns the cassette name.
func (c *Cassette) Name() string { return c.name }

// Start launches the replay server.
func (c *Cassette) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.server != nil {
		return fmt.Errorf("testutil: cassette %s already started", c.name)
	}
	c.server = httptest.NewServer(http.HandlerFunc(c.serve))
	return nil
}

// Stop shuts the replay server down.
func (c *Cassette) Stop(_ context.Context) error {
	c.mu.Lock()
	srv := c.server
	c.server = nil
	c.mu.Unlock()
	if srv != nil {
		srv.Close()
	}
	return nil
}

// Reset forgets received calls and rewinds every interaction.
func (c *Cassette) Reset(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.played = make([]bool, len(c.interactions))
	c.calls = nil
	c.unmatched = nil
	return nil
}

// URL returns the server base URL. Start must have been called.
func (c *Cassette) URL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.server == nil {
		return ""
	}
	return c.server.URL
}

// Calls returns the number of requests received.
func (c *Cassette) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// Requests returns the requests received, in order.
func (c *Cassette) Requests() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}

// LastRequest returns the most recent request.
func (c *Cassette) LastRequest() (Call, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.calls) == 0 {
		return Call{}, false
	}
	return c.calls[len(c.calls)-1], true
}

// Unmatched returns requests no interaction matched.
func (c *Cassette) Unmatched() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.unmatched...)
}

func (c *Cassette) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	call := Call{
		Method:  r.Method,
		Path:    r.URL.Path,
		Query:   flatten(r.URL.Query()),
		Headers: r.Header.Clone(),
		Body:    body,
	}

	c.mu.Lock()
	c.calls = append(c.calls, call)
	resp, ok := c.match(call)
	if !ok {
		c.unmatched = append(c.unmatched, call)
	}
	c.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotImplemented)
		_, _ = fmt.Fprintf(w, `{"error":"cassette %s has no interaction for %s %s"}`, c.name, call.Method, call.Path)
		return
	}

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	payload := []byte(resp.RawBody)
	if resp.RawBody == "" && len(resp.Body) > 0 {
		payload = resp.Body
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// match returns the first unplayed interaction for call, falling back to the
// last played one so repeated reads keep working. Caller holds c.mu.
func (c *Cassette) match(call Call) (RecordedResponse, bool) {
	fallback := -1
	for i, in := range c.interactions {
		if !in.Request.matches(call) {
			continue
		}
		if !c.played[i] {
			c.played[i] = true
			return in.Response, true
		}
		fallback = i
	}
	if fallback >= 0 {
		return c.interactions[fallback].Response, true
	}
	return RecordedResponse{}, false
}

func (rr RecordedRequest) matches(call Call) bool {
	if rr.Method != "" && rr.Method != call.Method {
		return false
	}
	if rr.Path != call.Path {
		return false
	}
	for k, v := range rr.Query {
		if call.Query[k] != v {
			return false
		}
	}
	return true
}

func flatten(values map[string][]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
