// Package testutil provides replay fixtures for tests that talk to the
// banking API.
//
// A Cassette is a list of recorded request/response interactions served by
// an httptest server. Tests point a client at Cassette.URL and assert on the
// number and content of the requests that reached it:
//
//	func TestSave(t *testing.T) {
//	    c := testutil.T(t).Cassette("internal_transfer/save_success")
//	    client := newClient(t, c.URL())
//	    ...
//	    if c.Calls() != 1 {
//	        t.Errorf("expected 1 call, got %d", c.Calls())
//	    }
//	}
//
// Named cassettes are loaded from the embedded fixtures package, so every
// package shares one set of recordings.
package testutil
