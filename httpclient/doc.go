// Package httpclient is the transport layer of the fidor client. It resolves
// paths against the API base URL, applies bearer authentication and default
// headers, stamps every request with an X-Request-ID, wraps each call in an
// OpenTelemetry client span and classifies non-2xx status codes into *Error.
//
// The resource layer never sees net/http: it hands a Request to Do and gets a
// Response (status, headers, raw body) or an error back. The JSON conveniences
// live in the rest subpackage.
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://aps.fidor.de",
//	    Auth:    httpclient.BearerAuth(token),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/cards/42",
//	})
//
// Retries are deliberately absent; callers that want them wrap Do.
package httpclient
