// Package rest provides typed JSON helpers on top of the transport client.
//
//	client, _ := rest.New(httpclient.Config{
//	    BaseURL: "https://aps.fidor.de",
//	    Auth:    httpclient.BearerAuth(token),
//	})
//
//	card, err := rest.Get[cardWire](ctx, client, "/cards/42")
//
// On a non-2xx status the helpers return the classified transport error and,
// when the body is valid JSON for T, the decoded response alongside it.
package rest
