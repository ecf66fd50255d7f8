// Package resource maps typed records onto the banking REST API.
//
// A record type embeds Meta and implements Model: it names its endpoint,
// declares its validation rules, renders its writable fields (AsJSON) and
// absorbs response bodies (ApplyWire). Service drives the lifecycle:
//
//	result := svc.Save(ctx, transfer)
//	switch result.Outcome {
//	case resource.OutcomeSuccess:          // id/state refreshed from the response
//	case resource.OutcomeValidationRejected: // nothing was sent
//	case resource.OutcomeRemoteRejected:   // transfer.Errors() holds the API messages
//	case resource.OutcomeTransportFailure: // result.Err() describes the fault
//	}
//
// Reads go through the generic Find and All helpers, which return fully
// decoded, persisted records.
package resource
