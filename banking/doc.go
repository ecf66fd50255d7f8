// Package banking is the entry point of the client. It wires configuration,
// transport, logging and tracing together and exposes one method per
// resource operation.
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	client, err := banking.New(*cfg)
//	if err != nil { ... }
//
//	t := client.BuildSEPATransfer(transfer.SEPAAttrs{
//	    Attrs: transfer.Attrs{
//	        AccountID:   "875",
//	        ExternalUID: transfer.NewExternalUID(),
//	        Subject:     "Rent",
//	        Amount:      money.Amount(money.MustParse("450.00")),
//	    },
//	    RemoteIBAN: "AT131490022010010999",
//	    RemoteName: "John Doe",
//	})
//	switch res := client.Save(ctx, t); res.Outcome {
//	case resource.OutcomeSuccess:
//	    fmt.Println(t.ID(), t.StateValue())
//	case resource.OutcomeValidationRejected, resource.OutcomeRemoteRejected:
//	    fmt.Println(t.Errors().FullMessages())
//	default:
//	    return res.Err()
//	}
package banking
