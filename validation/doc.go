// Package validation evaluates declarative field rules against a record
// before it is sent to the API, and validates configuration structs.
//
// Rules never short-circuit: every violated rule is collected so the caller
// sees the complete failure set.
//
// # Declarative rules
//
//	rules := validation.Rules{
//	    validation.Presence("account_id"),
//	    validation.Presence("amount"),
//	    validation.Tag("remote_bic", "bic"),
//	}
//	fieldErrors := rules.Evaluate(record.Lookup)
//
// # Struct tags
//
//	type Config struct {
//	    BaseURL string `validate:"required,url"`
//	}
//	err := validation.ValidateStruct(cfg)
package validation
