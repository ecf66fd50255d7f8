// Package transfer models the three kinds of money transfer the banking API
// accepts: Internal (to another customer by email or account), SEPA (to a
// European IBAN) and FPS (UK Faster Payments by sort code and account).
//
// The variants share their common attributes through an embedded Base and
// each declares its own presence and format rules. They are plain records;
// persistence goes through resource.Service.
package transfer
