// Package validator provides composable, rule-based validation for request
// payloads.
//
// Each field check is a Rule pairing a predicate with the error to report
// when it fails. Apply runs a set of rules and returns ValidationErrors
// collecting every failure, so clients see all offending fields at once
// rather than the first one:
//
//	err := validator.Apply(
//	    validator.Required("subject", req.Subject),
//	    validator.ValidEmail("to", req.To),
//	)
//
// ValidationErrors implements error; use ExtractValidationErrors to recover
// the structured form at the HTTP boundary for per-field error responses.
package validator
