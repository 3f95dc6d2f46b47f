// Package httpapi is the HTTP boundary of the email service. It binds and
// validates request payloads, applies per-route rate limits and the API-key
// guard, invokes the dispatch service, and wraps every response in the
// service's JSON envelope:
//
//	{"code": 200, "data": {...}, "message": "..."}
//
// All routes live under the /api prefix. Validation failures answer 400 with
// the offending fields, unknown templates 400, missing or wrong API keys
// 401, exceeded rate limits 429, and hard delivery failures 500 with a
// summarized reason.
package httpapi
