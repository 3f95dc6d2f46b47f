// Package email is the dispatch core of the service. It turns validated
// request payloads into transport messages, renders template bodies where
// needed, drives the configured senders, and maps outcomes into result
// values for the HTTP boundary.
//
// Failure policy differs by operation and is deliberate:
//
//   - Send, SendBulk: fail soft. Transport failures come back as a Result
//     with Success false and the error text attached; the boundary still
//     answers 200. Bulk sends isolate failures per recipient and preserve
//     request order.
//   - SendTemplate: unknown template names fail hard before any network
//     call; transport failures after rendering fail soft like Send.
//   - SendPortfolioResponse, SendWelcome: fail hard. These are the fixed
//     notification flows and surface transport failures as errors for the
//     boundary to map to a 500.
//   - TestConnection: never fails; the verification outcome is embedded in
//     the returned result.
package email
