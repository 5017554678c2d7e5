// Package hvac is the HTTP boundary of coolant: a typed client for the
// conditioner inventory API plus the error normalization the rest of the
// application relies on.
//
// # Endpoints
//
// The client wraps one REST collection and three reference collections:
//
//   - GET/POST /conditioners, GET/PUT/DELETE /conditioners/{id}
//   - GET /conditioner-statuses
//   - GET /conditioner-types
//   - GET /manufacturers
//
// All operations take a context.Context and either return decoded payloads
// or fail with an *APIError.
//
// # Error normalization
//
// Every failure is collapsed into an *APIError carrying exactly one
// user-facing message (UserMsg):
//
//   - transport failure (no response): a fixed "unable to reach" message
//   - non-2xx with a structured body: the body's message field, or
//     "Server error: {status}" when absent
//   - anything else (encode/decode problems): a fixed generic message
//
// Code above this package displays UserMsg and never branches on the
// failure kind. UserMessage is the helper for pulling that message out of
// a wrapped error chain.
//
// # Lookups
//
// FetchLookups fans out the three reference fetches concurrently and fails
// fast: partial lookup data would resolve foreign keys to "Unknown"
// silently, which is worse than an all-or-nothing error.
//
// # Validation
//
// Draft.Validate performs the client-side field checks (required fields,
// length limits, date format, positive foreign keys). Validation failures
// stay on the client; they are rendered per field and never reach the wire.
package hvac
