// Package client talks to the backend user service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface):
//     RegisterUser, GetUser and UpdateUser.
//  2. A REST/JSON implementation (see HTTPClient) that tags every request
//     with an X-Request-ID header and decodes user records.
//
// # Error Handling
//
// Failures are tagged so callers can tell them apart without re-parsing
// statuses:
//
//   - *ClientError    4xx answers; errors.Is(err, ErrNotFound) for 404,
//     errors.Is(err, ErrUsernameTaken) for 409
//   - *ServerError    5xx answers, or a status the call does not accept
//     (UpdateUser accepts only 200)
//   - *TransportError network, cancellation and decode failures;
//     errors.Is(err, ErrUnavailable) holds
//
// No call is retried.
package client
