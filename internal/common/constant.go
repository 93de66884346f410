package common

// RequestIDHeaderName carries the per-request correlation id between the
// client and the user service.
const RequestIDHeaderName = "X-Request-ID"
