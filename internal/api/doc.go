// Package api implements the low-level HTTP transport for the
// VerifyKit verification API. It builds authenticated GET requests,
// interprets status codes and decodes JSON bodies into untyped values.
//
// This package is internal; use the root verifykit package instead.
package api
