// Package services is the layer between the report server's handlers and the
// analyzers. Handlers stay HTTP-only; the services find generated files on
// disk, run the analyzers over the configured datasets and report health.
//
// Every method takes a context and returns errors from dataguide/internal/errors
// so the handlers can map them to RFC 7807 responses.
package services
