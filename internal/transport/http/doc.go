// Package http implements the report server's request handlers.
//
// Handlers are thin: they parse the request, call the service layer and
// render the result with go-chi/render. Service errors are turned into
// RFC 7807 problem responses by the shared error handler, so an analyzer's
// MISSING_FILE becomes a 404 and an INVALID_RECORD a 422.
//
// # Endpoints
//
//	GET /api/health          liveness and runtime information
//	GET /api/health/ready    datasets and output directory present
//	GET /api/version         build information
//	GET /api/reports         generated charts and exports
//	GET /api/reports/*       one generated file, by the name the listing returns
//	GET /api/sales/summary   every section of the sales analysis as JSON
//	GET /api/students/summary every section of the student analysis as JSON
package http
