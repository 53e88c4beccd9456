// Package app wires the report server together: services, handlers,
// middleware, the chi router and the HTTP server with graceful shutdown.
//
// The initialization sequence:
//
//  1. Resolve paths from the loaded configuration
//  2. Create the report and health services
//  3. Build the router with the middleware chain and routes
//  4. Serve until the context is cancelled, then shut down
//
// Usage:
//
//	application := app.New(cfg, paths, logger, metrics)
//	if err := application.Run(ctx); err != nil {
//	    os.Exit(1)
//	}
package app
