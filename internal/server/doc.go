// Package server runs the slugd HTTP server: a chi router with health
// probes, signal handling and ordered shutdown hooks.
//
//	app := server.New(
//		server.WithLogger(log),
//		server.WithAddress(":8080"),
//		server.WithMiddleware(httpapi.RequestID(), httpapi.Recover(log)),
//		server.WithRoutes(api.Routes),
//		server.WithHealthCheck("postgres", db.Healthcheck(pool)),
//		server.WithShutdownHook(db.Shutdown(pool)),
//	)
//	if err := app.Run(); err != nil {
//		log.Error("server stopped", slog.Any("error", err))
//	}
//
// /health/live and /health/ready are always mounted.
package server
