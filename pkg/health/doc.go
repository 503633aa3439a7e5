// Package health serves liveness and readiness probes for slugd.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"postgres": db.Healthcheck(pool),
//		"redis":    redis.Healthcheck(client),
//	}, health.WithTimeout(2*time.Second)))
//
// Readiness runs every check concurrently under one deadline. Responses are
// plain text ("OK" or "Service Unavailable") unless the client asks for JSON
// with ?format=json or Accept: application/json:
//
//	{"status":"unhealthy","checks":{"redis":{"status":"unhealthy","error":"...","duration":"2s"}}}
//
// [Run] executes the same checks once and returns an error, for startup gating.
package health
