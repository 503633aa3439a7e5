// Package httpapi exposes the slug normalizer, the uniqueness resolver and
// slug reservations over JSON HTTP.
//
//	POST   /v1/slugs                        {"text", "separator", "fallback"} -> {"slug"}
//	POST   /v1/slugs/batch                  {"texts", "separator"}            -> {"slugs"}
//	POST   /v1/slugs/unique                 {"table", "column", "text", "separator", "exclude_key", "claim", "key"} -> {"slug"}
//	POST   /v1/reservations                 {"scope", "text", "key"}          -> reservation
//	GET    /v1/reservations/{scope}/{slug}                                    -> reservation
//	DELETE /v1/reservations/{scope}/{slug}                                    -> 204
//
// Errors are rendered as {"error": {"code", "message", "request_id"}}.
// Exhausted uniqueness attempts map to 409 and store failures to 502.
package httpapi
