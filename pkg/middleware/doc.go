// Package middleware provides HTTP middleware for serving generated sites:
// Prometheus request metrics and OpenTelemetry tracing.
//
// Both middlewares are plain func(http.Handler) http.Handler and compose
// with chi or any net/http router:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Metrics())
//	r.Use(middleware.Tracing())
package middleware
