// Package server exposes the catalog over a JSON HTTP API.
//
// Routes:
//
//	GET  /api/v1/entries              filtered, paginated listing
//	GET  /api/v1/entries/{id}         one entry
//	POST /api/v1/entries              create an entry
//	POST /api/v1/entries/{id}/toggle  flip Open/Claimed
//	GET  /health/live                 liveness check
//	GET  /metrics                     Prometheus metrics
//
// The catalog core is single-threaded, so every handler that touches it runs
// under one mutex. Listing criteria come from the query string; the server
// keeps no per-client session.
package server
