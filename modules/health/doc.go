// Package health exposes the liveness endpoint.
//
// Unlike generated feature modules it has no model or repository: the
// router reports process health without touching the database.
package health
