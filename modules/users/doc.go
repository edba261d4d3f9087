// Package users implements the users feature module.
//
// Layered layout:
//   - model.go: document model for the "users" collection
//   - schemas.go: request/response payloads
//   - repository.go: data access
//   - use_case.go: business logic
//   - router.go: HTTP endpoints, mounted automatically via modules/manifest.go
package users
