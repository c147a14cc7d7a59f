// Package docker defines the container-engine client contract consumed by
// the rest of this module.
//
// Client is intentionally large and grows with the engine API. Code that
// needs to customize a few calls should wrap an existing Client with
// delegating.New instead of implementing every method; the generated
// forwarding methods are kept in sync with this interface by
// cmd/delegategen.
package docker
