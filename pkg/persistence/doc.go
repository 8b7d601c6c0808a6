// Package persistence provides runtime state persistence for the LwM2M client.
//
// This package handles the JSON serialization of the configured management
// servers so that a client can restore its registry after a restart.
// Registration state and observations are not persisted: servers come back
// Unregistered and the registration engine starts over.
package persistence
