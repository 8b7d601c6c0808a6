//go:build tools

package tools

// mockery v3 is used as an installed binary, so no blank import is needed.
// Run: mockery (from the repository root) to regenerate pkg/client/mocks.
