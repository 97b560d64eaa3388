//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep mockgen, invoked through
// `go generate`, tracked in go.mod so the mocks can be regenerated on a fresh
// checkout.
package participant_cache

import (
	_ "go.uber.org/mock/mockgen"
)
