// Package phonebook is an in-memory contact directory. The directory
// itself lives in pkg/types; cmd/phonebook is the interactive front end.
package phonebook

// Version is the release version reported by the CLI.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/phonebook"
