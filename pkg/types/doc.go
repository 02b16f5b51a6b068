// Package types defines the contact directory: validated Name and Phone
// fields, the Record that groups them, the Directory that owns records by
// name, and the error types those operations return.
//
// Nothing in this package locks. A host that shares a Directory between
// goroutines guards each logical operation with its own mutex.
package types
