//go:build mage

// Package main provides build targets for the phonebook project using Mage.
//
// Usage:
//
//	mage build      Compile the phonebook binary to bin/
//	mage test:all   Run all tests
//	mage test:unit  Run all tests quietly, ignoring the cache
//	mage test:race  Run all tests with the race detector
//	mage demo       Build, then run the demonstration walkthrough
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install phonebook to GOPATH/bin
//	mage stats      Print Go line counts as JSON
package main

const (
	binGo      = "go"
	binaryName = "phonebook"
	binaryDir  = "bin"
	cmdDir     = "./cmd/phonebook"
)
