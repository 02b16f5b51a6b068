// Command phonebook runs an interactive, in-memory contact directory.
package main

import "github.com/mesh-intelligence/phonebook/internal/cli"

func main() {
	cli.Execute()
}
