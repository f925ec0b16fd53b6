// filepath: cmd/itemhub/main.go
package main

import "itemhub/internal/cli"

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
