// guardpost — supervised task orchestrator for file-change guards.
package main

import "github.com/ppiankov/guardpost/internal/cli"

func main() {
	cli.Execute()
}
