// Command objc2swift transpiles Objective-C header and implementation files
// into Swift source.
package main

import (
	"os"

	"github.com/objc2swift/transpiler/cmd/objc2swift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
