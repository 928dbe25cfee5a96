// Package cmd implements the objc2swift command-line interface, wiring
// pkg/objcswift into a cobra command tree. Grounded on the teacher's
// cmd/dwscript/cmd/root.go: same package-level rootCmd/Execute/init shape.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "objc2swift",
	Short: "Objective-C to Swift source transpiler",
	Long: `objc2swift rewrites Objective-C interfaces, implementations, and
protocols into the Swift declarations, properties, and method bodies they
model, following the invocation-transformer rules a project configures
for its own Objective-C API surface.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a transpiler config YAML file")
}

var configFile string
