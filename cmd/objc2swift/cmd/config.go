package cmd

import "github.com/objc2swift/transpiler/internal/config"

// loadConfig returns the --config file's Config, or config.Default() if no
// --config flag was given, shared by every subcommand that builds a Driver.
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.LoadFile(configFile)
}
