package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/objc2swift/transpiler/pkg/objcswift"
)

var (
	transpileOutputFile string
	transpileVerbose    bool
)

var transpileCmd = &cobra.Command{
	Use:   "transpile [file...]",
	Short: "Transpile one or more Objective-C header/source files to Swift",
	Long: `Transpile reads each Objective-C file given, runs it through parsing,
intention collection, invocation-transformer rewriting, and Swift emission,
and writes the resulting Swift source to stdout, to the -o file when one
is given, or, with --verbose, to a .swift file next to each input.

Examples:
  # Transpile a single header, printing Swift to stdout
  objc2swift transpile MyView.h

  # Transpile with a custom output path
  objc2swift transpile MyView.h -o MyView.swift

  # Transpile a whole batch, continuing past any file that fails to parse
  objc2swift transpile *.h`,
	Args: cobra.MinimumNArgs(1),
	RunE: transpileFiles,
}

func init() {
	rootCmd.AddCommand(transpileCmd)

	transpileCmd.Flags().StringVarP(&transpileOutputFile, "output", "o", "", "output file (single input only; default: stdout)")
	transpileCmd.Flags().BoolVarP(&transpileVerbose, "verbose", "v", false, "verbose output")
}

func transpileFiles(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	driver, err := objcswift.NewDriver(cfg)
	if err != nil {
		return fmt.Errorf("failed to build driver: %w", err)
	}

	units := make([]objcswift.UnitSource, 0, len(args))
	for _, filename := range args {
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		units = append(units, objcswift.UnitSource{Name: filename, Source: string(content)})
	}

	results := driver.TranspileAll(units)

	failed := 0
	for i, result := range results {
		filename := args[i]
		if transpileVerbose {
			fmt.Fprintf(os.Stderr, "Transpiling %s...\n", filename)
		}
		for _, d := range result.Diagnostics {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", filename, d.Severity(), d.Error())
		}
		if result.HasErrors() {
			failed++
			continue
		}
		if err := writeResult(filename, result.Swift); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("transpilation failed for %d of %d file(s)", failed, len(units))
	}
	return nil
}

func writeResult(inputName, swift string) error {
	if transpileOutputFile != "" {
		if err := os.WriteFile(transpileOutputFile, []byte(swift), 0644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", transpileOutputFile, err)
		}
		return nil
	}
	if transpileVerbose {
		out := swiftOutputName(inputName)
		if err := os.WriteFile(out, []byte(swift), 0644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", out, err)
		}
		fmt.Printf("Transpiled %s -> %s\n", inputName, out)
		return nil
	}
	fmt.Print(swift)
	return nil
}

func swiftOutputName(inputName string) string {
	ext := filepath.Ext(inputName)
	if ext == "" {
		return inputName + ".swift"
	}
	return strings.TrimSuffix(inputName, ext) + ".swift"
}
