package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/objc2swift/transpiler/internal/intention"
	"github.com/objc2swift/transpiler/internal/objcparse"
)

var describeQuery string

var describeCmd = &cobra.Command{
	Use:   "describe-type [file]",
	Short: "Collect a file's intention graph and query it with a gjson path",
	Long: `describe-type parses a single Objective-C file, collects its classes,
protocols, properties, and methods into the intention graph, exports that
graph as JSON, and (with --query) runs a gjson path expression against it —
e.g. '#(name=="MyView").superName' or '#(kind=="class")#.name'.

Without --query, the full exported JSON is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: describeType,
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringVar(&describeQuery, "query", "", "gjson path expression to run against the exported graph")
}

func describeType(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	file := objcparse.NewParser(string(content)).ParseFile()
	graph := intention.NewGraph()
	if errs := intention.NewCollector(graph).CollectFile(file); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", filename, e)
		}
		return fmt.Errorf("collecting %s failed with %d error(s)", filename, len(errs))
	}
	graph.Freeze()

	exported, err := graph.ExportJSON()
	if err != nil {
		return fmt.Errorf("failed to export intention graph: %w", err)
	}

	if describeQuery == "" {
		fmt.Println(string(exported))
		return nil
	}

	result := intention.Query(exported, describeQuery)
	fmt.Println(result.String())
	return nil
}
