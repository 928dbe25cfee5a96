// Package objcswift is the public driver wiring every internal stage —
// objcparse, intention collection, the transform pipeline, and emit — into
// one Transpile call, the way the teacher's cmd/dwscript/cmd/compile.go
// wires lexer -> parser -> semantic analysis -> bytecode compiler into one
// compileScript function, just exposed as a library entry point rather
// than only as a CLI command body.
package objcswift

import (
	"fmt"

	"github.com/objc2swift/transpiler/internal/config"
	"github.com/objc2swift/transpiler/internal/emit"
	"github.com/objc2swift/transpiler/internal/errors"
	"github.com/objc2swift/transpiler/internal/intention"
	"github.com/objc2swift/transpiler/internal/objcparse"
	"github.com/objc2swift/transpiler/internal/source"
	"github.com/objc2swift/transpiler/internal/transform"
)

// UnitSource is one translation unit to transpile: its Objective-C text
// plus a name used for diagnostics and the fixpoint-exceeded report.
type UnitSource struct {
	Name   string
	Source string
}

// TranspileResult carries the emitted Swift text alongside every
// Diagnostic collected along the way — parse errors, collect-time
// redeclaration conflicts, unresolved types, skipped transforms, and
// fixpoint overruns all land here rather than aborting the run outright,
// except for the two stages (parse, collect) a printable tree can't
// survive without.
type TranspileResult struct {
	UnitName    string
	Swift       string
	Diagnostics []errors.Diagnostic
}

// HasErrors reports whether any collected Diagnostic is SeverityError
// rather than merely a warning.
func (r TranspileResult) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity() == errors.SeverityError {
			return true
		}
	}
	return false
}

// Driver holds the configuration and invocation-transformer registry a
// sequence of Transpile calls shares, so building the registry from config
// happens once per driver rather than once per unit.
type Driver struct {
	cfg      *config.Config
	registry *transform.Registry
}

// NewDriver builds a Driver from cfg, or config.Default() if cfg is nil.
func NewDriver(cfg *config.Config) (*Driver, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	reg, err := cfg.BuildRegistry()
	if err != nil {
		return nil, fmt.Errorf("objcswift: build registry: %w", err)
	}
	return &Driver{cfg: cfg, registry: reg}, nil
}

// Transpile runs unit through parse -> collect -> transform -> emit,
// returning whatever Swift text and diagnostics it produced. A non-nil
// error means parsing or collection failed outright (there is no tree left
// to emit); every other stage degrades to a diagnostic instead and still
// returns emitted text.
func (d *Driver) Transpile(unit UnitSource) (TranspileResult, error) {
	result := TranspileResult{UnitName: unit.Name}

	parser := objcparse.NewParser(unit.Source)
	file := parser.ParseFile()
	if parseErrs := parser.Errors(); len(parseErrs) > 0 {
		for _, ce := range errors.FromStringErrors(parseErrs, unit.Source, unit.Name) {
			result.Diagnostics = append(result.Diagnostics, ce)
		}
		return result, fmt.Errorf("objcswift: parsing %s failed with %d error(s)", unit.Name, len(parseErrs))
	}

	graph := intention.NewGraph()
	if collectErrs := intention.NewCollector(graph).CollectFile(file); len(collectErrs) > 0 {
		for _, e := range collectErrs {
			result.Diagnostics = append(result.Diagnostics, errors.NewCompilerError(source.Position{}, e.Error(), unit.Source, unit.Name))
		}
		return result, fmt.Errorf("objcswift: collecting %s failed with %d error(s)", unit.Name, len(collectErrs))
	}
	graph.Freeze()

	pipeline := transform.NewPipeline(transform.NewRegistryPass(d.registry))
	if d.cfg.FixpointCap > 0 {
		pipeline.SetFixpointCap(d.cfg.FixpointCap)
	}

	for _, i := range graph.All() {
		if i.Body == nil {
			continue
		}
		if err := transform.RewriteBody(i.Body.Statements, pipeline, unit.Name); err != nil {
			fe, ok := err.(*errors.FixpointExceeded)
			if !ok {
				return result, err
			}
			result.Diagnostics = append(result.Diagnostics, fe)
		}
	}

	printer := emit.NewPrinter()
	for _, directive := range file.Directives() {
		printer.WriteComment(directive.Text)
	}
	printer.PrintGraph(graph)
	result.Swift = printer.String()

	return result, nil
}

// TranspileAll runs Transpile over every unit, continuing past per-unit
// failures so one malformed file doesn't stop a whole project from being
// processed (spec §2's "driver processes a compilation batch, not just a
// single file").
func (d *Driver) TranspileAll(units []UnitSource) []TranspileResult {
	results := make([]TranspileResult, len(units))
	for i, u := range units {
		res, err := d.Transpile(u)
		if err != nil && len(res.Diagnostics) == 0 {
			res.Diagnostics = append(res.Diagnostics, errors.NewCompilerError(source.Position{}, err.Error(), u.Source, u.Name))
		}
		results[i] = res
	}
	return results
}
