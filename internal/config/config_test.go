package config

import (
	"os"
	"testing"

	"github.com/objc2swift/transpiler/internal/ast"
	"github.com/objc2swift/transpiler/internal/source"
)

const sampleYAML = `
assumeNonnullByDefault: true
fixpointCap: 12
transformers:
  - objcFunctionName: CGPointMake
    target:
      kind: method
      name: CGPoint
      args:
        - kind: labeled
          label: x
          inner:
            kind: asIs
        - kind: labeled
          label: y
          inner:
            kind: asIs
`

func TestLoadParsesTransformers(t *testing.T) {
	cfg, err := Load([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.AssumeNonnullByDefault {
		t.Fatalf("expected AssumeNonnullByDefault true")
	}
	if cfg.FixpointCap != 12 {
		t.Fatalf("got FixpointCap %d, want 12", cfg.FixpointCap)
	}
	if len(cfg.Transformers) != 1 {
		t.Fatalf("got %d transformers, want 1", len(cfg.Transformers))
	}
}

func TestBuildRegistryAppliesConfiguredTransformer(t *testing.T) {
	cfg, err := Load([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	reg, err := cfg.BuildRegistry()
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}

	var zeroPos source.Position
	call := ast.NewPostfixExpression(zeroPos, ast.NewIdentifier(zeroPos, "CGPointMake"), []ast.PostfixSuffix{
		{Kind: ast.SuffixCall, Arguments: []ast.Argument{
			{Value: ast.NewScalarLiteral(zeroPos, ast.LiteralFloat, "1")},
			{Value: ast.NewScalarLiteral(zeroPos, ast.LiteralFloat, "2")},
		}},
	})

	result, ok := reg.Apply(call)
	if !ok {
		t.Fatalf("expected configured transformer to apply")
	}
	if got, want := result.String(), "CGPoint(x: 1, y: 2)"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestArgStrategySpecRejectsNonDeclarableKind(t *testing.T) {
	spec := ArgStrategySpec{Kind: "mergingArguments"}
	if _, err := spec.Build(); err == nil {
		t.Fatalf("expected error for non-declarable arg strategy kind")
	}
}

func TestMergeOverrideFileAppliesPartialOverride(t *testing.T) {
	dir := t.TempDir()
	overridePath := dir + "/override.yaml"
	if err := os.WriteFile(overridePath, []byte("fixpointCap: 3\n"), 0644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	cfg := Default()
	if err := cfg.MergeOverrideFile(overridePath); err != nil {
		t.Fatalf("MergeOverrideFile: %v", err)
	}
	if cfg.FixpointCap != 3 {
		t.Fatalf("got FixpointCap %d, want 3", cfg.FixpointCap)
	}
}

func TestAddTransformerAppendsEntry(t *testing.T) {
	cfg := Default()
	spec := TransformerSpec{
		ObjcFunctionName: "CGRectMake",
		Target:           TargetSpec{Kind: "method", Name: "CGRect"},
	}
	if err := cfg.AddTransformer(spec); err != nil {
		t.Fatalf("AddTransformer: %v", err)
	}
	if len(cfg.Transformers) != 1 || cfg.Transformers[0].ObjcFunctionName != "CGRectMake" {
		t.Fatalf("got %+v", cfg.Transformers)
	}
}
