package config

import (
	"fmt"

	"github.com/objc2swift/transpiler/internal/transform"
)

// TransformerSpec is the YAML/JSON shape of one transform.Transformer
// registration.
type TransformerSpec struct {
	ObjcFunctionName string     `yaml:"objcFunctionName" json:"objcFunctionName"`
	Target           TargetSpec `yaml:"target" json:"target"`
}

// Build resolves spec into a live transform.Transformer.
func (spec TransformerSpec) Build() (*transform.Transformer, error) {
	target, err := spec.Target.Build()
	if err != nil {
		return nil, err
	}
	return &transform.Transformer{ObjcFunctionName: spec.ObjcFunctionName, Target: target}, nil
}

// TargetSpec is the YAML/JSON shape of a transform.Target. Kind selects
// which of Name/FirstArgBecomesReceiver/Args apply, matching
// transform.TargetKind's three variants.
type TargetSpec struct {
	Kind                    string           `yaml:"kind" json:"kind"` // "method" | "propertyGetter" | "propertySetter"
	Name                    string           `yaml:"name" json:"name"`
	FirstArgBecomesReceiver bool             `yaml:"firstArgBecomesReceiver" json:"firstArgBecomesReceiver"`
	Args                    []ArgStrategySpec `yaml:"args" json:"args"`
}

// Build resolves spec into a live transform.Target.
func (spec TargetSpec) Build() (transform.Target, error) {
	switch spec.Kind {
	case "propertyGetter":
		return transform.NewPropertyGetterTarget(spec.Name), nil
	case "propertySetter":
		return transform.NewPropertySetterTarget(spec.Name), nil
	case "method", "":
		args := make([]transform.ArgStrategy, len(spec.Args))
		for i, a := range spec.Args {
			built, err := a.Build()
			if err != nil {
				return transform.Target{}, fmt.Errorf("arg %d: %w", i, err)
			}
			args[i] = built
		}
		return transform.NewMethodTarget(spec.Name, spec.FirstArgBecomesReceiver, args...), nil
	default:
		return transform.Target{}, fmt.Errorf("unknown target kind %q", spec.Kind)
	}
}

// ArgStrategySpec is the YAML/JSON-declarable subset of transform.
// ArgStrategy: AsIs, FromArgIndex, and Labeled wrapping either of those.
// Fixed, MergingArguments, Transformed, and OmitIf all carry a Go closure
// (a synthesize/combine/transform function, or an equality-compare
// expression built at registration time) that a data file cannot express,
// so registering one of those still requires Go code calling
// transform.Registry.Register directly — this is a documented scope
// limit, not an oversight (see DESIGN.md, internal/config).
type ArgStrategySpec struct {
	Kind  string           `yaml:"kind" json:"kind"` // "asIs" | "fromArgIndex" | "labeled"
	Index int              `yaml:"index,omitempty" json:"index,omitempty"`
	Label string           `yaml:"label,omitempty" json:"label,omitempty"`
	Inner *ArgStrategySpec `yaml:"inner,omitempty" json:"inner,omitempty"`
}

// Build resolves spec into a live transform.ArgStrategy.
func (spec ArgStrategySpec) Build() (transform.ArgStrategy, error) {
	switch spec.Kind {
	case "asIs", "":
		return transform.AsIs{}, nil
	case "fromArgIndex":
		return transform.FromArgIndex{Index: spec.Index}, nil
	case "labeled":
		if spec.Inner == nil {
			return nil, fmt.Errorf("labeled arg strategy requires inner")
		}
		inner, err := spec.Inner.Build()
		if err != nil {
			return nil, err
		}
		return transform.Labeled{Label: spec.Label, Inner: inner}, nil
	default:
		return nil, fmt.Errorf("unknown or non-declarable arg strategy kind %q (fixed/mergingArguments/transformed/omitIf require Go code)", spec.Kind)
	}
}
