package swifttype

import "strings"

// SelectorSignature is the Objective-C-style method identity:
// {name, label1, label2, ...}, independent of parameter types (spec §3).
//
// The first keyword is the method name; subsequent entries are argument
// labels (Some(label)) or anonymous positions (None, represented as "").
type SelectorSignature struct {
	IsStatic bool
	Keywords []Keyword
}

// Keyword is one component of a selector signature after the method name:
// either a label (Present=true) or an anonymous position (Present=false).
type Keyword struct {
	Label   string
	Present bool
}

// Label returns a present label, or "" for an anonymous position.
func Label(s string) Keyword { return Keyword{Label: s, Present: true} }

// Anonymous returns an anonymous (unlabeled) argument position.
func Anonymous() Keyword { return Keyword{Present: false} }

// Name returns the method's base name (the first keyword).
func (s SelectorSignature) Name() string {
	if len(s.Keywords) == 0 {
		return ""
	}
	return s.Keywords[0].Label
}

// ArgumentCount returns the number of argument positions (keywords after the name).
func (s SelectorSignature) ArgumentCount() int {
	if len(s.Keywords) == 0 {
		return 0
	}
	return len(s.Keywords) - 1
}

// Equal compares two selector signatures structurally.
func (s SelectorSignature) Equal(other SelectorSignature) bool {
	if s.IsStatic != other.IsStatic || len(s.Keywords) != len(other.Keywords) {
		return false
	}
	for i, k := range s.Keywords {
		o := other.Keywords[i]
		if k.Present != o.Present || (k.Present && k.Label != o.Label) {
			return false
		}
	}
	return true
}

// String renders the selector the way Swift would display it, e.g. "init(x:y:)".
func (s SelectorSignature) String() string {
	var sb strings.Builder
	if len(s.Keywords) == 0 {
		return ""
	}
	sb.WriteString(s.Keywords[0].Label)
	if len(s.Keywords) > 1 {
		sb.WriteString("(")
		for _, k := range s.Keywords[1:] {
			if k.Present {
				sb.WriteString(k.Label)
			} else {
				sb.WriteString("_")
			}
			sb.WriteString(":")
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// Parameter is a single function-signature parameter.
type Parameter struct {
	Label        string // argument label, "" for an unlabeled ("_") argument
	Name         string
	Type         Type
	HasDefault   bool
}

// FunctionSignature is the Swift-side function signature (spec §3):
// {name, parameters, returnType, isStatic, isMutating}.
type FunctionSignature struct {
	Name       string
	Parameters []Parameter
	ReturnType Type
	IsStatic   bool
	IsMutating bool
}

// Selectors yields zero or more SelectorSignature values: one form using
// every parameter label, plus one additional form for each trailing run of
// default-valued parameters dropped (so a function `f(x: Int, y: Int = 0)`
// yields both `f(x:y:)` and `f(x:)`).
func (f FunctionSignature) Selectors() []SelectorSignature {
	base := func(n int) SelectorSignature {
		kws := make([]Keyword, 0, n+1)
		kws = append(kws, Label(f.Name))
		for i := 0; i < n; i++ {
			p := f.Parameters[i]
			if p.Label == "" {
				kws = append(kws, Anonymous())
			} else {
				kws = append(kws, Label(p.Label))
			}
		}
		return SelectorSignature{IsStatic: f.IsStatic, Keywords: kws}
	}

	selectors := []SelectorSignature{base(len(f.Parameters))}

	// Trailing default-valued parameters may each be dropped in turn,
	// producing progressively shorter call forms.
	n := len(f.Parameters)
	for n > 0 && f.Parameters[n-1].HasDefault {
		n--
		selectors = append(selectors, base(n))
	}
	return selectors
}

// Equals compares two function signatures for overload-duplicate detection:
// same parameter count, same parameter types, same labels; return type is
// not considered (mirrors the teacher's SignaturesEqual, generalized to
// Swift parameter labels instead of DWScript var/const/lazy modifiers).
func (f FunctionSignature) Equals(other FunctionSignature) bool {
	if len(f.Parameters) != len(other.Parameters) || f.IsStatic != other.IsStatic {
		return false
	}
	for i, p := range f.Parameters {
		o := other.Parameters[i]
		if p.Label != o.Label || !Equal(p.Type, o.Type) {
			return false
		}
	}
	return true
}
