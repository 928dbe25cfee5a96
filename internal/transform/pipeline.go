package transform

import (
	"github.com/objc2swift/transpiler/internal/ast"
	"github.com/objc2swift/transpiler/internal/errors"
	"github.com/objc2swift/transpiler/internal/source"
)

// Pass is a single expression-rewrite stage in the fixpoint pipeline (spec
// §4.6), generalized from the teacher's internal/semantic.Pass: instead of
// annotating a whole program in place, a Pass returns the (possibly
// rewritten) root expression plus whether it changed anything.
type Pass interface {
	Name() string
	Run(root ast.Expression) (ast.Expression, bool)
}

// DefaultFixpointCap is used when Pipeline's cap is left at zero.
const DefaultFixpointCap = 8

// Pipeline runs an ordered list of Passes to a fixpoint, grounded on the
// teacher's PassManager/RunAll but generalized from a single sequential
// pass over a whole program into repeated iteration over one expression
// tree until no pass reports a structural change.
type Pipeline struct {
	passes []Pass
	cap    int
}

// NewPipeline builds a pipeline running passes in the given order.
func NewPipeline(passes ...Pass) *Pipeline {
	return &Pipeline{passes: passes, cap: DefaultFixpointCap}
}

// SetFixpointCap overrides the default iteration cap (spec §5).
func (p *Pipeline) SetFixpointCap(n int) { p.cap = n }

// AddPass appends a pass, executed after all previously added ones.
func (p *Pipeline) AddPass(pass Pass) { p.passes = append(p.passes, pass) }

// RunToFixpoint repeatedly runs every pass, in order, over root until one
// full iteration leaves root structurally unchanged (spec §4.6: "reaching
// a fixpoint means one more pass produces structural equality on the root
// expression"), or the iteration cap is exceeded, in which case it returns
// a FixpointExceeded diagnostic (spec §7) identified by unitName.
func (p *Pipeline) RunToFixpoint(root ast.Expression, unitName string) (ast.Expression, error) {
	iterationCap := p.cap
	if iterationCap <= 0 {
		iterationCap = DefaultFixpointCap
	}

	current := root
	for i := 0; i < iterationCap; i++ {
		changed := false
		for _, pass := range p.passes {
			next, passChanged := pass.Run(current)
			if passChanged {
				changed = true
				current = next
			}
		}
		if !changed {
			return current, nil
		}
	}
	return current, &errors.FixpointExceeded{
		UnitName:   unitName,
		Iterations: iterationCap,
		Pos:        pos(current),
	}
}

func pos(e ast.Expression) source.Position {
	if e == nil {
		return source.Position{}
	}
	return e.Pos()
}
