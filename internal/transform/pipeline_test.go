package transform

import (
	"testing"

	"github.com/objc2swift/transpiler/internal/ast"
)

// incrementPass rewrites an integer literal by adding one, up to a ceiling,
// reporting no change once the ceiling is reached — enough to exercise both
// the fixpoint-reached and fixpoint-exceeded paths without a real pass.
type incrementPass struct{ ceiling int }

func (incrementPass) Name() string { return "increment" }

func (p incrementPass) Run(root ast.Expression) (ast.Expression, bool) {
	lit, ok := root.(*ast.Literal)
	if !ok {
		return root, false
	}
	n := 0
	for _, c := range lit.Text {
		n = n*10 + int(c-'0')
	}
	if n >= p.ceiling {
		return root, false
	}
	next := ast.NewScalarLiteral(lit.Pos(), lit.Kind, itoa(n+1))
	return next, true
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func TestPipelineReachesFixpoint(t *testing.T) {
	pipeline := NewPipeline(incrementPass{ceiling: 3})
	root := ast.NewScalarLiteral(zeroPos, ast.LiteralInteger, "0")

	result, err := pipeline.RunToFixpoint(root, "unit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := result.String(), "3"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestPipelineExceedsFixpointCap(t *testing.T) {
	pipeline := NewPipeline(incrementPass{ceiling: 100})
	pipeline.SetFixpointCap(4)
	root := ast.NewScalarLiteral(zeroPos, ast.LiteralInteger, "0")

	_, err := pipeline.RunToFixpoint(root, "unit")
	if err == nil {
		t.Fatalf("expected a FixpointExceeded diagnostic")
	}
}
