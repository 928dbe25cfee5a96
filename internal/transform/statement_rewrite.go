package transform

import "github.com/objc2swift/transpiler/internal/ast"

// RewriteBody runs pipeline to a fixpoint over every expression embedded in
// body, in place, recursing into nested statement lists (if/while/for
// bodies, switch cases, do/catch blocks, and closure bodies reached through
// an expression field). unitName is threaded through for the
// errors.FixpointExceeded diagnostic a nested pipeline run may produce.
func RewriteBody(body []ast.Statement, pipeline *Pipeline, unitName string) error {
	for _, stmt := range body {
		if err := rewriteStatement(stmt, pipeline, unitName); err != nil {
			return err
		}
	}
	return nil
}

func rewriteStatement(stmt ast.Statement, pipeline *Pipeline, unitName string) error {
	switch s := stmt.(type) {
	case *ast.CompoundStatement:
		return RewriteBody(s.Statements, pipeline, unitName)

	case *ast.IfStatement:
		if err := rewriteExprField(&s.Condition, stmt, pipeline, unitName); err != nil {
			return err
		}
		if err := RewriteBody(s.Then, pipeline, unitName); err != nil {
			return err
		}
		return RewriteBody(s.Else, pipeline, unitName)

	case *ast.WhileStatement:
		if err := rewriteExprField(&s.Condition, stmt, pipeline, unitName); err != nil {
			return err
		}
		return RewriteBody(s.Body, pipeline, unitName)

	case *ast.DoWhileStatement:
		if err := RewriteBody(s.Body, pipeline, unitName); err != nil {
			return err
		}
		return rewriteExprField(&s.Condition, stmt, pipeline, unitName)

	case *ast.ForStatement:
		if s.Kind == ast.ForIn {
			if err := rewriteExprField(&s.Collection, stmt, pipeline, unitName); err != nil {
				return err
			}
		} else {
			if err := rewriteExprField(&s.Condition, stmt, pipeline, unitName); err != nil {
				return err
			}
			if s.Init != nil {
				if err := rewriteStatement(s.Init, pipeline, unitName); err != nil {
					return err
				}
			}
			if s.Post != nil {
				if err := rewriteStatement(s.Post, pipeline, unitName); err != nil {
					return err
				}
			}
		}
		return RewriteBody(s.Body, pipeline, unitName)

	case *ast.SwitchStatement:
		if err := rewriteExprField(&s.Subject, stmt, pipeline, unitName); err != nil {
			return err
		}
		for i := range s.Cases {
			if err := RewriteBody(s.Cases[i].Body, pipeline, unitName); err != nil {
				return err
			}
		}
		return nil

	case *ast.DoStatement:
		if err := RewriteBody(s.Body, pipeline, unitName); err != nil {
			return err
		}
		for i := range s.Catches {
			if err := RewriteBody(s.Catches[i].Body, pipeline, unitName); err != nil {
				return err
			}
		}
		return nil

	case *ast.DeferStatement:
		return RewriteBody(s.Body, pipeline, unitName)

	case *ast.ReturnStatement:
		if s.Value == nil {
			return nil
		}
		return rewriteExprField(&s.Value, stmt, pipeline, unitName)

	case *ast.ExpressionStatement:
		return rewriteExprField(&s.Expr, stmt, pipeline, unitName)

	case *ast.VariableDeclStatement:
		if s.Initializer == nil {
			return nil
		}
		return rewriteExprField(&s.Initializer, stmt, pipeline, unitName)

	default:
		// BreakStatement, ContinueStatement, UnknownStatement: no embedded
		// expression field to rewrite.
		return nil
	}
}

// rewriteExprField runs pipeline over *field, reattaching the result to
// owner if it changed. A pointer to the field lets one helper cover every
// Statement variant's differently-named expression field.
func rewriteExprField(field *ast.Expression, owner ast.Node, pipeline *Pipeline, unitName string) error {
	if *field == nil {
		return nil
	}
	next, err := pipeline.RunToFixpoint(*field, unitName)
	if err != nil {
		return err
	}
	*field = next
	ast.Attach(owner, next)
	return rewriteNestedClosures(next, pipeline, unitName)
}

// rewriteNestedClosures finds BlockLiteral expressions reachable from e and
// runs RewriteBody over their statement bodies — the one place a Statement
// list hides inside an Expression tree, so the RegistryPass walk (which only
// ever sees Expressions) cannot reach it on its own.
func rewriteNestedClosures(e ast.Expression, pipeline *Pipeline, unitName string) error {
	switch n := e.(type) {
	case *ast.BlockLiteral:
		return RewriteBody(n.Body, pipeline, unitName)

	case *ast.PostfixExpression:
		if err := rewriteNestedClosures(n.Base, pipeline, unitName); err != nil {
			return err
		}
		for _, s := range n.Suffixes {
			if s.Kind == ast.SuffixCall {
				for _, a := range s.Arguments {
					if err := rewriteNestedClosures(a.Value, pipeline, unitName); err != nil {
						return err
					}
				}
			}
			if s.Kind == ast.SuffixIndex {
				if err := rewriteNestedClosures(s.Index, pipeline, unitName); err != nil {
					return err
				}
			}
		}
		return nil

	case *ast.BinaryExpression:
		if err := rewriteNestedClosures(n.Left, pipeline, unitName); err != nil {
			return err
		}
		return rewriteNestedClosures(n.Right, pipeline, unitName)

	case *ast.UnaryExpression:
		return rewriteNestedClosures(n.Operand, pipeline, unitName)

	case *ast.PrefixExpression:
		return rewriteNestedClosures(n.Operand, pipeline, unitName)

	case *ast.TernaryExpression:
		if err := rewriteNestedClosures(n.Condition, pipeline, unitName); err != nil {
			return err
		}
		if err := rewriteNestedClosures(n.Then, pipeline, unitName); err != nil {
			return err
		}
		return rewriteNestedClosures(n.Else, pipeline, unitName)

	case *ast.CastExpression:
		return rewriteNestedClosures(n.Expr, pipeline, unitName)

	case *ast.AssignmentExpression:
		if err := rewriteNestedClosures(n.Target, pipeline, unitName); err != nil {
			return err
		}
		return rewriteNestedClosures(n.Value, pipeline, unitName)

	case *ast.Parenthesized:
		return rewriteNestedClosures(n.Inner, pipeline, unitName)

	case *ast.TypeCheckExpression:
		return rewriteNestedClosures(n.Expr, pipeline, unitName)

	default:
		return nil
	}
}
