package exprir

import (
	"fmt"
	"strconv"
	"strings"
)

// Fragment is a rendered SQL expression plus its bound parameters, in
// placeholder order.
type Fragment struct {
	SQL    string
	Params []any
}

// Render converts an expression tree to SQL text and bound parameters.
//
// Rendering cannot fail for well-formed trees; a nil node or a nil child is
// a programming error in the rewriter and fails fast rather than emitting
// invalid SQL silently.
func Render(e Expr) (Fragment, error) {
	r := &renderer{}
	if err := r.render(e); err != nil {
		return Fragment{}, err
	}
	return Fragment{SQL: r.sb.String(), Params: r.params}, nil
}

type renderer struct {
	sb     strings.Builder
	params []any
}

func (r *renderer) render(e Expr) error {
	switch v := e.(type) {
	case FuncCall:
		return r.renderFuncCall(v)
	case ColumnRef:
		r.sb.WriteString(quoteIdent(v.Name))
		return nil
	case Cast:
		r.sb.WriteString("CAST(")
		if err := r.render(v.Inner); err != nil {
			return err
		}
		r.sb.WriteString(" AS ")
		r.sb.WriteString(v.TypeName)
		r.sb.WriteString(")")
		return nil
	case AtTimeZone:
		// The Applied marker has no printed form.
		r.sb.WriteString("(")
		if err := r.render(v.Inner); err != nil {
			return err
		}
		r.sb.WriteString(" AT TIME ZONE ")
		r.sb.WriteString(quoteString(v.Zone))
		r.sb.WriteString(")")
		return nil
	case Case:
		r.sb.WriteString("CASE WHEN ")
		if err := r.render(v.When); err != nil {
			return err
		}
		r.sb.WriteString(" THEN ")
		if err := r.render(v.Then); err != nil {
			return err
		}
		if v.Else != nil {
			r.sb.WriteString(" ELSE ")
			if err := r.render(v.Else); err != nil {
				return err
			}
		}
		r.sb.WriteString(" END")
		return nil
	case Infix:
		r.sb.WriteString("(")
		if err := r.render(v.Left); err != nil {
			return err
		}
		r.sb.WriteString(" ")
		r.sb.WriteString(v.Op)
		r.sb.WriteString(" ")
		if err := r.render(v.Right); err != nil {
			return err
		}
		r.sb.WriteString(")")
		return nil
	case StringLit:
		r.sb.WriteString(quoteString(v.Value))
		return nil
	case IntLit:
		r.sb.WriteString(strconv.FormatInt(v.Value, 10))
		return nil
	case DecimalLit:
		// String preserves the decimal's scale: New(100, -2) → "1.00".
		r.sb.WriteString(v.Value.String())
		return nil
	case Param:
		r.sb.WriteString("?")
		r.params = append(r.params, v.Value)
		return nil
	case nil:
		return fmt.Errorf("render: nil expression")
	default:
		return fmt.Errorf("render: unsupported expression type: %T", e)
	}
}

func (r *renderer) renderFuncCall(f FuncCall) error {
	if f.Name == "" {
		return fmt.Errorf("render: function call with empty name")
	}
	r.sb.WriteString(f.Name)
	r.sb.WriteString("(")
	for i, arg := range f.Args {
		if i > 0 {
			r.sb.WriteString(", ")
		}
		if err := r.render(arg); err != nil {
			return fmt.Errorf("render %s argument %d: %w", f.Name, i, err)
		}
	}
	r.sb.WriteString(")")
	return nil
}

// quoteIdent double-quotes an identifier, doubling embedded quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteString single-quotes a SQL string literal, doubling embedded quotes.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
