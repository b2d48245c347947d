package interp

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// ErrExit signals that the interpreter session should end. The exit()
// and quit() builtins return it.
var ErrExit = errors.New("interpreter exit")

// Func is a builtin callable.
type Func func(args []any) (any, error)

// Env is one interpreter environment: variables plus builtin functions.
// Variables persist for the lifetime of the environment.
type Env struct {
	vars  map[string]any
	funcs map[string]Func
}

func NewEnv() *Env {
	e := &Env{vars: map[string]any{}, funcs: map[string]Func{}}
	e.installBuiltins()
	return e
}

// RegisterFunc adds or replaces a builtin function. The shell uses this
// to expose statement execution to interpreter sessions.
func (e *Env) RegisterFunc(name string, fn Func) {
	e.funcs[name] = fn
}

// Get returns a variable's value.
func (e *Env) Get(name string) (any, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set assigns a variable.
func (e *Env) Set(name string, v any) { e.vars[name] = v }

// Run parses and evaluates one interpreter statement. A top-level
// assignment returns nil so the prompt does not echo it.
func (e *Env) Run(input string) (any, error) {
	n, err := ParseStatement(input)
	if err != nil {
		return nil, err
	}
	v, err := e.eval(n)
	if err != nil {
		return nil, err
	}
	if _, isAssign := n.(Assign); isAssign {
		return nil, nil
	}
	return v, nil
}

func (e *Env) eval(n Node) (any, error) {
	switch n := n.(type) {
	case Literal:
		return n.Val, nil

	case Ident:
		v, ok := e.vars[n.Name]
		if !ok {
			return nil, fmt.Errorf("undefined variable %q", n.Name)
		}
		return v, nil

	case Assign:
		v, err := e.eval(n.X)
		if err != nil {
			return nil, err
		}
		e.vars[n.Name] = v
		return v, nil

	case List:
		out := make([]any, 0, len(n.Elems))
		for _, el := range n.Elems {
			v, err := e.eval(el)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case Unary:
		x, err := e.eval(n.X)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case MINUS:
			switch v := x.(type) {
			case int64:
				return -v, nil
			case float64:
				return -v, nil
			}
			return nil, fmt.Errorf("cannot negate %s", typeName(x))
		case NOT:
			return !truthy(x), nil
		}
		return nil, fmt.Errorf("unknown unary operator %s", n.Op)

	case Index:
		return e.evalIndex(n)

	case Call:
		fn, ok := e.funcs[n.Name]
		if !ok {
			return nil, fmt.Errorf("undefined function %q", n.Name)
		}
		argv := make([]any, 0, len(n.Args))
		for _, a := range n.Args {
			v, err := e.eval(a)
			if err != nil {
				return nil, err
			}
			argv = append(argv, v)
		}
		return fn(argv)

	case Binary:
		return e.evalBinary(n)
	}
	return nil, fmt.Errorf("unhandled node %T", n)
}

func (e *Env) evalIndex(n Index) (any, error) {
	x, err := e.eval(n.X)
	if err != nil {
		return nil, err
	}
	iv, err := e.eval(n.I)
	if err != nil {
		return nil, err
	}
	i, ok := iv.(int64)
	if !ok {
		return nil, fmt.Errorf("index must be an integer, got %s", typeName(iv))
	}
	switch v := x.(type) {
	case string:
		if i < 0 || int(i) >= len(v) {
			return nil, fmt.Errorf("string index %d out of range", i)
		}
		return string(v[i]), nil
	case []any:
		if i < 0 || int(i) >= len(v) {
			return nil, fmt.Errorf("list index %d out of range", i)
		}
		return v[i], nil
	}
	return nil, fmt.Errorf("cannot index %s", typeName(x))
}

func (e *Env) evalBinary(n Binary) (any, error) {
	// Short-circuit logic first.
	if n.Op == AND || n.Op == OR {
		x, err := e.eval(n.X)
		if err != nil {
			return nil, err
		}
		if n.Op == AND && !truthy(x) {
			return false, nil
		}
		if n.Op == OR && truthy(x) {
			return true, nil
		}
		y, err := e.eval(n.Y)
		if err != nil {
			return nil, err
		}
		return truthy(y), nil
	}

	x, err := e.eval(n.X)
	if err != nil {
		return nil, err
	}
	y, err := e.eval(n.Y)
	if err != nil {
		return nil, err
	}

	if n.Op == PLUS {
		if xs, ok := x.(string); ok {
			if ys, ok := y.(string); ok {
				return xs + ys, nil
			}
		}
	}

	if n.Op == EQ {
		return equal(x, y), nil
	}
	if n.Op == NEQ {
		return !equal(x, y), nil
	}

	xi, xf, xIsInt, xNum := asNumber(x)
	yi, yf, yIsInt, yNum := asNumber(y)
	if !xNum || !yNum {
		return nil, fmt.Errorf("operator %s needs numbers, got %s and %s", n.Op, typeName(x), typeName(y))
	}

	if xIsInt && yIsInt {
		switch n.Op {
		case PLUS:
			return xi + yi, nil
		case MINUS:
			return xi - yi, nil
		case STAR:
			return xi * yi, nil
		case SLASH:
			if yi == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			return xi / yi, nil
		case PERCENT:
			if yi == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			return xi % yi, nil
		case LT:
			return xi < yi, nil
		case LTE:
			return xi <= yi, nil
		case GT:
			return xi > yi, nil
		case GTE:
			return xi >= yi, nil
		}
	}

	switch n.Op {
	case PLUS:
		return xf + yf, nil
	case MINUS:
		return xf - yf, nil
	case STAR:
		return xf * yf, nil
	case SLASH:
		if yf == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return xf / yf, nil
	case PERCENT:
		return nil, fmt.Errorf("%% needs integers")
	case LT:
		return xf < yf, nil
	case LTE:
		return xf <= yf, nil
	case GT:
		return xf > yf, nil
	case GTE:
		return xf >= yf, nil
	}
	return nil, fmt.Errorf("unknown operator %s", n.Op)
}

func asNumber(v any) (i int64, f float64, isInt, ok bool) {
	switch v := v.(type) {
	case int64:
		return v, float64(v), true, true
	case float64:
		return 0, v, false, true
	}
	return 0, 0, false, false
}

func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	}
	return true
}

func equal(x, y any) bool {
	_, xf, _, xNum := asNumber(x)
	_, yf, _, yNum := asNumber(y)
	if xNum && yNum {
		return xf == yf
	}
	return reflect.DeepEqual(x, y)
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case []any:
		return "list"
	}
	return fmt.Sprintf("%T", v)
}

// Format renders a value the way the py prompt prints results.
func Format(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return v
	case []any:
		parts := make([]string, len(v))
		for i, el := range v {
			if s, ok := el.(string); ok {
				parts[i] = fmt.Sprintf("%q", s)
			} else {
				parts[i] = Format(el)
			}
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}
