package interp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func (e *Env) installBuiltins() {
	e.funcs["len"] = func(args []any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("len takes 1 argument")
		}
		switch v := args[0].(type) {
		case string:
			return int64(len(v)), nil
		case []any:
			return int64(len(v)), nil
		}
		return nil, fmt.Errorf("len: cannot measure %s", typeName(args[0]))
	}

	e.funcs["str"] = func(args []any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("str takes 1 argument")
		}
		return Format(args[0]), nil
	}

	e.funcs["int"] = func(args []any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("int takes 1 argument")
		}
		switch v := args[0].(type) {
		case int64:
			return v, nil
		case float64:
			return int64(v), nil
		case bool:
			if v {
				return int64(1), nil
			}
			return int64(0), nil
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("int: cannot convert %q", v)
			}
			return n, nil
		}
		return nil, fmt.Errorf("int: cannot convert %s", typeName(args[0]))
	}

	e.funcs["float"] = func(args []any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("float takes 1 argument")
		}
		switch v := args[0].(type) {
		case int64:
			return float64(v), nil
		case float64:
			return v, nil
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, fmt.Errorf("float: cannot convert %q", v)
			}
			return f, nil
		}
		return nil, fmt.Errorf("float: cannot convert %s", typeName(args[0]))
	}

	e.funcs["abs"] = func(args []any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("abs takes 1 argument")
		}
		switch v := args[0].(type) {
		case int64:
			if v < 0 {
				return -v, nil
			}
			return v, nil
		case float64:
			return math.Abs(v), nil
		}
		return nil, fmt.Errorf("abs: needs a number, got %s", typeName(args[0]))
	}

	e.funcs["upper"] = func(args []any) (any, error) {
		s, err := oneString("upper", args)
		if err != nil {
			return nil, err
		}
		return strings.ToUpper(s), nil
	}

	e.funcs["lower"] = func(args []any) (any, error) {
		s, err := oneString("lower", args)
		if err != nil {
			return nil, err
		}
		return strings.ToLower(s), nil
	}

	e.funcs["trim"] = func(args []any) (any, error) {
		s, err := oneString("trim", args)
		if err != nil {
			return nil, err
		}
		return strings.TrimSpace(s), nil
	}

	e.funcs["split"] = func(args []any) (any, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("split takes 2 arguments")
		}
		s, ok := args[0].(string)
		sep, ok2 := args[1].(string)
		if !ok || !ok2 {
			return nil, fmt.Errorf("split: both arguments must be strings")
		}
		parts := strings.Split(s, sep)
		out := make([]any, len(parts))
		for i, p := range parts {
			out[i] = p
		}
		return out, nil
	}

	exit := func(args []any) (any, error) { return nil, ErrExit }
	e.funcs["exit"] = exit
	e.funcs["quit"] = exit
}

func oneString(name string, args []any) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s takes 1 argument", name)
	}
	s, ok := args[0].(string)
	if !ok {
		return "", fmt.Errorf("%s: needs a string, got %s", name, typeName(args[0]))
	}
	return s, nil
}
