package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedArgument is returned by [StringArgOf] and [IntArgOf] when
// the given value is neither absent, the expected scalar type, nor a
// sequence of the expected scalar type.
var ErrUnsupportedArgument = errors.New("unsupported argument type")

// kind tags the variant held by an argument value.
type kind uint8

const (
	absent kind = iota
	scalar
	sequence
)

// StringArg is a string-valued query argument. The zero value is absent.
type StringArg struct {
	kind   kind
	scalar string
	seq    []string
}

// String returns a scalar StringArg.
func String(s string) StringArg {
	return StringArg{kind: scalar, scalar: s}
}

// Strings returns a sequence StringArg, encoded as a comma-joined list.
func Strings(vals ...string) StringArg {
	return StringArg{kind: sequence, seq: vals}
}

// IsAbsent reports whether the argument carries no value.
func (a StringArg) IsAbsent() bool {
	return a.kind == absent
}

// Value returns the encoded form of the argument. Scalars are returned
// unchanged and sequences are comma-joined. The second return is false
// when the argument is absent.
func (a StringArg) Value() (string, bool) {
	switch a.kind {
	case scalar:
		return a.scalar, true
	case sequence:
		return strings.Join(a.seq, ","), true
	default:
		return "", false
	}
}

// StringArgOf converts a loosely typed value into a StringArg.
// nil is absent, a string is a scalar, and []string or []any holding
// strings becomes a sequence. Anything else returns
// [ErrUnsupportedArgument].
func StringArgOf(v any) (StringArg, error) {
	switch val := v.(type) {
	case nil:
		return StringArg{}, nil
	case string:
		return String(val), nil
	case []string:
		return Strings(val...), nil
	case []any:
		ss := make([]string, 0, len(val))
		for _, el := range val {
			s, ok := el.(string)
			if !ok {
				return StringArg{}, fmt.Errorf("element %T: %w", el, ErrUnsupportedArgument)
			}
			ss = append(ss, s)
		}
		return Strings(ss...), nil
	default:
		return StringArg{}, fmt.Errorf("%T: %w", v, ErrUnsupportedArgument)
	}
}

// IntArg is an integer-valued query argument. The zero value is absent.
type IntArg struct {
	kind   kind
	scalar int64
	seq    []int64
}

// Int returns a scalar IntArg.
func Int(n int64) IntArg {
	return IntArg{kind: scalar, scalar: n}
}

// Ints returns a sequence IntArg, encoded as a comma-joined list.
func Ints(vals ...int64) IntArg {
	return IntArg{kind: sequence, seq: vals}
}

// IsAbsent reports whether the argument carries no value.
func (a IntArg) IsAbsent() bool {
	return a.kind == absent
}

// Value returns the encoded form of the argument in base 10. Sequences
// are comma-joined. The second return is false when the argument is absent.
func (a IntArg) Value() (string, bool) {
	switch a.kind {
	case scalar:
		return strconv.FormatInt(a.scalar, 10), true
	case sequence:
		ss := make([]string, len(a.seq))
		for i, n := range a.seq {
			ss[i] = strconv.FormatInt(n, 10)
		}
		return strings.Join(ss, ","), true
	default:
		return "", false
	}
}

// IntArgOf converts a loosely typed value into an IntArg.
// nil is absent, int and int64 are scalars, and []int, []int64 or []any
// holding either becomes a sequence. Anything else returns
// [ErrUnsupportedArgument].
func IntArgOf(v any) (IntArg, error) {
	switch val := v.(type) {
	case nil:
		return IntArg{}, nil
	case int:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case []int:
		ns := make([]int64, len(val))
		for i, n := range val {
			ns[i] = int64(n)
		}
		return Ints(ns...), nil
	case []int64:
		return Ints(val...), nil
	case []any:
		ns := make([]int64, 0, len(val))
		for _, el := range val {
			switch n := el.(type) {
			case int:
				ns = append(ns, int64(n))
			case int64:
				ns = append(ns, n)
			default:
				return IntArg{}, fmt.Errorf("element %T: %w", el, ErrUnsupportedArgument)
			}
		}
		return Ints(ns...), nil
	default:
		return IntArg{}, fmt.Errorf("%T: %w", v, ErrUnsupportedArgument)
	}
}
