package query

import (
	"net/url"
	"slices"
	"strings"
)

// encoder is satisfied by both argument variants.
type encoder interface {
	Value() (string, bool)
}

type pair struct {
	name string
	arg  encoder
}

// Args is an insertion-ordered collection of named query arguments.
// Setting a name twice overwrites the earlier value in place.
type Args struct {
	pairs []pair
}

// NewArgs returns an empty Args.
func NewArgs() *Args {
	return &Args{}
}

// SetString sets a string-valued argument.
func (a *Args) SetString(name string, arg StringArg) {
	a.set(name, arg)
}

// SetInt sets an integer-valued argument.
func (a *Args) SetInt(name string, arg IntArg) {
	a.set(name, arg)
}

func (a *Args) set(name string, arg encoder) {
	for i, p := range a.pairs {
		if p.name == name {
			a.pairs[i].arg = arg
			return
		}
	}
	a.pairs = append(a.pairs, pair{name: name, arg: arg})
}

// Get returns the encoded value for name. The second return is false
// when the name was never set or its value is absent.
func (a *Args) Get(name string) (string, bool) {
	for _, p := range a.pairs {
		if p.name == name {
			return p.arg.Value()
		}
	}
	return "", false
}

// Len reports the number of arguments carrying a present value.
func (a *Args) Len() int {
	var n int
	for _, p := range a.pairs {
		if _, ok := p.arg.Value(); ok {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the Args.
func (a *Args) Clone() *Args {
	return &Args{pairs: slices.Clone(a.pairs)}
}

// Encode serializes present arguments as a percent-encoded query string
// in insertion order. Absent values are skipped. url.Values.Encode would
// sort names alphabetically, so pairs are written out by hand.
func (a *Args) Encode() string {
	var sb strings.Builder
	for _, p := range a.pairs {
		v, ok := p.arg.Value()
		if !ok {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(v))
	}
	return sb.String()
}

// BuildURL joins a base URL with the encoded query string. A nil Args or
// one with no present values yields the base unchanged.
func BuildURL(base string, args *Args) string {
	if args == nil {
		return base
	}
	qs := args.Encode()
	if qs == "" {
		return base
	}
	return base + "?" + qs
}
