package grammar

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/TheRakeshPurohit/neu/pkg/action"
)

// rule tries to consume a prefix of in. On success it returns the produced
// value and the unconsumed rest; on failure it consumes nothing.
type rule[T any] func(in string) (T, string, bool)

// lit matches the first of lits that prefixes the input and yields v.
func lit[T any](v T, lits ...string) rule[T] {
	return func(in string) (T, string, bool) {
		for _, l := range lits {
			if strings.HasPrefix(in, l) {
				return v, in[len(l):], true
			}
		}
		var zero T
		return zero, in, false
	}
}

// alt tries rules in order and returns the first match. There is no
// backtracking into a rule once it has matched.
func alt[T any](rules ...rule[T]) rule[T] {
	return func(in string) (T, string, bool) {
		for _, r := range rules {
			if v, rest, ok := r(in); ok {
				return v, rest, true
			}
		}
		var zero T
		return zero, in, false
	}
}

// prefixed matches the literal p followed by r.
func prefixed[T any](p string, r rule[T]) rule[T] {
	return func(in string) (T, string, bool) {
		var zero T
		if !strings.HasPrefix(in, p) {
			return zero, in, false
		}
		v, rest, ok := r(in[len(p):])
		if !ok {
			return zero, in, false
		}
		return v, rest, true
	}
}

// mapTo transforms the value produced by r.
func mapTo[A, B any](r rule[A], f func(A) B) rule[B] {
	return func(in string) (B, string, bool) {
		v, rest, ok := r(in)
		if !ok {
			var zero B
			return zero, in, false
		}
		return f(v), rest, true
	}
}

// count consumes a run of decimal digits. With no digits it yields 1; the
// value is clamped into [1, action.MaxCount].
func count(in string) (int, string) {
	i := 0
	for i < len(in) && in[i] >= '0' && in[i] <= '9' {
		i++
	}
	if i == 0 {
		return 1, in
	}
	n, err := strconv.Atoi(in[:i])
	if err != nil {
		n = action.MaxCount
	}
	return action.ClampCount(n), in[i:]
}

// skipUntil consumes any runes up to and including the first occurrence of
// one of the terminators.
func skipUntil[T any](v T, terminators ...string) rule[T] {
	return func(in string) (T, string, bool) {
		for i := 0; i <= len(in); {
			for _, t := range terminators {
				if strings.HasPrefix(in[i:], t) {
					return v, in[i+len(t):], true
				}
			}
			if i == len(in) {
				break
			}
			_, size := utf8.DecodeRuneInString(in[i:])
			i += size
		}
		var zero T
		return zero, in, false
	}
}
