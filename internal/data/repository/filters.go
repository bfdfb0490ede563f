package repository

import (
	"fmt"
	"strings"
)

// condBuilder accumulates WHERE conditions with positional args.
type condBuilder struct {
	conds []string
	args  []any
}

// add appends a condition; the pattern may reference the new arg with %s.
func (b *condBuilder) add(pattern string, arg any) {
	b.args = append(b.args, arg)
	placeholder := fmt.Sprintf("$%d", len(b.args))
	b.conds = append(b.conds, strings.ReplaceAll(pattern, "%s", placeholder))
}

// where renders the accumulated conditions, or an empty string.
func (b *condBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// next returns the placeholder index for the next appended arg.
func (b *condBuilder) next(arg any) string {
	b.args = append(b.args, arg)
	return fmt.Sprintf("$%d", len(b.args))
}
