package uia

import (
	"fmt"
	"strings"
	"time"
)

// Query describes a single element lookup: a scope root plus zero or more
// predicates combined conjunctively. The host application exposes no stable
// IDs, so every predicate is structural (name substring/equality, class name).
type Query struct {
	// Scope limits the search to a subtree. nil means the whole tree.
	Scope Element

	// NameContains matches elements whose name contains the substring.
	NameContains string

	// NameEquals matches elements whose name is exactly this string.
	NameEquals string

	// ClassName matches elements whose class name is exactly this string.
	ClassName string

	// Timeout bounds the retry loop for find-first lookups. Zero means the
	// locator's configured default.
	Timeout time.Duration
}

// Match reports whether el satisfies every predicate of the query. Property
// reads can fail on stale handles; the error is returned so callers can decide
// to skip the element.
func (q Query) Match(el Element) (bool, error) {
	if q.NameContains != "" || q.NameEquals != "" {
		name, err := el.Name()
		if err != nil {
			return false, err
		}
		if q.NameContains != "" && !strings.Contains(name, q.NameContains) {
			return false, nil
		}
		if q.NameEquals != "" && name != q.NameEquals {
			return false, nil
		}
	}
	if q.ClassName != "" {
		class, err := el.ClassName()
		if err != nil {
			return false, err
		}
		if class != q.ClassName {
			return false, nil
		}
	}
	return true, nil
}

// String renders the predicates for error messages and logs.
func (q Query) String() string {
	var parts []string
	if q.NameContains != "" {
		parts = append(parts, fmt.Sprintf("name contains %q", q.NameContains))
	}
	if q.NameEquals != "" {
		parts = append(parts, fmt.Sprintf("name equals %q", q.NameEquals))
	}
	if q.ClassName != "" {
		parts = append(parts, fmt.Sprintf("class %q", q.ClassName))
	}
	if len(parts) == 0 {
		return "any element"
	}
	return strings.Join(parts, " and ")
}
