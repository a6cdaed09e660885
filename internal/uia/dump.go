package uia

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Dump writes the subtree rooted at el to w, one element per line, indented by
// depth: classname, name, value. Diagnostic aid for working out ordinal field
// positions on a live host window.
func Dump(w io.Writer, walker TreeWalker, el Element, depth int) error {
	name, err := el.Name()
	if err != nil {
		return err
	}
	class, err := el.ClassName()
	if err != nil {
		return err
	}
	value, err := el.Value()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%sclassname: %q, name: %q, value: %q\n", strings.Repeat(" ", depth), class, name, value)

	child, err := walker.FirstChild(el)
	if err != nil {
		if errors.Is(err, ErrNoChild) {
			return nil
		}
		return err
	}
	for {
		if err := Dump(w, walker, child, depth+1); err != nil {
			return err
		}
		next, err := walker.NextSibling(child)
		if err != nil {
			if errors.Is(err, ErrNoSibling) {
				return nil
			}
			return err
		}
		child = next
	}
}
