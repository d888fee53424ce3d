// Package designator resolves file designators: values that identify a set
// of candidate files to an operation. A designator is one of three shapes —
// an explicit list of paths, a regular expression over base names in one
// directory, or a glob string whose last component is the pattern.
//
// Operations classify their argument into a shape exactly once via From and
// then resolve it against a filesystem. Resolution reads a one-level
// directory snapshot; entries removed between resolution and use surface as
// per-element errors, not as resolution failures.
package designator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ImGajeed76/fskit/pkg/fskit/path"
)

// Designator identifies a set of candidate files. It is a closed union:
// Explicit, PatternInDir or GlobString.
type Designator interface {
	// Describe returns a human-readable rendering of the designator for
	// error reporting.
	Describe() string

	designator()
}

// Explicit is an ordered list of already-resolved candidate paths. The
// paths are used verbatim: no pattern expansion, order preserved, empty
// entries kept (they fail existence checks downstream).
type Explicit struct {
	Paths []string
}

func (Explicit) designator() {}

func (d Explicit) Describe() string {
	return "files [" + strings.Join(d.Paths, ", ") + "]"
}

// PatternInDir is a raw regular expression over the base names directly
// under Dir. The expression is not a glob; it is compiled as written.
type PatternInDir struct {
	Dir  string
	Expr string
}

func (PatternInDir) designator() {}

func (d PatternInDir) Describe() string {
	return "pattern " + d.Expr + " in " + d.Dir
}

// GlobString is a path-like string whose last component is a glob pattern
// and whose leading components name the directory to search. A single
// component searches the current directory.
type GlobString struct {
	Pattern string
}

func (GlobString) designator() {}

func (d GlobString) Describe() string {
	return "glob " + d.Pattern
}

// From classifies a raw argument into a Designator by shape:
//
//   - []string or []*path.Path  -> Explicit
//   - *regexp.Regexp            -> PatternInDir, splitting the expression at
//     its final '/' into directory and base-name pattern ('.' when there is
//     no slash)
//   - string                    -> GlobString
//
// A value that is already a Designator passes through. Any other type is an
// error. Classification looks only at the shape, never the content, and
// happens once per call.
func From(v any) (Designator, error) {
	switch arg := v.(type) {
	case Designator:
		return arg, nil
	case []string:
		return Explicit{Paths: arg}, nil
	case []*path.Path:
		paths := make([]string, len(arg))
		for i, p := range arg {
			if p != nil {
				paths[i] = p.String()
			}
		}
		return Explicit{Paths: paths}, nil
	case *regexp.Regexp:
		dir, expr := ".", arg.String()
		if i := strings.LastIndex(expr, "/"); i >= 0 {
			dir, expr = expr[:i], expr[i+1:]
		}
		return PatternInDir{Dir: dir, Expr: expr}, nil
	case string:
		return GlobString{Pattern: arg}, nil
	default:
		return nil, fmt.Errorf("designator: unsupported argument type %T", v)
	}
}
