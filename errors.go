package mustache

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Error is the single uniform error kind every construction-time and
// forward-execute failure carries: the file and line of the offending
// code node.
type Error struct {
	File string
	Line int
	Kind string
	err  error
}

func (e *Error) Error() string {
	if e.File == "" {
		return fmt.Sprintf("mustache: %s at line %d: %v", e.Kind, e.Line, e.err)
	}
	return fmt.Sprintf("mustache: %s at %s:%d: %v", e.Kind, e.File, e.Line, e.err)
}

func (e *Error) Unwrap() error { return e.err }

func newError(kind, file string, line int, err error) *Error {
	return &Error{File: file, Line: line, Kind: kind, err: err}
}

// wrapExecErr wraps a Handle callback failure with file/line context
// before it escapes a node's Execute method.
func wrapExecErr(file string, line int, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*Error); ok {
		return err
	}
	wrapped := newError("execute", file, line, errors.WithStack(err))
	logExecuteErr(file, line, err)
	return wrapped
}

// wrapConstructErr wraps a construction-time failure (partial
// resolution, malformed Extend) the same way.
func wrapConstructErr(file string, line int, err error) error {
	if err == nil {
		return nil
	}
	wrapped := newError("construct", file, line, errors.WithStack(err))
	logConstructErr(file, line, err)
	return wrapped
}

// ErrNotAFunction is surfaced when a Function section's binding is
// neither a callable nor nil.
type ErrNotAFunction struct {
	Name  string
	Value interface{}
}

func (e *ErrNotAFunction) Error() string {
	return fmt.Sprintf("mustache: %s is not a function: %#v", breadcrumbFor(e.Name), e.Value)
}

// ErrScopeLookup reports a dotted-name lookup failure, rendering the
// failing name as a breadcrumb so a deeply nested path is legible in
// the error rather than printed as a single dotted blob.
type ErrScopeLookup struct {
	Name string
	err  error
}

func (e *ErrScopeLookup) Error() string {
	return fmt.Sprintf("mustache: lookup failed at %s: %v", breadcrumbFor(e.Name), e.err)
}

func (e *ErrScopeLookup) Unwrap() error { return e.err }

// ErrPartialNotFound is a construction-time error: a {{>name}} or
// {{<name}} referent could not be resolved.
type ErrPartialNotFound struct {
	Name string
	err  error
}

func (e *ErrPartialNotFound) Error() string {
	return fmt.Sprintf("mustache: partial %q not found: %v", e.Name, e.err)
}

func (e *ErrPartialNotFound) Unwrap() error { return e.err }

// ErrIllegalExtendChild is a construction-time error: an Extend section
// contained a child that was neither a Name section nor literal text.
type ErrIllegalExtendChild struct {
	Parent string
	Child  Code
}

func (e *ErrIllegalExtendChild) Error() string {
	return fmt.Sprintf("mustache: illegal code in extend %q: %T", e.Parent, e.Child)
}

// newErrUnusedOverrides is raised in debug mode when an Extend supplies
// override names that never matched a Name section in the parent.
// Every unused name is collected into one *multierror.Error, via
// github.com/hashicorp/go-multierror, so a caller sees the whole list
// instead of just the first offender.
func newErrUnusedOverrides(parent string, names []string) error {
	var result *multierror.Error
	for _, n := range names {
		result = multierror.Append(result, fmt.Errorf("unused override %q in extend %q", n, parent))
	}
	return result.ErrorOrNil()
}
