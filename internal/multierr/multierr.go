// Package multierr reports several independent failures as one error.
//
// Because typed nil values stored in interfaces are non-nil, callers
// should only return a MultiErr if an error actually occurred. Combine
// takes care of that:
//
//	var errs []error
//	for _, arg := range args {
//	    if err := check(arg); err != nil {
//	        errs = append(errs, err)
//	    }
//	}
//	return multierr.Combine(errs)
package multierr

import (
	"strings"
)

type MultiErr []error

// New wraps errs. It panics on empty input, use Combine when errs may
// be empty.
func New(errs []error) error {
	if len(errs) == 0 {
		panic("programmer error: multierr.New called with no errors")
	}
	return MultiErr(errs)
}

// Combine returns nil for no errors, the error itself for one, and a
// MultiErr otherwise.
func Combine(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return MultiErr(errs)
}

var _ error = MultiErr{}

func (m MultiErr) Error() string {
	if len(m) == 1 {
		return m[0].Error()
	}
	var b strings.Builder
	b.WriteString("multiple errors:")
	for _, e := range m {
		b.WriteString("\n\t")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Unwrap lets errors.Is and errors.As look at every error.
func (m MultiErr) Unwrap() []error {
	return m
}

// All reports whether all errors in a MultiErr (or, the singular
// non-multi error) pass the test.
func All(err error, test func(err error) bool) bool {
	errs, ok := err.(MultiErr)
	if !ok {
		return test(err)
	}
	for _, err := range errs {
		if !test(err) {
			return false
		}
	}
	return true
}
