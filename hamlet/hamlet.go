package hamlet

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// Hamlet is a tiny assertion helper. Specifications gives you two of
// them: one that demands the condition, and one that rejects it.
type Hamlet struct {
	t      *testing.T
	demand bool
}

func Specifications(t *testing.T) (*Hamlet, *Hamlet) {
	return &Hamlet{t, true}, &Hamlet{t, false}
}

func (it *Hamlet) heading() string {
	if it.demand {
		return "must"
	}
	return "wont"
}

func (it *Hamlet) judge(outcome bool, form string, details ...interface{}) {
	it.t.Helper()
	if outcome != it.demand {
		it.t.Errorf("%s: %s", it.heading(), fmt.Sprintf(form, details...))
	}
}

func (it *Hamlet) True(candidate bool) {
	it.t.Helper()
	it.judge(candidate, "expected condition to be %v", it.demand)
}

func (it *Hamlet) Nil(candidate interface{}) {
	it.t.Helper()
	it.judge(isNil(candidate), "%#v should be nil: %v", candidate, it.demand)
}

func (it *Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	it.judge(reflect.DeepEqual(expected, actual), "%#v == %#v", expected, actual)
}

// Text compares the fmt "%v" renderings of the two values.
func (it *Hamlet) Text(expected string, actual interface{}) {
	it.t.Helper()
	it.judge(expected == fmt.Sprintf("%v", actual), "%q == %q", expected, fmt.Sprintf("%v", actual))
}

func (it *Hamlet) Contain(fragment string, actual string) {
	it.t.Helper()
	it.judge(strings.Contains(actual, fragment), "%q should contain %q", actual, fragment)
}

func (it *Hamlet) Panic(todo func()) {
	it.t.Helper()
	panicked := false
	func() {
		defer func() {
			if recover() != nil {
				panicked = true
			}
		}()
		todo()
	}()
	it.judge(panicked, "expected panic: %v", it.demand)
}

func isNil(candidate interface{}) bool {
	if candidate == nil {
		return true
	}
	value := reflect.ValueOf(candidate)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return value.IsNil()
	}
	return false
}
