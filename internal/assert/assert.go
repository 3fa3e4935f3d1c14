package assert

import (
	"errors"
	"reflect"
	"testing"
)

// Equal verifies equality of two objects.
func Equal[T any](t *testing.T, a T, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

// NotEqual verifies objects are not equal.
func NotEqual[T any](t *testing.T, a T, b T) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("%v == %v", a, b)
	}
}

// IsNil verifies that the object is nil.
func IsNil(t *testing.T, a any) {
	t.Helper()
	if a != nil {
		value := reflect.ValueOf(a)
		switch value.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
			reflect.Pointer, reflect.Slice:
			if value.IsNil() {
				return
			}
		}
		t.Fatalf("%v is not nil", a)
	}
}

// ErrorIs checks whether any error in err's tree matches target.
func ErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error %v is not %v", err, target)
	}
}
