// Package assert provides minimal test assertion helpers.
package assert

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// Equal fails the test if a and b are not deeply equal.
func Equal[T any](t *testing.T, a T, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

// NotEqual fails the test if a and b are deeply equal.
func NotEqual[T any](t *testing.T, a T, b T) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("%v == %v", a, b)
	}
}

// ErrorIs fails the test if err does not unwrap to target.
func ErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error %v does not match %v", err, target)
	}
}

// NoError fails the test if err is not nil.
func NoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// InDelta fails the test if a and b differ by more than delta.
func InDelta(t *testing.T, a, b, delta float64) {
	t.Helper()
	if math.Abs(a-b) > delta {
		t.Fatalf("%v not within %v of %v", a, delta, b)
	}
}
