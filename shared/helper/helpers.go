package helper

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotAssignable is returned when a value can neither be assigned nor converted to a target type.
var ErrNotAssignable = errors.New("value is not assignable")

// GetTypedValueOf2 safely asserts the result of a lookup function to the expected type T.
// ok is false when the lookup misses or the stored value has another type.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// CanAssign reports whether a value of type from can be stored into a location of type to,
// either directly or through a lossless conversion.
func CanAssign(from, to reflect.Type) bool {
	if from == nil || to == nil {
		return false
	}
	return from.AssignableTo(to) || convertible(from, to)
}

// convertible reports whether from converts to to without losing information:
// a named type to or from its underlying type, a signed or unsigned integer to a wider
// integer that holds every value of it, an integer to a float that represents it exactly,
// and float32 or complex64 to their 64-bit forms.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	if from.Kind() == to.Kind() {
		// identical underlying types, or numbers of the same size
		return true
	}
	switch {
	case isSigned(from) && isSigned(to), isUnsigned(from) && isUnsigned(to):
		return from.Size() <= to.Size()
	case isUnsigned(from) && isSigned(to):
		return from.Size() < to.Size()
	case isInteger(from) && to.Kind() == reflect.Float64:
		return from.Size() <= 4
	case isInteger(from) && to.Kind() == reflect.Float32:
		return from.Size() <= 2
	case from.Kind() == reflect.Float32 && to.Kind() == reflect.Float64,
		from.Kind() == reflect.Complex64 && to.Kind() == reflect.Complex128:
		return true
	default:
		return false
	}
}

func isSigned(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isInteger(t reflect.Type) bool {
	return isSigned(t) || isUnsigned(t)
}

// ValueAs turns raw into a reflect.Value of type typ.
// A nil raw yields the zero value of typ.
func ValueAs(raw any, typ reflect.Type) (reflect.Value, error) {
	if raw == nil {
		return reflect.Zero(typ), nil
	}
	rv := reflect.ValueOf(raw)
	switch {
	case rv.Type().AssignableTo(typ):
		return rv, nil
	case convertible(rv.Type(), typ):
		return rv.Convert(typ), nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotAssignable, rv.Type(), typ)
	}
}

// Assign stores raw into target, converting it when the types differ.
// target must be settable.
func Assign(target reflect.Value, raw any) error {
	v, err := ValueAs(raw, target.Type())
	if err != nil {
		return err
	}
	target.Set(v)
	return nil
}

// Cast converts raw to V, allowing lossless conversions between compatible types.
func Cast[V any](raw any) (V, error) {
	if v, ok := raw.(V); ok {
		return v, nil
	}
	var zero V
	if raw == nil {
		return zero, nil
	}
	rv, err := ValueAs(raw, reflect.TypeFor[V]())
	if err != nil {
		return zero, err
	}
	return rv.Interface().(V), nil
}
