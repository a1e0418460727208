package immutable

import (
	"fmt"
	"reflect"
)

// Selector names the member a modification targets.
// Only the constructors in this package implement it.
type Selector interface {
	fmt.Stringer
	selector()
}

type memberSelector string

func (s memberSelector) String() string { return string(s) }
func (memberSelector) selector()        {}

type convertedSelector struct {
	inner Selector
}

func (s convertedSelector) String() string { return fmt.Sprintf("convert(%v)", s.inner) }
func (convertedSelector) selector()        {}

type computedSelector struct {
	desc string
}

func (s computedSelector) String() string { return s.desc }
func (computedSelector) selector()        {}

// Member selects the declared member called name.
func Member(name string) Selector {
	return memberSelector(name)
}

// Converted marks a member reference whose value goes through an implicit conversion.
// One conversion around a direct member is unwrapped; anything deeper is rejected.
//
// The marker is optional: Member accepts the same value types. Either way only lossless
// conversions are allowed (a wider integer of the same signedness, an unsigned integer
// to a wider signed one, an integer to a float that holds it exactly, float32 to
// float64, a named type to or from its underlying type). Narrowing or truncating
// values fail when the accessor is built.
func Converted(sel Selector) Selector {
	return convertedSelector{inner: sel}
}

// Computed wraps a projection that derives a value rather than naming a member.
// It can describe a read, but every modification through it fails with
// ErrInvalidSelector.
func Computed[T, R any](fn func(T) R) Selector {
	return computedSelector{desc: fmt.Sprintf("computed(%s)", reflect.TypeOf(fn))}
}

// memberName unwraps sel down to the member name it references.
func memberName(sel Selector) (string, error) {
	switch s := sel.(type) {
	case memberSelector:
		if s == "" {
			return "", fmt.Errorf("%w: empty member name", ErrInvalidSelector)
		}
		return string(s), nil
	case convertedSelector:
		if inner, ok := s.inner.(memberSelector); ok && inner != "" {
			return string(inner), nil
		}
		return "", fmt.Errorf("%w: %v is not a conversion of a direct member", ErrInvalidSelector, s)
	case nil:
		return "", fmt.Errorf("%w: nil selector", ErrInvalidSelector)
	default:
		return "", fmt.Errorf("%w: %v", ErrInvalidSelector, sel)
	}
}
