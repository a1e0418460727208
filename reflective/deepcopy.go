package reflective

import "reflect"

// DeepCopy returns a copy of v that shares no pointers, slices, maps or interfaces with
// it. Pointer cycles and shared pointers are preserved in the copy. Unexported struct
// fields are copied shallowly; functions and channels are shared.
func DeepCopy[V any](v V) V {
	src := reflect.ValueOf(&v).Elem()
	c := copier{seen: make(map[visit]reflect.Value)}
	var out V
	reflect.ValueOf(&out).Elem().Set(c.copy(src))
	return out
}

// CopyValue is DeepCopy for a value known only through reflection.
func CopyValue(v reflect.Value) reflect.Value {
	if !v.IsValid() {
		return v
	}
	c := copier{seen: make(map[visit]reflect.Value)}
	return c.copy(v)
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

type copier struct {
	seen map[visit]reflect.Value
}

func (c copier) copy(src reflect.Value) reflect.Value {
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return reflect.Zero(src.Type())
		}
		key := visit{ptr: src.Pointer(), typ: src.Type()}
		if dup, ok := c.seen[key]; ok {
			return dup
		}
		dst := reflect.New(src.Type().Elem())
		c.seen[key] = dst
		dst.Elem().Set(c.copy(src.Elem()))
		return dst

	case reflect.Interface:
		if src.IsNil() {
			return reflect.Zero(src.Type())
		}
		dst := reflect.New(src.Type()).Elem()
		dst.Set(c.copy(src.Elem()))
		return dst

	case reflect.Slice:
		if src.IsNil() {
			return reflect.Zero(src.Type())
		}
		dst := reflect.MakeSlice(src.Type(), src.Len(), src.Cap())
		for i := 0; i < src.Len(); i++ {
			dst.Index(i).Set(c.copy(src.Index(i)))
		}
		return dst

	case reflect.Array:
		dst := reflect.New(src.Type()).Elem()
		for i := 0; i < src.Len(); i++ {
			dst.Index(i).Set(c.copy(src.Index(i)))
		}
		return dst

	case reflect.Map:
		if src.IsNil() {
			return reflect.Zero(src.Type())
		}
		dst := reflect.MakeMapWithSize(src.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			dst.SetMapIndex(c.copy(iter.Key()), c.copy(iter.Value()))
		}
		return dst

	case reflect.Struct:
		dst := reflect.New(src.Type()).Elem()
		dst.Set(src)
		st := src.Type()
		for i := 0; i < src.NumField(); i++ {
			if !st.Field(i).IsExported() {
				continue
			}
			dst.Field(i).Set(c.copy(src.Field(i)))
		}
		return dst

	default:
		return src
	}
}
