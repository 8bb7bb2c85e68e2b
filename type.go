package structpath

import "reflect"

// EnsureStructType returns the underlying struct type, unwrapping pointers
func EnsureStructType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return EnsureStructType(t.Elem())
	}
	return nil
}

func ensureStruct(t reflect.Type) reflect.Type {
	return EnsureStructType(t)
}
