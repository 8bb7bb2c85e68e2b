package structpath

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"
)

// Value resolves a dot separated path against supplied target. Each hop prefers
// a conventional accessor on the hop's runtime type, falling back to direct field
// access. A nil target or nil intermediate hop short-circuits to nil without
// checking the remaining tokens; a token that resolves to neither an accessor nor
// a field fails with ErrNotFound.
func Value(target interface{}, aPath string) (interface{}, error) {
	tokens, err := pathTokens(aPath)
	if err != nil {
		return nil, err
	}
	current := target
	for _, token := range tokens {
		if isNilValue(current) {
			return nil, nil
		}
		if current, err = readMember(current, token); err != nil {
			return nil, err
		}
	}
	if isNilValue(current) {
		return nil, nil
	}
	return current, nil
}

// TypedValue resolves a path like Value and additionally checks the final result
// against expected type; a non nil result that is not assignable fails with
// ErrTypeMismatch, a nil result stays nil.
func TypedValue(expected reflect.Type, target interface{}, aPath string) (interface{}, error) {
	value, err := Value(target, aPath)
	if err != nil || value == nil || expected == nil {
		return value, err
	}
	if actual := reflect.TypeOf(value); !actual.AssignableTo(expected) {
		return nil, fmt.Errorf("expected %s but had %s at %v, %w", expected.String(), actual.String(), aPath, ErrTypeMismatch)
	}
	return value, nil
}

// Bool returns a bool value for supplied path
func Bool(target interface{}, aPath string) (bool, error) {
	value, err := TypedValue(boolType, target, aPath)
	if err != nil || value == nil {
		return false, err
	}
	return value.(bool), nil
}

// Int returns an int value for supplied path
func Int(target interface{}, aPath string) (int, error) {
	value, err := TypedValue(intType, target, aPath)
	if err != nil || value == nil {
		return 0, err
	}
	return value.(int), nil
}

// Float64 returns a float64 value for supplied path
func Float64(target interface{}, aPath string) (float64, error) {
	value, err := TypedValue(float64Type, target, aPath)
	if err != nil || value == nil {
		return 0.0, err
	}
	return value.(float64), nil
}

// String returns a string value for supplied path
func String(target interface{}, aPath string) (string, error) {
	value, err := TypedValue(stringType, target, aPath)
	if err != nil || value == nil {
		return "", err
	}
	return value.(string), nil
}

var (
	boolType    = reflect.TypeOf(true)
	intType     = reflect.TypeOf(0)
	float64Type = reflect.TypeOf(0.0)
	stringType  = reflect.TypeOf("")
)

func readMember(current interface{}, token string) (interface{}, error) {
	rValue := reflect.ValueOf(current)
	if getter, ok := getterOf(rValue, token); ok {
		return getter.Call(nil)[0].Interface(), nil
	}
	structType := ensureStruct(rValue.Type())
	if structType == nil {
		return nil, fmt.Errorf("failed to locate %v at %s, %w", token, rValue.Type().String(), ErrNotFound)
	}
	field, ok := LookupField(structType, token)
	if !ok {
		return nil, fmt.Errorf("failed to locate %v at %s, %w", token, structType.String(), ErrNotFound)
	}
	ptr := structPointer(rValue)
	if ptr == nil {
		return nil, nil
	}
	value, ok := field.value(ptr)
	if !ok { //nil pointer embed on the chain, the ancestor sub object is absent
		return nil, nil
	}
	return value, nil
}

// getterOf returns a conventional getter for supplied token resolved against the
// value's runtime type; a value receiver copy is promoted to a pointer so that
// pointer receiver accessors stay reachable
func getterOf(rValue reflect.Value, token string) (reflect.Value, bool) {
	for _, name := range getterNames(token) {
		if method := rValue.MethodByName(name); method.IsValid() && isGetter(method.Type()) {
			return method, true
		}
		if rValue.Kind() == reflect.Ptr {
			continue
		}
		if _, ok := reflect.PtrTo(rValue.Type()).MethodByName(name); !ok {
			continue
		}
		ptrValue := reflect.New(rValue.Type())
		ptrValue.Elem().Set(rValue)
		if method := ptrValue.MethodByName(name); method.IsValid() && isGetter(method.Type()) {
			return method, true
		}
	}
	return reflect.Value{}, false
}

func isGetter(mType reflect.Type) bool {
	return mType.NumIn() == 0 && mType.NumOut() == 1
}

// structPointer yields an addressable pointer to the struct data; a bare struct
// value gets copied onto the heap, which is sound for reads only
func structPointer(rValue reflect.Value) unsafe.Pointer {
	for rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return nil
		}
		if elem := rValue.Elem(); elem.Kind() == reflect.Ptr {
			rValue = elem
			continue
		}
		return unsafe.Pointer(rValue.Pointer())
	}
	ptrValue := reflect.New(rValue.Type())
	ptrValue.Elem().Set(rValue)
	return unsafe.Pointer(ptrValue.Pointer())
}

func pathTokens(aPath string) ([]string, error) {
	if aPath == "" {
		return nil, fmt.Errorf("path was empty")
	}
	tokens := strings.Split(aPath, ".")
	for _, token := range tokens {
		if token == "" {
			return nil, fmt.Errorf("invalid path: %q", aPath)
		}
	}
	return tokens, nil
}

func isNilValue(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rValue.IsNil()
	}
	return false
}
