package structpath

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// SetValue writes supplied value at a dot separated path. Target has to be a non
// nil struct pointer. Intermediate hops resolve with read semantics over a pointer
// walk so the final write lands in the original object; a nil intermediate fails
// with ErrNotFound rather than silently writing nowhere. The final hop prefers a
// conventional setter, falling back to direct field assignment; an incompatible
// value fails with ErrTypeMismatch and is never coerced.
func SetValue(target interface{}, aPath string, value interface{}) error {
	tokens, err := pathTokens(aPath)
	if err != nil {
		return err
	}
	ptr, holderType, err := mutationAnchor(target)
	if err != nil {
		return err
	}
	for _, token := range tokens[:len(tokens)-1] {
		if ptr, holderType, err = advance(ptr, holderType, token); err != nil {
			return err
		}
	}
	return setMember(ptr, holderType, tokens[len(tokens)-1], value)
}

// SetBool sets a bool value for supplied path
func SetBool(target interface{}, aPath string, value bool) error {
	return SetValue(target, aPath, value)
}

// SetInt sets an int value for supplied path
func SetInt(target interface{}, aPath string, value int) error {
	return SetValue(target, aPath, value)
}

// SetFloat64 sets a float64 value for supplied path
func SetFloat64(target interface{}, aPath string, value float64) error {
	return SetValue(target, aPath, value)
}

// SetString sets a string value for supplied path
func SetString(target interface{}, aPath string, value string) error {
	return SetValue(target, aPath, value)
}

func mutationAnchor(target interface{}) (unsafe.Pointer, reflect.Type, error) {
	if target == nil {
		return nil, nil, fmt.Errorf("target was nil, %w", ErrUnaddressable)
	}
	rValue := reflect.ValueOf(target)
	if rValue.Kind() != reflect.Ptr || rValue.IsNil() {
		return nil, nil, fmt.Errorf("target must be a non nil pointer, had %T, %w", target, ErrUnaddressable)
	}
	holderType := ensureStruct(rValue.Type())
	if holderType == nil {
		return nil, nil, fmt.Errorf("target must point to a struct, had %T, %w", target, ErrUnaddressable)
	}
	ptr := structPointer(rValue)
	if ptr == nil {
		return nil, nil, fmt.Errorf("target must be a non nil pointer, had %T, %w", target, ErrUnaddressable)
	}
	return ptr, holderType, nil
}

// advance resolves one intermediate hop keeping an addressable pointer to the
// reached struct; accessor results can anchor the walk only when they return a
// pointer, a returned copy has no connection to the original object
func advance(ptr unsafe.Pointer, holderType reflect.Type, token string) (unsafe.Pointer, reflect.Type, error) {
	holder := reflect.NewAt(holderType, ptr)
	if getter, ok := getterOf(holder, token); ok {
		return anchor(getter.Call(nil)[0], token)
	}
	field, ok := LookupField(holderType, token)
	if !ok {
		return nil, nil, fmt.Errorf("failed to locate %v at %s, %w", token, holderType.String(), ErrNotFound)
	}
	fieldPtr, ok := field.pointer(ptr)
	if !ok {
		return nil, nil, nilHopError(token)
	}
	fieldType := field.Type()
	for fieldType.Kind() == reflect.Ptr {
		if fieldPtr = xunsafe.DerefPointer(fieldPtr); fieldPtr == nil {
			return nil, nil, nilHopError(token)
		}
		fieldType = fieldType.Elem()
	}
	if fieldType.Kind() == reflect.Interface {
		return anchor(reflect.NewAt(fieldType, fieldPtr).Elem(), token)
	}
	if fieldType.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("failed to traverse %v of type %s, %w", token, field.Type().String(), ErrNotFound)
	}
	return fieldPtr, fieldType, nil
}

func anchor(hopValue reflect.Value, token string) (unsafe.Pointer, reflect.Type, error) {
	if hopValue.Kind() == reflect.Interface {
		hopValue = hopValue.Elem()
	}
	if !hopValue.IsValid() || (hopValue.Kind() == reflect.Ptr && hopValue.IsNil()) {
		return nil, nil, nilHopError(token)
	}
	if hopValue.Kind() == reflect.Ptr && hopValue.Type().Elem().Kind() == reflect.Struct {
		return unsafe.Pointer(hopValue.Pointer()), hopValue.Type().Elem(), nil
	}
	return nil, nil, fmt.Errorf("cannot anchor write through %v yielding %s, %w", token, hopValue.Type().String(), ErrUnaddressable)
}

func setMember(ptr unsafe.Pointer, holderType reflect.Type, token string, value interface{}) error {
	holder := reflect.NewAt(holderType, ptr)
	if setter, ok := setterOf(holder, token); ok {
		return invokeSetter(setter, token, value)
	}
	field, ok := LookupField(holderType, token)
	if !ok {
		return fmt.Errorf("failed to locate %v at %s, %w", token, holderType.String(), ErrNotFound)
	}
	holderPtr, ok := field.holder(ptr)
	if !ok {
		return nilHopError(token)
	}
	if !isAssignable(value, field.Type()) {
		return fmt.Errorf("cannot assign %T to %v %s, %w", value, field.Name(), field.Type().String(), ErrTypeMismatch)
	}
	if value != nil && reflect.TypeOf(value) == field.Type() {
		field.leaf().SetValue(holderPtr, value)
	} else {
		dest := reflect.NewAt(field.Type(), field.leaf().Pointer(holderPtr)).Elem()
		dest.Set(valueFor(value, field.Type()))
	}
	markPresence(field, holderPtr)
	return nil
}

func setterOf(holder reflect.Value, token string) (reflect.Value, bool) {
	method := holder.MethodByName(setterName(token))
	if !method.IsValid() {
		return reflect.Value{}, false
	}
	mType := method.Type()
	if mType.NumIn() != 1 || mType.NumOut() > 1 {
		return reflect.Value{}, false
	}
	return method, true
}

func invokeSetter(setter reflect.Value, token string, value interface{}) error {
	paramType := setter.Type().In(0)
	if !isAssignable(value, paramType) {
		return fmt.Errorf("cannot assign %T to %v(%s), %w", value, setterName(token), paramType.String(), ErrTypeMismatch)
	}
	out := setter.Call([]reflect.Value{valueFor(value, paramType)})
	if len(out) == 1 {
		if err, ok := out[0].Interface().(error); ok && err != nil {
			return err
		}
	}
	return nil
}

func isAssignable(value interface{}, dest reflect.Type) bool {
	if value == nil {
		switch dest.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return true
		}
		return false
	}
	return reflect.TypeOf(value).AssignableTo(dest)
}

func valueFor(value interface{}, dest reflect.Type) reflect.Value {
	if value == nil {
		return reflect.Zero(dest)
	}
	return reflect.ValueOf(value)
}

func nilHopError(token string) error {
	return fmt.Errorf("cannot reach through %v: value was nil, %w", token, ErrNotFound)
}
