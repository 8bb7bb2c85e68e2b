package structpath

import "errors"

var (
	//ErrNotFound indicates that a path token did not resolve to a field or accessor
	ErrNotFound = errors.New("member not found")

	//ErrTypeMismatch indicates that a resolved or assigned value was incompatible with the expected type
	ErrTypeMismatch = errors.New("type mismatch")

	//ErrTypeNotFound indicates that a type name did not resolve in a registry
	ErrTypeNotFound = errors.New("type not found")

	//ErrUnaddressable indicates that a write could not be anchored to addressable memory
	ErrUnaddressable = errors.New("unaddressable value")
)
