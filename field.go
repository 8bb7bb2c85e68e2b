package structpath

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

type (
	//hop represents one step of the chain addressing a member from the outermost struct;
	//all hops but the last traverse embedded ancestors
	hop struct {
		field *xunsafe.Field
		isPtr bool
	}

	//Field represents a located struct member
	Field struct {
		hops   []*hop
		owner  reflect.Type
		sField reflect.StructField
		depth  int
	}
)

func newHop(sField reflect.StructField) *hop {
	return &hop{field: xunsafe.NewField(sField), isPtr: sField.Type.Kind() == reflect.Ptr}
}

// Name returns member name
func (f *Field) Name() string {
	return f.sField.Name
}

// Type returns member declared type
func (f *Field) Type() reflect.Type {
	return f.sField.Type
}

// Tag returns member struct tag
func (f *Field) Tag() reflect.StructTag {
	return f.sField.Tag
}

// Owner returns the struct type declaring the member
func (f *Field) Owner() reflect.Type {
	return f.owner
}

// Inherited returns true if the member is declared on an embedded ancestor
func (f *Field) Inherited() bool {
	return f.depth > 0
}

// Exported returns true if the member is exported
func (f *Field) Exported() bool {
	return f.sField.PkgPath == ""
}

// HasMarker returns true if member tag carries supplied marker key; markers are opaque, only presence is tested
func (f *Field) HasMarker(marker string) bool {
	_, ok := f.sField.Tag.Lookup(marker)
	return ok
}

func (f *Field) leaf() *xunsafe.Field {
	return f.hops[len(f.hops)-1].field
}

// holder walks the ancestor hops yielding the pointer to the declaring struct;
// returns false when a pointer embed on the chain is nil
func (f *Field) holder(ptr unsafe.Pointer) (unsafe.Pointer, bool) {
	for i := 0; i < len(f.hops)-1; i++ {
		aHop := f.hops[i]
		ptr = aHop.field.Pointer(ptr)
		if aHop.isPtr {
			if ptr = xunsafe.DerefPointer(ptr); ptr == nil {
				return nil, false
			}
		}
	}
	return ptr, true
}

func (f *Field) value(ptr unsafe.Pointer) (interface{}, bool) {
	holderPtr, ok := f.holder(ptr)
	if !ok {
		return nil, false
	}
	return f.leaf().Value(holderPtr), true
}

func (f *Field) pointer(ptr unsafe.Pointer) (unsafe.Pointer, bool) {
	holderPtr, ok := f.holder(ptr)
	if !ok {
		return nil, false
	}
	return f.leaf().Pointer(holderPtr), true
}
