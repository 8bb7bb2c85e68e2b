package structpath

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

const (
	//SetMarkerTag marks the pointer field holding per member set flags
	SetMarkerTag = "setMarker"
)

// IsSetMarker returns true if tag marks a presence holder field
func IsSetMarker(tag reflect.StructTag) bool {
	_, ok := tag.Lookup(SetMarkerTag)
	return ok
}

// Presence tracks which members of a struct have been written through this
// package; the holder is a pointer to struct field tagged setMarker whose bool
// fields mirror sibling member names
type Presence struct {
	t      reflect.Type
	holder *xunsafe.Field
	flags  map[string]*xunsafe.Field
}

// NewPresence creates a presence for supplied struct type, failing when the type
// carries no setMarker holder or the holder is not a struct pointer
func NewPresence(t reflect.Type) (*Presence, error) {
	result, ok := presenceOf(t)
	if !ok {
		if t = ensureStruct(t); t == nil {
			return nil, fmt.Errorf("supplied type is not a struct")
		}
		return nil, fmt.Errorf("%s has no %v holder", t.String(), SetMarkerTag)
	}
	return result, nil
}

func presenceOf(t reflect.Type) (*Presence, bool) {
	if t = ensureStruct(t); t == nil {
		return nil, false
	}
	result := &Presence{t: t}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if IsSetMarker(field.Tag) {
			result.holder = xunsafe.NewField(field)
			break
		}
	}
	if result.holder == nil || result.holder.Type.Kind() != reflect.Ptr {
		return nil, false
	}
	holderType := ensureStruct(result.holder.Type)
	if holderType == nil {
		return nil, false
	}
	result.flags = make(map[string]*xunsafe.Field, holderType.NumField())
	for i := 0; i < holderType.NumField(); i++ {
		flag := holderType.Field(i)
		if flag.Type.Kind() != reflect.Bool {
			continue
		}
		result.flags[flag.Name] = xunsafe.NewField(flag)
	}
	return result, true
}

// IsSet returns true if supplied member has been flagged as set; a struct without
// an allocated holder reports every member as set
func (p *Presence) IsSet(ptr unsafe.Pointer, name string) bool {
	if p.holder.IsNil(ptr) {
		return true
	}
	flag, ok := p.flags[name]
	if !ok {
		return false
	}
	return flag.Bool(p.holder.ValuePointer(ptr))
}

// Set flags supplied member, allocating the holder on first use
func (p *Presence) Set(ptr unsafe.Pointer, name string, value bool) error {
	flag, ok := p.flags[name]
	if !ok {
		return fmt.Errorf("no presence flag for %v at %s", name, p.t.String())
	}
	p.ensureHolder(ptr)
	flag.SetBool(p.holder.ValuePointer(ptr), value)
	return nil
}

// SetAll flags every tracked member with supplied value
func (p *Presence) SetAll(ptr unsafe.Pointer, value bool) {
	p.ensureHolder(ptr)
	holderPtr := p.holder.ValuePointer(ptr)
	for _, flag := range p.flags {
		flag.SetBool(holderPtr, value)
	}
}

func (p *Presence) ensureHolder(ptr unsafe.Pointer) {
	if !p.holder.IsNil(ptr) {
		return
	}
	p.holder.SetValue(ptr, reflect.New(p.holder.Type.Elem()).Interface())
}

// markPresence flags a freshly written member on its declaring struct
func markPresence(field *Field, holderPtr unsafe.Pointer) {
	presence, ok := presenceOf(field.Owner())
	if !ok {
		return
	}
	_ = presence.Set(holderPtr, field.Name(), true)
}

// IsSet reports whether the member at supplied path has been written; a declaring
// struct without a presence holder reports true, a nil intermediate reports false
func IsSet(target interface{}, aPath string) (bool, error) {
	tokens, err := pathTokens(aPath)
	if err != nil {
		return false, err
	}
	parent := target
	for _, token := range tokens[:len(tokens)-1] {
		if isNilValue(parent) {
			return false, nil
		}
		if parent, err = readMember(parent, token); err != nil {
			return false, err
		}
	}
	if isNilValue(parent) {
		return false, nil
	}
	rValue := reflect.ValueOf(parent)
	structType := ensureStruct(rValue.Type())
	if structType == nil {
		return false, fmt.Errorf("failed to locate %v at %s, %w", tokens[len(tokens)-1], rValue.Type().String(), ErrNotFound)
	}
	field, ok := LookupField(structType, tokens[len(tokens)-1])
	if !ok {
		return false, fmt.Errorf("failed to locate %v at %s, %w", tokens[len(tokens)-1], structType.String(), ErrNotFound)
	}
	presence, ok := presenceOf(field.Owner())
	if !ok {
		return true, nil
	}
	ptr := structPointer(rValue)
	if ptr == nil {
		return false, nil
	}
	declaringPtr, ok := field.holder(ptr)
	if !ok {
		return false, nil
	}
	return presence.IsSet(declaringPtr, field.Name()), nil
}
