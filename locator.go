package structpath

import (
	"reflect"

	"github.com/viant/tagly/format/text"
)

// ancestor represents one struct type on the embedded ancestor chain
type ancestor struct {
	t     reflect.Type
	hops  []*hop
	depth int
}

// ancestry returns the ordered ancestor chain for supplied struct type; the type
// itself comes first, then embedded ancestors breadth-first in declared order, so
// closer declarations shadow further ones; pointer embed cycles are guarded
func ancestry(t reflect.Type) []*ancestor {
	var result []*ancestor
	visited := map[reflect.Type]bool{t: true}
	queue := []*ancestor{{t: t}}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)
		for i := 0; i < node.t.NumField(); i++ {
			field := node.t.Field(i)
			if !isAncestorLink(field) {
				continue
			}
			baseType := ensureStruct(field.Type)
			if visited[baseType] {
				continue
			}
			visited[baseType] = true
			queue = append(queue, &ancestor{t: baseType, hops: node.append(field), depth: node.depth + 1})
		}
	}
	return result
}

func (a *ancestor) append(field reflect.StructField) []*hop {
	hops := make([]*hop, len(a.hops), len(a.hops)+1)
	copy(hops, a.hops)
	return append(hops, newHop(field))
}

func isAncestorLink(field reflect.StructField) bool {
	return field.Anonymous && ensureStruct(field.Type) != nil
}

// LookupField locates a declared member by name, searching the type itself and then
// its embedded ancestors, most-derived first. Name matches either verbatim or in
// UpperCamel form. Unexported members are locatable; exportedness never fails a lookup.
func LookupField(t reflect.Type, name string) (*Field, bool) {
	if t = ensureStruct(t); t == nil || name == "" {
		return nil, false
	}
	camel, lower := upperCamel(name), lowerCamel(name)
	for _, node := range ancestry(t) {
		for i := 0; i < node.t.NumField(); i++ {
			field := node.t.Field(i)
			if field.Name == "_" || isAncestorLink(field) {
				continue
			}
			if field.Name != name && field.Name != camel && field.Name != lower {
				continue
			}
			return &Field{hops: node.append(field), owner: node.t, sField: field, depth: node.depth}, true
		}
	}
	return nil, false
}

// LookupMethod locates a zero-argument method by exact name on t or *t;
// methods promoted from embedded ancestors are included
func LookupMethod(t reflect.Type, name string) (reflect.Method, bool) {
	if t == nil || name == "" {
		return reflect.Method{}, false
	}
	if t.Kind() != reflect.Ptr {
		t = reflect.PtrTo(t)
	}
	method, ok := t.MethodByName(name)
	if !ok || method.Type.NumIn() != 1 {
		return reflect.Method{}, false
	}
	return method, true
}

func upperCamel(token string) string {
	caseFormat := text.DetectCaseFormat(token)
	if caseFormat == text.CaseFormatUpperCamel || !caseFormat.IsDefined() {
		return token
	}
	return caseFormat.Format(token, text.CaseFormatUpperCamel)
}

func lowerCamel(token string) string {
	caseFormat := text.DetectCaseFormat(token)
	if caseFormat == text.CaseFormatLowerCamel || !caseFormat.IsDefined() {
		return token
	}
	return caseFormat.Format(token, text.CaseFormatLowerCamel)
}

func getterNames(token string) []string {
	camel := upperCamel(token)
	return []string{camel, "Get" + camel}
}

func setterName(token string) string {
	return "Set" + upperCamel(token)
}
