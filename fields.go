package structpath

import "reflect"

type (
	fieldsOptions struct {
		ancestors bool
	}

	//FieldsOption represents field enumeration option
	FieldsOption func(o *fieldsOptions)
)

// WithAncestors returns an option merging members declared on embedded ancestors,
// most-derived first
func WithAncestors() FieldsOption {
	return func(o *fieldsOptions) {
		o.ancestors = true
	}
}

func newFieldsOptions(opts []FieldsOption) *fieldsOptions {
	result := &fieldsOptions{}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// Fields lists declared members of supplied struct type in declared order,
// excluding synthetic members (blank fields, ancestor links and presence
// holders). With WithAncestors members of embedded ancestors follow own members,
// shadowed names stay listed so callers see the full declaration set.
func Fields(t reflect.Type, opts ...FieldsOption) []*Field {
	options := newFieldsOptions(opts)
	if t = ensureStruct(t); t == nil {
		return nil
	}
	nodes := ancestry(t)
	if !options.ancestors {
		nodes = nodes[:1]
	}
	var result []*Field
	for _, node := range nodes {
		for i := 0; i < node.t.NumField(); i++ {
			field := node.t.Field(i)
			if isSynthetic(field) {
				continue
			}
			result = append(result, &Field{hops: node.append(field), owner: node.t, sField: field, depth: node.depth})
		}
	}
	return result
}

// FieldsOfType lists members whose declared type equals fieldType exactly, no
// assignability matching; embedded ancestors are always included
func FieldsOfType(t reflect.Type, fieldType reflect.Type) []*Field {
	return filterFields(t, func(field *Field) bool {
		return field.Type() == fieldType
	})
}

// FieldsWithMarker lists members whose tag carries supplied marker key; embedded
// ancestors are always included
func FieldsWithMarker(t reflect.Type, marker string) []*Field {
	return filterFields(t, func(field *Field) bool {
		return field.HasMarker(marker)
	})
}

// ExportedFields lists exported members; embedded ancestors are always included
func ExportedFields(t reflect.Type) []*Field {
	return filterFields(t, func(field *Field) bool {
		return field.Exported()
	})
}

func filterFields(t reflect.Type, keep func(field *Field) bool) []*Field {
	var result []*Field
	for _, field := range Fields(t, WithAncestors()) {
		if keep(field) {
			result = append(result, field)
		}
	}
	return result
}

// Exists reports whether every token of a dot separated path resolves as a
// declared field over supplied type; the check is structural, accessors are not
// consulted. Exists never errors and ignores values, so unlike Value it inspects
// every token even where a read would short-circuit on a nil intermediate.
func Exists(t reflect.Type, aPath string) bool {
	tokens, err := pathTokens(aPath)
	if err != nil {
		return false
	}
	current := ensureStruct(t)
	for i, token := range tokens {
		if current == nil {
			return false
		}
		field, ok := LookupField(current, token)
		if !ok {
			return false
		}
		if i == len(tokens)-1 {
			return true
		}
		current = ensureStruct(field.Type())
	}
	return false
}

func isSynthetic(field reflect.StructField) bool {
	return field.Name == "_" || isAncestorLink(field) || IsSetMarker(field.Tag)
}
