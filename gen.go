package structpath

import "reflect"

// GenPresenceFields generates the bool flag fields mirroring the members of
// supplied struct type, one per non synthetic own member; the result can back a
// holder struct built with reflect.StructOf
func GenPresenceFields(t reflect.Type) []reflect.StructField {
	var result []reflect.StructField
	for _, field := range Fields(t) {
		sField := reflect.StructField{Name: field.Name(), Type: boolType}
		if !field.Exported() {
			sField.PkgPath = field.Owner().PkgPath()
		}
		result = append(result, sField)
	}
	return result
}
