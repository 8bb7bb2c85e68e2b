package structpath

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupField(t *testing.T) {
	type core struct {
		Id     int
		secret string
	}
	type middle struct {
		core
		Name string
	}
	type top struct {
		middle
		Name string
	}

	topType := reflect.TypeOf(top{})

	field, ok := LookupField(topType, "Name")
	assert.True(t, ok)
	assert.Equal(t, topType, field.Owner(), "closer declaration shadows the ancestor one")
	assert.False(t, field.Inherited())

	field, ok = LookupField(topType, "Id")
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeOf(core{}), field.Owner())
	assert.True(t, field.Inherited())

	//visibility is irrelevant to lookup success
	field, ok = LookupField(topType, "secret")
	assert.True(t, ok)
	assert.False(t, field.Exported())

	//lower camel token matches the conventional field name
	field, ok = LookupField(topType, "name")
	assert.True(t, ok)
	assert.Equal(t, "Name", field.Name())

	_, ok = LookupField(topType, "missing")
	assert.False(t, ok)

	_, ok = LookupField(reflect.TypeOf(0), "anything")
	assert.False(t, ok)
}

func TestLookupField_PointerEmbed(t *testing.T) {
	type node struct {
		Label string
	}
	type tree struct {
		*node
		Depth int
	}
	field, ok := LookupField(reflect.TypeOf(tree{}), "Label")
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeOf(node{}), field.Owner())

	//reading through the nil pointer embed propagates no value rather than failing
	value, err := Value(&tree{Depth: 1}, "Label")
	assert.Nil(t, err)
	assert.Nil(t, value)

	target := &tree{node: &node{Label: "root"}}
	value, err = Value(target, "Label")
	assert.Nil(t, err)
	assert.EqualValues(t, "root", value)

	assert.Nil(t, SetValue(target, "Label", "leaf"))
	assert.EqualValues(t, "leaf", target.node.Label)
}

func TestLookupMethod(t *testing.T) {
	childType := reflect.TypeOf(child{})

	method, ok := LookupMethod(childType, "Grandchild")
	assert.True(t, ok)
	assert.EqualValues(t, "Grandchild", method.Name)

	//promoted ancestor method
	_, ok = LookupMethod(childType, "BaseString")
	assert.True(t, ok)

	//setters take an argument, they are not zero argument callables
	_, ok = LookupMethod(childType, "SetGrandchild")
	assert.False(t, ok)

	//lookup is by exact name
	_, ok = LookupMethod(childType, "grandchild")
	assert.False(t, ok)

	_, ok = LookupMethod(nil, "Grandchild")
	assert.False(t, ok)
}
