package structpath

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type grandchild struct {
	flag bool
}

func (g *grandchild) Flag() bool {
	return g.flag
}

func (g *grandchild) SetFlag(flag bool) {
	g.flag = flag
}

type baseChild struct {
	baseString string
}

func (b *baseChild) BaseString() string {
	return b.baseString
}

func (b *baseChild) SetBaseString(value string) {
	b.baseString = value
}

type child struct {
	baseChild
	childString string
	grandchild  *grandchild
}

func (c *child) ChildString() string {
	return c.childString
}

func (c *child) SetChildString(value string) {
	c.childString = value
}

func (c *child) Grandchild() *grandchild {
	return c.grandchild
}

func (c *child) SetGrandchild(value *grandchild) {
	c.grandchild = value
}

type parent struct {
	child *child
}

func (p *parent) Child() *child {
	return p.child
}

func (p *parent) SetChild(value *child) {
	p.child = value
}

func TestValue(t *testing.T) {

	var testCases = []struct {
		description string
		target      func() interface{}
		path        string
		expect      interface{}
		expectErr   error
	}{
		{
			description: "nil root short-circuits",
			target: func() interface{} {
				return (*parent)(nil)
			},
			path:   "child.grandchild.flag",
			expect: nil,
		},
		{
			description: "nil intermediate short-circuits",
			target: func() interface{} {
				return &parent{}
			},
			path:   "child.grandchild.flag",
			expect: nil,
		},
		{
			description: "nil intermediate skips existence check on remaining tokens",
			target: func() interface{} {
				return &parent{}
			},
			path:   "child.noSuchMember.other",
			expect: nil,
		},
		{
			description: "nested accessor read",
			target: func() interface{} {
				return &parent{child: &child{grandchild: &grandchild{flag: true}}}
			},
			path:   "child.grandchild.flag",
			expect: true,
		},
		{
			description: "inherited accessor read",
			target: func() interface{} {
				return &parent{child: &child{baseChild: baseChild{baseString: "base"}}}
			},
			path:   "child.baseString",
			expect: "base",
		},
		{
			description: "lower camel token read",
			target: func() interface{} {
				return &parent{child: &child{childString: "text"}}
			},
			path:   "child.childString",
			expect: "text",
		},
		{
			description: "missing member",
			target: func() interface{} {
				return &parent{child: &child{}}
			},
			path:      "child.noSuchMember",
			expectErr: ErrNotFound,
		},
		{
			description: "direct field read without accessors",
			target: func() interface{} {
				type address struct {
					City string
				}
				type contact struct {
					Name    string
					Address address
				}
				return &contact{Name: "c", Address: address{City: "Rome"}}
			},
			path:   "Address.City",
			expect: "Rome",
		},
		{
			description: "non struct root",
			target: func() interface{} {
				return 101
			},
			path:      "anything",
			expectErr: ErrNotFound,
		},
		{
			description: "unexported field read without accessor",
			target: func() interface{} {
				type vault struct {
					secret string
				}
				return &vault{secret: "s3cret"}
			},
			path:   "secret",
			expect: "s3cret",
		},
	}

	for _, testCase := range testCases {
		actual, err := Value(testCase.target(), testCase.path)
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestTypedValue(t *testing.T) {
	target := &parent{child: &child{childString: "text", grandchild: &grandchild{flag: true}}}

	value, err := TypedValue(reflect.TypeOf(true), target, "child.grandchild.flag")
	assert.Nil(t, err)
	assert.EqualValues(t, true, value)

	value, err = TypedValue(reflect.TypeOf(0), target, "child.childString")
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	assert.Nil(t, value)

	//nil result carries no type to mismatch
	value, err = TypedValue(reflect.TypeOf(0), &parent{}, "child.childString")
	assert.Nil(t, err)
	assert.Nil(t, value)
}

func TestTypedHelpers(t *testing.T) {
	target := &parent{child: &child{childString: "text", grandchild: &grandchild{flag: true}}}

	flag, err := Bool(target, "child.grandchild.flag")
	assert.Nil(t, err)
	assert.True(t, flag)

	text, err := String(target, "child.childString")
	assert.Nil(t, err)
	assert.EqualValues(t, "text", text)

	_, err = Int(target, "child.childString")
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	flag, err = Bool(&parent{}, "child.grandchild.flag")
	assert.Nil(t, err)
	assert.False(t, flag)
}

func TestValue_InvalidPath(t *testing.T) {
	_, err := Value(&parent{}, "")
	assert.NotNil(t, err)
	_, err = Value(&parent{}, "child..flag")
	assert.NotNil(t, err)
}
