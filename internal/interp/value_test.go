package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, isTruthy(nil))
	assert.False(t, isTruthy(false))
	assert.True(t, isTruthy(true))
	assert.True(t, isTruthy(0.0))
	assert.True(t, isTruthy(""))
	assert.True(t, isTruthy("anything"))
}

func TestIsEqual(t *testing.T) {
	assert.True(t, isEqual(nil, nil))
	assert.False(t, isEqual(nil, false))
	assert.False(t, isEqual(false, nil))
	assert.True(t, isEqual(1.0, 1.0))
	assert.False(t, isEqual(1.0, 2.0))
	assert.False(t, isEqual(1.0, "1"))
	assert.True(t, isEqual("a", "a"))
	assert.False(t, isEqual("a", "b"))

	inst := NewLoxInstance(&LoxClass{Name: "A"})
	assert.True(t, isEqual(inst, inst))
	assert.False(t, isEqual(inst, NewLoxInstance(&LoxClass{Name: "A"})))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "nil", stringify(nil))
	assert.Equal(t, "true", stringify(true))
	assert.Equal(t, "false", stringify(false))
	assert.Equal(t, "1", stringify(1.0))
	assert.Equal(t, "1.5", stringify(1.5))
	assert.Equal(t, "hello", stringify("hello"))

	class := NewLoxClass("Bagel", nil, map[string]*LoxFunction{})
	assert.Equal(t, "Bagel", stringify(class))

	instance := NewLoxInstance(class)
	assert.Equal(t, "Bagel instance", stringify(instance))
}
