package typestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldSetAndValue(t *testing.T) {
	f := MissingField[int]()
	p := f.Set(42)

	assert.Equal(t, 42, p.Value())
}

func TestFieldOverwriteKeepsPresent(t *testing.T) {
	p := PresentField("first")
	p = p.Set("second")

	// Re-setting overwrites the value; the marker stays Present.
	assert.Equal(t, "second", p.Value())
}

func TestFieldValuePanicsWhenUnset(t *testing.T) {
	// A forged Present slot without a value is a misuse.
	var forged Field[int, Present]

	require.Panics(t, func() { forged.Value() })
}

func TestOptGet(t *testing.T) {
	var o Opt[string]

	_, ok := o.Get()
	assert.False(t, ok)

	o = o.Set("hello")
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestOptOr(t *testing.T) {
	var o Opt[int]

	assert.Equal(t, 7, o.Or(7))
	assert.Equal(t, 3, o.Set(3).Or(7))
}

func TestOptOrZero(t *testing.T) {
	var ptr Opt[*int]
	assert.Nil(t, ptr.OrZero())

	var n Opt[int]
	assert.Equal(t, 0, n.OrZero())

	assert.Equal(t, 5, SetOpt(5).OrZero())
}
