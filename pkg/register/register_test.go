package register

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheRakeshPurohit/neu/pkg/buffer"
)

func TestRegister_SetGet(t *testing.T) {
	var r Register
	assert.False(t, r.HasData())
	assert.Equal(t, "", r.Get().String())

	r.Set(buffer.FromString("abc\n"))
	assert.True(t, r.HasData())
	assert.True(t, r.Linewise())

	// Get returns a copy: editing it leaves the register intact.
	got := r.Get()
	got.InsertString(0, 0, "zz")
	assert.Equal(t, "abc\n", r.String())
}

func TestRegister_Overwrite(t *testing.T) {
	var r Register
	r.Set(buffer.FromString("one"))
	r.Set(buffer.FromString("two"))
	assert.Equal(t, "two", r.String())
	assert.False(t, r.Linewise())
}

func TestRegister_Mirror(t *testing.T) {
	var mirrored []string
	r := Register{Mirror: func(s string) error {
		mirrored = append(mirrored, s)
		return nil
	}}
	r.Set(buffer.FromString("x"))
	r.Set(nil)
	assert.Equal(t, []string{"x", ""}, mirrored)
}
