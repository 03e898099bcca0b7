package oid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := New()
	b := New()
	assert.Len(t, a.String(), 40)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, ParseOrNil(a.String()))
	assert.Equal(t, Nil, ParseOrNil("abc"))
	assert.True(t, ParseOrNil("abc").IsNil())
}

func TestUseSequence(t *testing.T) {
	UseSequence(t)
	assert.Equal(t, OID("0000000000000000000000000000000000000001"), New())
	assert.Equal(t, OID("0000000000000000000000000000000000000002"), New())
	assert.Equal(t, "0000000", New().Short())
}
