package oid

import "testing"

// UseSequence configures a predictable sequence of OIDs for the current test.
func UseSequence(t *testing.T) {
	generator = &SequenceGenerator{}
	t.Cleanup(Reset)
}
