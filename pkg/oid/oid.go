package oid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// OID identifies a batch or a journal entry.
// We use the same "format" as Git (=40-length string).
type OID string

const Nil = OID("")

func (o OID) IsNil() bool {
	return string(o) == ""
}

// Short returns the abbreviated form used in listings.
func (o OID) Short() string {
	if len(o) < 7 {
		return string(o)
	}
	return string(o)[0:7]
}

func (o OID) String() string {
	return string(o)
}

// New generates a new unique OID.
func New() OID {
	return generator.New()
}

// ParseOrNil parses an OID or returns Nil.
func ParseOrNil(s string) OID {
	if len(s) != 40 {
		return Nil
	}
	return OID(s)
}

/* Generators */

type Generator interface {
	New() OID
}

var generator Generator = &UniqueGenerator{}

// Reset restores the default unique generator.
func Reset() {
	generator = &UniqueGenerator{}
}

// UniqueGenerator returns random OIDs.
type UniqueGenerator struct{}

func (g *UniqueGenerator) New() OID {
	// Remove `-` + add 8 random characters
	oid := strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")[0:40]
	return OID(oid)
}

// SequenceGenerator returns 0000...1, 0000...2, etc.
type SequenceGenerator struct {
	count int
}

func (g *SequenceGenerator) New() OID {
	g.count++
	return OID(fmt.Sprintf("%040d", g.count))
}
