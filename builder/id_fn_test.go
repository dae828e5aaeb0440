package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFns(t *testing.T) {
	assert.Equal(t, "12", DefaultIDFn(12))
	assert.Equal(t, "A", ExcelColumnIDFn(0))
	assert.Equal(t, "Z", ExcelColumnIDFn(25))
	assert.Equal(t, "AA", ExcelColumnIDFn(26))
	assert.Equal(t, "AB", ExcelColumnIDFn(27))
	assert.Equal(t, "rxn_9", SymbolNumberIDFn("rxn_")(9))
	assert.Panics(t, func() { ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { SymbolNumberIDFn("R")(-1) })
}
