package funcnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hucsmn/xltoken/peg"
)

func TestTablesAreDisjointAndNonEmpty(t *testing.T) {
	require.NotEmpty(t, ExcelFunctions())
	require.Len(t, RefFunctions(), 2)
	require.Len(t, CondRefFunctions(), 3)

	seen := map[string]string{}
	for _, group := range []struct {
		name  string
		names []string
	}{
		{"ref", RefFunctions()},
		{"condref", CondRefFunctions()},
		{"excel", ExcelFunctions()},
	} {
		for _, n := range group.names {
			if prior, dup := seen[n]; dup {
				t.Fatalf("%q appears in both %s and %s", n, prior, group.name)
			}
			seen[n] = group.name
		}
	}
}

func TestExcelFunctionCallLongestMatch(t *testing.T) {
	pat := ExcelFunctionCall()
	c := peg.NewCursor("SUMIFS(", "test")
	_, ok, err := peg.Run(pat, c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, c.AtEOF())
}

func TestExcelFunctionCallRejectsUnknownName(t *testing.T) {
	pat := ExcelFunctionCall()
	c := peg.NewCursor("NOTAREALFUNCTION(", "test")
	_, ok, err := peg.Run(pat, c)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Pos())
}

func TestExcelFunctionCallRequiresOpenParen(t *testing.T) {
	pat := ExcelFunctionCall()
	c := peg.NewCursor("SUM", "test")
	_, ok, err := peg.Run(pat, c)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRefAndCondRefFunctionCalls(t *testing.T) {
	c := peg.NewCursor("IF(", "test")
	_, ok, err := peg.Run(RefFunctionCall(), c)
	require.NoError(t, err)
	assert.True(t, ok)

	c = peg.NewCursor("INDEX(", "test")
	_, ok, err = peg.Run(CondRefFunctionCall(), c)
	require.NoError(t, err)
	assert.True(t, ok)

	// INDEX is not a plain ExcelFunction.
	c = peg.NewCursor("INDEX(", "test")
	_, ok, err = peg.Run(ExcelFunctionCall(), c)
	require.NoError(t, err)
	assert.False(t, ok)
}
