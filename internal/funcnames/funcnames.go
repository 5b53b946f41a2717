// Package funcnames builds the ordered, longest-prefix-first recognizer for
// Excel's built-in function names (component 5 of the grammar). The name
// tables themselves are data, not code: they are embedded from
// functions.toml and decoded once at package init, the way tunaq's command
// tables are loaded from disk rather than hand-written as Go literals.
package funcnames

import (
	"embed"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/coregx/ahocorasick"

	"github.com/hucsmn/xltoken/peg"
)

//go:embed functions.toml
var functionsFS embed.FS

type table struct {
	RefFunctions     []string `toml:"ref_functions"`
	CondRefFunctions []string `toml:"cond_ref_functions"`
	ExcelFunctions   []string `toml:"excel_functions"`
}

var loaded table

func init() {
	data, err := functionsFS.ReadFile("functions.toml")
	if err != nil {
		panic(fmt.Sprintf("funcnames: reading embedded functions.toml: %v", err))
	}
	if _, err := toml.Decode(string(data), &loaded); err != nil {
		panic(fmt.Sprintf("funcnames: decoding embedded functions.toml: %v", err))
	}
	if len(loaded.ExcelFunctions) == 0 {
		panic("funcnames: functions.toml decoded zero excel_functions")
	}
}

// RefFunctions returns the names that parse as a ReferenceFunctionCall and
// can yield one of their arguments as a Reference (IF, CHOOSE). Their
// arguments are ordinary formula arguments, not restricted to References.
func RefFunctions() []string { return append([]string(nil), loaded.RefFunctions...) }

// CondRefFunctions returns the names that parse as a ReferenceFunctionCall
// and can yield a Reference depending on their arguments (INDEX, OFFSET,
// INDIRECT).
func CondRefFunctions() []string { return append([]string(nil), loaded.CondRefFunctions...) }

// ExcelFunctions returns every other built-in function name.
func ExcelFunctions() []string { return append([]string(nil), loaded.ExcelFunctions...) }

// recognizer pairs a cheap Aho-Corasick prefilter with the authoritative
// peg.TS longest-match pattern for one name category. The prefilter mirrors
// coregex's own strategy of running a fast multi-pattern automaton ahead of
// its real matching engine: here it lets the tokenizer reject the common
// case (an identifier that is not a function name at all) in one automaton
// step instead of always walking the prefix tree.
type recognizer struct {
	names     []string
	automaton *ahocorasick.Automaton
	namePat   peg.Pattern // TS over names, longest match wins
}

func newRecognizer(names []string) *recognizer {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	b := ahocorasick.NewBuilder()
	for _, n := range sorted {
		b.AddPattern([]byte(n))
	}
	automaton, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("funcnames: building Aho-Corasick automaton: %v", err))
	}

	return &recognizer{
		names:     sorted,
		automaton: automaton,
		namePat:   peg.TS(sorted...),
	}
}

// mayStartHere is the prefilter: it reports whether any known name in this
// category begins at the very start of rest. A false result lets callers
// skip the authoritative longest-match walk entirely.
func (r *recognizer) mayStartHere(rest string) bool {
	m := r.automaton.Find([]byte(rest), 0)
	return m != nil && m.Start == 0
}

// callPattern returns a Pattern matching "NAME(" for the longest member of
// this category that is a prefix of the input. The Aho-Corasick prefilter
// runs first via peg.Guard so the common case, an identifier that matches
// no name in this category at all, never walks the prefix tree. Callers
// wrap the result with peg.Action themselves so that the emitted token's
// offsets span the name and the opening paren, per the grammar's
// FunctionCall/ReferenceFunctionCall rules.
func (r *recognizer) callPattern() peg.Pattern {
	return peg.Guard(
		func(c *peg.Cursor) bool { return r.mayStartHere(c.Remaining()) },
		peg.Seq(r.namePat, peg.T("(")),
	)
}

var (
	excelRecognizer   = newRecognizer(loaded.ExcelFunctions)
	refRecognizer     = newRecognizer(loaded.RefFunctions)
	condRefRecognizer = newRecognizer(loaded.CondRefFunctions)
)

// ExcelFunctionCall matches "NAME(" for any plain built-in function name,
// longest match first, prefiltered by Aho-Corasick.
func ExcelFunctionCall() peg.Pattern { return excelRecognizer.callPattern() }

// RefFunctionCall matches "NAME(" for IF/CHOOSE.
func RefFunctionCall() peg.Pattern { return refRecognizer.callPattern() }

// CondRefFunctionCall matches "NAME(" for INDEX/OFFSET/INDIRECT.
func CondRefFunctionCall() peg.Pattern { return condRefRecognizer.callPattern() }
