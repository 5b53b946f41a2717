// Package lexrules implements the lexical token rules of the formula
// grammar (component 3): the terminal patterns for cells, ranges, numbers,
// strings, errors, names, sheet prefixes, structured references, and the
// small fixed set of structural/operator punctuation. Each exported token
// rule returns a peg.Pattern that, on success, emits exactly one
// token.Token of the documented kind; the helpers SingleQuotedString,
// SpaceRun and Skip emit no token.
//
// Grammar-level composition (how these terminals combine into formulas)
// lives in internal/grammar; the split mirrors the distinction the spec
// itself draws between "lexical token rules" and "grammar rules".
package lexrules

import (
	"github.com/hucsmn/xltoken/internal/funcnames"
	"github.com/hucsmn/xltoken/peg"
	"github.com/hucsmn/xltoken/token"
)

var (
	digit      = peg.R('0', '9')
	nonZero    = peg.R('1', '9')
	upperAZ    = peg.R('A', 'Z')
	letter     = peg.R('A', 'Z', 'a', 'z')
	dollarSign = peg.T("$")

	// identStart/identContinuation describe Name's character classes and
	// are reused by the Cell/Bool trailing negative lookahead: a Cell or
	// Bool match is invalid if followed by a character that would extend
	// it into a longer Name.
	identStart        = peg.Alt(letter, peg.T("_"), peg.T("\\"))
	identContinuation = peg.Alt(letter, digit, peg.T("_"), peg.T("\\"), peg.T("."), peg.T("?"))

	// notIdentContinuation is the trailing guard shared by Cell, VRange,
	// HRange and Bool: without it "A1A1" would lex as two Cells and
	// "TRUEISH" would lex as Bool followed by a Name.
	notIdentContinuation = peg.Not(identContinuation)

	// badColumn3 matches a three-letter column at or beyond "XFE", the
	// first column past Excel's real ceiling of XFD. It is tested as a
	// not_at guard ahead of the general column matcher, per spec §4.2's
	// "Column validity" note.
	badColumn3 = peg.Alt(
		peg.Seq(peg.T("XF"), peg.R('E', 'Z')),
		peg.Seq(peg.T("X"), peg.R('G', 'Z'), upperAZ),
		peg.Seq(peg.R('Y', 'Z'), upperAZ, upperAZ),
	)

	column = peg.Seq(peg.Not(badColumn3), peg.Qmn(1, 3, upperAZ))
	row    = peg.Seq(nonZero, peg.Q0(digit))
)

func action(kind token.Kind, pat peg.Pattern) peg.Pattern {
	return peg.Action(kind, pat)
}

// Number matches an optionally-fractional decimal literal with an optional
// exponent, e.g. "1", "3.14", ".5", "6.02e23", "1E-10". It does not absorb
// a leading sign: "+"/"-" in front of a number are always separate
// PrefixOp/InfixOp tokens at the grammar level (see scenario 1, "=1+2").
func Number() peg.Pattern {
	digits := peg.Q1(digit)
	fractionFirst := peg.Seq(peg.T("."), digits)
	intFirst := peg.Seq(digits, peg.Q01(peg.Seq(peg.T("."), peg.Q0(digit))))
	mantissa := peg.Alt(fractionFirst, intFirst)
	exponent := peg.Q01(peg.Seq(peg.S("eE"), peg.Q01(peg.S("+-")), digits))
	return action(token.Number, peg.Seq(mantissa, exponent))
}

// Text matches a double-quoted Excel string literal. "" is the escape for
// a literal quote inside the string; the closing quote is a hard
// requirement once the opening quote is consumed.
func Text() peg.Pattern {
	body := peg.Q0(peg.Alt(peg.T(`""`), peg.NS(`"`)))
	return action(token.Text, peg.Seq(peg.T(`"`), body, peg.Must("expected closing quote", peg.T(`"`))))
}

// SingleQuotedString is Text's mirror image with single quotes, used for
// quoted sheet names elsewhere; exposed here because it shares Text's
// escape convention.
func SingleQuotedString() peg.Pattern {
	body := peg.Q0(peg.Alt(peg.T("''"), peg.NS("'")))
	return peg.Seq(peg.T("'"), body, peg.Must("expected closing quote", peg.T("'")))
}

// ExcelError matches the fixed, longest-first alternation of Excel's error
// literals other than #REF!, which is RefError below because it alone
// participates in reference grammar (a #REF! can stand in for a Cell).
func ExcelError() peg.Pattern {
	return action(token.Error, peg.TS("#NULL!", "#DIV/0!", "#VALUE!", "#NAME?", "#NUM!", "#N/A"))
}

// RefError matches "#REF!".
func RefError() peg.Pattern {
	return action(token.RefError, peg.T("#REF!"))
}

// Cell matches an A1-style single-cell reference such as "A1", "$A$1",
// "Z99". The trailing negative lookahead is what keeps "A1A1" from lexing
// as two Cells: Excel's own grammar relies on this to fall through to
// NamedRange instead.
func Cell() peg.Pattern {
	pat := peg.Seq(peg.Q01(dollarSign), column, peg.Q01(dollarSign), row, notIdentContinuation)
	return action(token.Cell, pat)
}

// VRange matches a whole-column range such as "A:A" or "$A:$C". Unlike
// Cell, there is no meaningful standalone "bare column" token: "A" alone
// is indistinguishable from a one-letter Name, so VRange only commits once
// the ':' that makes it unambiguous has been seen.
func VRange() peg.Pattern {
	side := peg.Seq(peg.Q01(dollarSign), column)
	pat := peg.Seq(side, peg.T(":"), side, notIdentContinuation)
	return action(token.VRange, pat)
}

// HRange matches a whole-row range such as "1:1" or "$3:$3", symmetric to
// VRange.
func HRange() peg.Pattern {
	side := peg.Seq(peg.Q01(dollarSign), row)
	pat := peg.Seq(side, peg.T(":"), side, notIdentContinuation)
	return action(token.HRange, pat)
}

// cellShape matches anything shaped exactly like a single cell or row
// reference ("[$]LETTERS[$]DIGITS", entirely, with nothing trailing): a
// dollar-optional run of up to four letters, a dollar-optional run of
// digits, with no further identifier-continuation character immediately
// after. Excel never accepts a defined name in this shape, even when the
// letters spell a column beyond XFD: "XFE1" is a syntax error, not a
// NamedRange, even though it is not a valid Cell either.
var cellShape = peg.Seq(peg.Q01(dollarSign), peg.Qmn(1, 4, upperAZ), peg.Q01(dollarSign), peg.Q1(digit), notIdentContinuation)

// Name matches an Excel defined-name identifier: letter/_/\\ to start,
// then any run of letter/digit/_/\\/./? . It always wins over a partial
// Cell or Bool match once its own continuation runs past theirs, which is
// why Cell/Bool carry their own negative lookahead instead of Name
// yielding to them. The leading Not(cellShape) guard rejects inputs that
// are shaped exactly like a cell/row reference regardless of whether that
// shape is a column Excel actually recognizes: such inputs are a syntax
// error, not a fallback NamedRange (see the XFE1 scenario).
func Name() peg.Pattern {
	return action(token.NamedRange, peg.Seq(peg.Not(cellShape), identStart, peg.Q0(identContinuation)))
}

// Bool matches "TRUE" or "FALSE" exactly, rejecting any match that is
// really the prefix of a longer Name (e.g. "TRUEISH").
func Bool() peg.Pattern {
	return action(token.Bool, peg.Seq(peg.TS("TRUE", "FALSE"), notIdentContinuation))
}

// ReservedName matches Excel's "_xlnm." prefixed reserved defined names,
// e.g. "_xlnm.Print_Area".
func ReservedName() peg.Pattern {
	return action(token.ReservedName, peg.Seq(peg.T("_xlnm."), peg.Q1(peg.Alt(letter, peg.T("_")))))
}

// ExcelFunctionCall, RefFunctionCall and CondRefFunctionCall delegate to
// internal/funcnames for the actual longest-match name recognition and
// attach the token action here, since funcnames only knows about names,
// not about the token vocabulary.
func ExcelFunctionCall() peg.Pattern {
	return action(token.ExcelFunction, funcnames.ExcelFunctionCall())
}

func RefFunctionCall() peg.Pattern {
	return action(token.RefFunction, funcnames.RefFunctionCall())
}

func CondRefFunctionCall() peg.Pattern {
	return action(token.CondRefFunction, funcnames.CondRefFunctionCall())
}

// UDFName matches a user-defined-function call name, optionally prefixed
// with "_xll.", tried only after every built-in alternation has already
// failed (the grammar, not this rule, enforces that ordering).
func UDFName() peg.Pattern {
	body := peg.Q1(peg.Alt(letter, digit, peg.T("_"), peg.T(".")))
	return action(token.UDFName, peg.Seq(peg.Q01(peg.T("_xll.")), body, peg.T("(")))
}

// FileIndex matches Excel's normalized external-workbook marker, e.g.
// "[1]".
func FileIndex() peg.Pattern {
	return action(token.FileIndex, peg.Seq(peg.T("["), peg.Q1(digit), peg.T("]")))
}

// forbiddenSheetChars are the characters that cannot appear in an unquoted
// sheet name: space, Excel's reserved path/range punctuation, '!' itself
// (the terminator that ends a SheetPrefix), and the formula's operator and
// delimiter characters, so an unquoted name never runs across an operator
// or argument separator into a later "Sheet!" qualifier.
const forbiddenSheetChars = " []*?/\\:'!\"#%&()+,-;<=>@^{}"

// SheetPrefix matches a sheet qualifier such as "Sheet1!", "'My Sheet'!",
// or a sheet range "Sheet1:Sheet2!". It does not include a leading
// FileIndex; that is a separate token combined with SheetPrefix at the
// grammar level (see internal/grammar's Prefix rule), since FileIndex has
// its own Kind in the token vocabulary.
func SheetPrefix() peg.Pattern {
	quoted := peg.Seq(peg.T("'"), peg.Q0(peg.Alt(peg.T("''"), peg.NS("'"))), peg.Must("expected closing quote", peg.T("'")))
	unquoted := peg.Q1(peg.NS(forbiddenSheetChars))
	name := peg.Alt(quoted, unquoted)
	sheetRange := peg.Q01(peg.Seq(peg.T(":"), name))
	return action(token.SheetPrefix, peg.Seq(name, sheetRange, peg.T("!")))
}

// structuredKeywordItem is the set of Excel's reserved structured-reference
// item keywords, tried before the generic bracketed-column-name fallback.
var structuredKeywordItem = peg.TS("#All", "#Data", "#Headers", "#Totals", "#This Row")

// columnItem matches the body of one bracketed structured-reference
// element: either a reserved keyword item, or a plain word-shaped column
// name. original_source's SRColumnToken is plus<sor<alnum, one<'_'>,
// one<'.'>>> (word characters, '_' and '.' only, nothing wider); spaces,
// quotes and punctuation are not column-name characters.
var columnItem = peg.Alt(structuredKeywordItem, peg.Q1(peg.Alt(letter, digit, peg.T("_"), peg.T("."))))

// structuredElement matches one bracketed column reference, e.g. "[Col1]"
// or "[#Totals]" -- original_source's StructuredReferenceElement. Every
// column in a structured reference carries its own brackets; there is no
// shared outer bracket around bare, comma/colon-joined names.
func structuredElement() peg.Pattern {
	return peg.Seq(peg.T("["), columnItem, peg.T("]"))
}

// structuredExpression matches the body of a multi-column bracket group:
// 1 to 3 comma-separated structuredElements, where only the last one may
// additionally be extended into a colon range. original_source enumerates
// this as six explicit shapes (StructuredReferenceExpression: Element,
// Element:Element, Element,Element, Element,Element:Element,
// Element,Element,Element, Element,Element,Element:Element); this is the
// equivalent general rule, since each of those six shapes is exactly a
// comma list of up to three elements with an optional trailing ":element".
func structuredExpression() peg.Pattern {
	return peg.Seq(
		structuredElement(),
		peg.Qmn(0, 2, peg.Seq(peg.T(","), structuredElement())),
		peg.Q01(peg.Seq(peg.T(":"), structuredElement())),
	)
}

// StructuredRef matches a table-style structured reference, in the order
// original_source's StructuredReference alternation tries them: a bare
// bracketed column ("[Column]", for a formula inside its own table), that
// same shape wrapped in an extra pair of brackets ("[[Column]]"), a table
// name followed by one bracketed column ("Table1[Column]"), a table name
// with empty brackets ("Table1[]"), and finally a table name followed by
// a full multi-column bracket group ("Table1[[Col1]:[Col2]]").
func StructuredRef() peg.Pattern {
	tableName := peg.Seq(identStart, peg.Q0(identContinuation))
	bare := structuredElement()
	wrappedBare := peg.Seq(peg.T("["), structuredElement(), peg.T("]"))
	tableSingle := peg.Seq(tableName, structuredElement())
	tableEmpty := peg.Seq(tableName, peg.T("["), peg.T("]"))
	tableExpression := peg.Seq(tableName, peg.T("["), structuredExpression(), peg.T("]"))
	return action(token.StructuredRef, peg.Alt(bare, wrappedBare, tableSingle, tableEmpty, tableExpression))
}

// DynamicDataExchange matches a DDE link reference, e.g.
// "'program|topic'!item". Excel's own DDE grammar is otherwise undocumented
// here; this recognizes the common quoted-program/topic-then-item shape.
func DynamicDataExchange() peg.Pattern {
	programTopic := peg.Seq(peg.T("'"), peg.Q1(peg.NS("'")), peg.T("'"))
	item := peg.Q1(peg.Alt(letter, digit, peg.T("_"), peg.T(".")))
	return action(token.DynamicDataExchange, peg.Seq(programTopic, peg.T("!"), item))
}

// SpaceRun matches one or more literal spaces without emitting a token
// itself; internal/grammar wraps it with an Action only on the branch
// where the run is actually used as the intersection operator, since an
// empty intersectop must never produce a zero-width Space token.
func SpaceRun() peg.Pattern {
	return peg.Q1(peg.S(" "))
}

// Skip matches zero or more insignificant spaces, e.g. around InfixOp or
// a comma, without ever emitting a token. This is distinct from SpaceRun,
// which is only used where whitespace is itself the intersection operator.
func Skip() peg.Pattern {
	return peg.Q0(peg.S(" "))
}

// The remaining 25 terminals are one- or two-byte fixed punctuation. They
// are trivial but are still part of the ~40-rule lexical inventory, so
// they live here rather than being inlined ad hoc in internal/grammar.
var (
	OpenParen   = func() peg.Pattern { return action(token.OpenParen, peg.T("(")) }
	CloseParen  = func() peg.Pattern { return action(token.CloseParen, peg.T(")")) }
	OpenSquare  = func() peg.Pattern { return action(token.OpenSquare, peg.T("[")) }
	CloseSquare = func() peg.Pattern { return action(token.CloseSquare, peg.T("]")) }
	OpenCurly   = func() peg.Pattern { return action(token.OpenCurly, peg.T("{")) }
	CloseCurly  = func() peg.Pattern { return action(token.CloseCurly, peg.T("}")) }
	Comma       = func() peg.Pattern { return action(token.Comma, peg.T(",")) }
	Semicolon   = func() peg.Pattern { return action(token.Semicolon, peg.T(";")) }
	Colon       = func() peg.Pattern { return action(token.Colon, peg.T(":")) }
	Bang        = func() peg.Pattern { return action(token.Bang, peg.T("!")) }
	Dollar      = func() peg.Pattern { return action(token.Dollar, peg.T("$")) }
	At          = func() peg.Pattern { return action(token.At, peg.T("@")) }

	Plus    = func() peg.Pattern { return action(token.Plus, peg.T("+")) }
	Minus   = func() peg.Pattern { return action(token.Minus, peg.T("-")) }
	Mul     = func() peg.Pattern { return action(token.Mul, peg.T("*")) }
	Div     = func() peg.Pattern { return action(token.Div, peg.T("/")) }
	Exp     = func() peg.Pattern { return action(token.Exp, peg.T("^")) }
	Concat  = func() peg.Pattern { return action(token.Concat, peg.T("&")) }
	Percent = func() peg.Pattern { return action(token.Percent, peg.T("%")) }
	Neq     = func() peg.Pattern { return action(token.Neq, peg.T("<>")) }
	Gte     = func() peg.Pattern { return action(token.Gte, peg.T(">=")) }
	Lte     = func() peg.Pattern { return action(token.Lte, peg.T("<=")) }
	Gt      = func() peg.Pattern { return action(token.Gt, peg.T(">")) }
	Eq      = func() peg.Pattern { return action(token.Eq, peg.T("=")) }
	Lt      = func() peg.Pattern { return action(token.Lt, peg.T("<")) }
)
