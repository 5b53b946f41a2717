// Package grammar composes the lexical token rules in internal/lexrules
// into the recursive productions of Excel's formula language (component 4):
// formulas, references, function calls, parenthesized sub-expressions, and
// array constants. Every rule that recurses (directly or through another
// rule) is expressed as a plain Go function and wrapped with peg.Lazy at
// its recursive call sites, which is what lets a cyclic grammar be built
// out of a non-lazy combinator library without looping forever at
// construction time.
package grammar

import (
	"github.com/hucsmn/xltoken/internal/lexrules"
	"github.com/hucsmn/xltoken/peg"
	"github.com/hucsmn/xltoken/token"
)

// Root is the top-level rule: a formula prefixed with "=", an array
// formula wrapped in "{= ... }", a bare FormulaBody (for embedded
// contexts), or pure whitespace accepted as an empty formula.
func Root() peg.Pattern {
	return peg.Alt(FormulaWithEq(), ArrayFormula(), FormulaBody(), lexrules.Skip())
}

// FormulaWithEq matches "=" followed by a FormulaBody.
func FormulaWithEq() peg.Pattern {
	return peg.Seq(lexrules.Eq(), lexrules.Skip(), peg.Lazy(FormulaBody))
}

// ArrayFormula matches "{=" FormulaBody "}".
func ArrayFormula() peg.Pattern {
	return peg.Seq(
		lexrules.OpenCurly(), lexrules.Eq(), lexrules.Skip(),
		peg.Lazy(FormulaBody), lexrules.Skip(),
		peg.Must("expected closing brace", lexrules.CloseCurly()),
	)
}

func infixTail() peg.Pattern {
	return peg.Seq(lexrules.Skip(), InfixOp(), lexrules.Skip(), peg.Lazy(FormulaBody))
}

// FormulaBody is the precedence-folding expression grammar: a parenthesized
// sub-formula with an optional infix tail, a prefix operator applied to a
// sub-formula, or an atomic Formula optionally followed by a postfix
// operator (then an optional infix tail) or by a run of infix tails.
// Operator precedence is deliberately not resolved here; the grammar only
// certifies that a well-formed sequence of operators and operands exists.
func FormulaBody() peg.Pattern {
	parenthesized := peg.Seq(
		lexrules.OpenParen(), lexrules.Skip(),
		peg.Lazy(FormulaBody), lexrules.Skip(),
		peg.Must("expected closing paren", lexrules.CloseParen()),
		peg.Q01(peg.Lazy(infixTail)),
	)
	prefixed := peg.Seq(PrefixOp(), lexrules.Skip(), peg.Lazy(FormulaBody))
	atomic := peg.Seq(
		Formula(),
		peg.Alt(
			peg.Seq(PostfixOp(), peg.Q01(peg.Lazy(infixTail))),
			peg.Q0(peg.Lazy(infixTail)),
		),
	)
	return peg.Alt(parenthesized, prefixed, atomic)
}

// PrefixOp is "+" or "-" applied as a unary prefix.
func PrefixOp() peg.Pattern {
	return peg.Alt(lexrules.Plus(), lexrules.Minus())
}

// PostfixOp is the "%" percent suffix.
func PostfixOp() peg.Pattern {
	return lexrules.Percent()
}

// InfixOp is a flat, priority-ordered alternation of every binary operator.
// Longer tokens that share a prefix with a shorter one ("<>", ">=", "<=")
// are listed before their prefix, so ordered choice picks the longer one.
func InfixOp() peg.Pattern {
	return peg.Alt(
		lexrules.Exp(), lexrules.Mul(), lexrules.Div(),
		lexrules.Plus(), lexrules.Minus(), lexrules.Concat(),
		lexrules.Neq(), lexrules.Gte(), lexrules.Lte(),
		lexrules.Gt(), lexrules.Eq(), lexrules.Lt(),
	)
}

// Formula is the expression atom, tried in this order: a constant array, a
// scalar constant, a reserved defined name, a built-in function call, or a
// reference (cell, range, name, ...).
func Formula() peg.Pattern {
	return peg.Alt(
		ConstantArray(),
		Constant(),
		lexrules.ReservedName(),
		FunctionCall(),
		References(),
	)
}

// Constant is a literal value: number, text, boolean or error, in that
// priority order.
func Constant() peg.Pattern {
	return peg.Alt(lexrules.Number(), lexrules.Text(), lexrules.Bool(), lexrules.ExcelError())
}

// FunctionCall matches a built-in function invocation. ExcelFunctionCall
// already consumes the function name and its opening "(" as one token;
// Arguments and the closing ")" complete the call.
func FunctionCall() peg.Pattern {
	return peg.Seq(
		lexrules.ExcelFunctionCall(), lexrules.Skip(),
		formulaArguments(),
		lexrules.Skip(),
		peg.Must("expected closing paren", lexrules.CloseParen()),
	)
}

// formulaArgument is a single comma-delimited function argument: either a
// FormulaBody, or nothing at all (an omitted argument, as in "SUM(,A1,)").
func formulaArgument() peg.Pattern {
	return peg.Alt(peg.Lazy(FormulaBody), peg.True)
}

// formulaArguments is a comma-separated list of formulaArguments. Because
// an argument may always match empty, the comma itself is what must
// consume real input for the list to make progress. ReferenceFunctionCall
// and UDFunctionCall use this same list for their arguments; Union does
// not (see Union).
func formulaArguments() peg.Pattern {
	return peg.Seq(formulaArgument(), peg.Q0(peg.Seq(lexrules.Skip(), lexrules.Comma(), lexrules.Skip(), formulaArgument())))
}

// intersectOp is the "run of spaces" intersection operator. A nonempty run
// is tokenized as Space; an empty run succeeds with no token, matching
// spec §9's note that intersectop = star(space) must be allowed to be
// empty without ever emitting a zero-width token.
func intersectOp() peg.Pattern {
	return peg.Alt(peg.Action(token.Space, lexrules.SpaceRun()), peg.True)
}

func referenceJoin() peg.Pattern {
	return peg.Alt(lexrules.Colon(), intersectOp())
}

// References is a non-empty list of Reference, separated by ":" (forming a
// range) or by the intersection operator. The join pattern can itself be
// zero-width (an empty intersectop), but every Reference must consume at
// least one byte to succeed, so each loop iteration still makes progress;
// there is no risk of looping forever on an empty separator.
func References() peg.Pattern {
	return peg.Seq(peg.Lazy(Reference), peg.Q0(peg.Seq(referenceJoin(), peg.Lazy(Reference))))
}

// Reference is tried in this order: a reference-returning function call, a
// DDE link, a parenthesized Reference, a sheet/file Prefix applied to a
// ReferenceItem, or a bare ReferenceItem.
func Reference() peg.Pattern {
	parenthesized := peg.Seq(
		lexrules.OpenParen(), lexrules.Skip(),
		peg.Lazy(Reference), lexrules.Skip(),
		peg.Must("expected closing paren", lexrules.CloseParen()),
	)
	return peg.Alt(
		ReferenceFunctionCall(),
		lexrules.DynamicDataExchange(),
		parenthesized,
		peg.Seq(Prefix(), ReferenceItem()),
		ReferenceItem(),
	)
}

// Prefix combines an optional FileIndex with a mandatory SheetPrefix, e.g.
// "[1]Sheet1!" or just "Sheet1!".
func Prefix() peg.Pattern {
	return peg.Seq(peg.Q01(lexrules.FileIndex()), lexrules.SheetPrefix())
}

// ReferenceFunctionCall is either a parenthesized Union, or a call to one
// of the reference-returning built-ins (IF/CHOOSE/INDEX/OFFSET/INDIRECT).
// Their arguments use the same general Arguments production as any other
// function call (arbitrary FormulaBody, e.g. IF(A1>0,"pos","neg")), not a
// References-only list: the original implementation's RefFunctionName call
// shares its Arguments rule verbatim with the plain FunctionCall.
func ReferenceFunctionCall() peg.Pattern {
	parenthesizedUnion := peg.Seq(
		lexrules.OpenParen(), lexrules.Skip(),
		Union(), lexrules.Skip(),
		peg.Must("expected closing paren", lexrules.CloseParen()),
	)
	call := peg.Seq(
		peg.Alt(lexrules.RefFunctionCall(), lexrules.CondRefFunctionCall()),
		lexrules.Skip(), formulaArguments(), lexrules.Skip(),
		peg.Must("expected closing paren", lexrules.CloseParen()),
	)
	return peg.Alt(parenthesizedUnion, call)
}

// Union is a comma-separated list of at least two References, where every
// comma genuinely commits: unlike formulaArguments, a Reference has no
// empty fallback, so a comma not followed by a valid Reference is a real
// syntax error.
func Union() peg.Pattern {
	return peg.Seq(
		peg.Lazy(Reference),
		peg.Qn(1, peg.Seq(lexrules.Skip(), lexrules.Comma(), lexrules.Skip(), peg.Must("expected reference after comma", peg.Lazy(Reference)))),
	)
}

// UDFunctionCall matches a user-defined-function invocation; UDFName
// already carries the name and opening "(".
func UDFunctionCall() peg.Pattern {
	return peg.Seq(
		lexrules.UDFName(), lexrules.Skip(),
		formulaArguments(), lexrules.Skip(),
		peg.Must("expected closing paren", lexrules.CloseParen()),
	)
}

// ReferenceItem is tried in this priority order: Cell, VRange, HRange,
// RefError, a UDF call, a structured reference, or finally a plain named
// range. The ordering matters semantically: Cell is tried before
// NamedRange because a Cell's column/row shape is a syntactic prefix of
// many names, but Cell's own trailing negative lookahead is what lets the
// choice correctly fall through to NamedRange for inputs like "A1A1".
func ReferenceItem() peg.Pattern {
	return peg.Alt(
		lexrules.Cell(),
		lexrules.VRange(),
		lexrules.HRange(),
		lexrules.RefError(),
		UDFunctionCall(),
		lexrules.StructuredRef(),
		lexrules.Name(),
	)
}

// arrayConstant is one element of an array row: a Constant, a signed
// Number (the one place a leading sign is matched directly against a
// Number rather than via the general PrefixOp/FormulaBody grammar), or a
// RefError.
func arrayConstant() peg.Pattern {
	return peg.Alt(Constant(), peg.Seq(PrefixOp(), lexrules.Number()), lexrules.RefError())
}

func arrayRow() peg.Pattern {
	return peg.Seq(arrayConstant(), peg.Q0(peg.Seq(lexrules.Skip(), lexrules.Comma(), lexrules.Skip(), arrayConstant())))
}

// ConstantArray matches a "{1,2;3,4}"-style array literal. Rows are
// separated by ";", must-committed per spec §9's Open Question resolution
// (the source accepts jagged rows; width validation is left to consumers).
func ConstantArray() peg.Pattern {
	return peg.Seq(
		lexrules.OpenCurly(), lexrules.Skip(),
		arrayRow(),
		peg.Q0(peg.Seq(lexrules.Skip(), lexrules.Semicolon(), peg.Must("expected array row", peg.Seq(lexrules.Skip(), arrayRow())))),
		lexrules.Skip(),
		peg.Must("expected closing brace", lexrules.CloseCurly()),
	)
}
