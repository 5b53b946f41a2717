// Package token defines the closed vocabulary of lexical token kinds that
// xltoken emits, and the ordered token stream that is its parse result.
package token

// Kind identifies the lexical category of a Token. The set is closed: it
// is exactly the taxonomy described by the formula grammar, never extended
// at runtime.
type Kind int

const (
	// Structural.
	OpenParen Kind = iota
	CloseParen
	OpenSquare
	CloseSquare
	OpenCurly
	CloseCurly
	Comma
	Semicolon
	Colon
	Bang
	Dollar
	At

	// Operators.
	Plus
	Minus
	Mul
	Div
	Exp
	Concat
	Percent
	Eq
	Neq
	Lt
	Gt
	Lte
	Gte
	Intersect

	// Literals.
	Number
	Text
	Bool
	Error
	RefError

	// References.
	Cell
	VRange
	HRange
	NamedRange
	ReservedName
	SheetPrefix
	FileIndex
	StructuredRef
	DynamicDataExchange

	// Callables.
	ExcelFunction
	RefFunction
	CondRefFunction
	UDFName

	// Whitespace.
	Space
)

var kindNames = [...]string{
	OpenParen:           "OpenParen",
	CloseParen:          "CloseParen",
	OpenSquare:          "OpenSquare",
	CloseSquare:         "CloseSquare",
	OpenCurly:           "OpenCurly",
	CloseCurly:          "CloseCurly",
	Comma:               "Comma",
	Semicolon:           "Semicolon",
	Colon:               "Colon",
	Bang:                "Bang",
	Dollar:              "Dollar",
	At:                  "At",
	Plus:                "Plus",
	Minus:               "Minus",
	Mul:                 "Mul",
	Div:                 "Div",
	Exp:                 "Exp",
	Concat:              "Concat",
	Percent:             "Percent",
	Eq:                  "Eq",
	Neq:                 "Neq",
	Lt:                  "Lt",
	Gt:                  "Gt",
	Lte:                 "Lte",
	Gte:                 "Gte",
	Intersect:           "Intersect",
	Number:              "Number",
	Text:                "Text",
	Bool:                "Bool",
	Error:               "Error",
	RefError:            "RefError",
	Cell:                "Cell",
	VRange:              "VRange",
	HRange:              "HRange",
	NamedRange:          "NamedRange",
	ReservedName:        "ReservedName",
	SheetPrefix:         "SheetPrefix",
	FileIndex:           "FileIndex",
	StructuredRef:       "StructuredRef",
	DynamicDataExchange: "DynamicDataExchange",
	ExcelFunction:       "ExcelFunction",
	RefFunction:         "RefFunction",
	CondRefFunction:     "CondRefFunction",
	UDFName:             "UDFName",
	Space:               "Space",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
