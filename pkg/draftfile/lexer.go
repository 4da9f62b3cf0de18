package draftfile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// DraftLexer defines the lexical structure of .draft files. The
// format is keyword-led, so statements need no terminator.
var DraftLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line.
	{Name: "Comment", Pattern: `//[^\n]*`},

	// Whitespace, newlines included.
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Statement keywords.
	{Name: "KwDraft", Pattern: `\bdraft\b`},
	{Name: "KwLine", Pattern: `\bline\b`},
	{Name: "KwRect", Pattern: `\brect\b`},
	{Name: "KwCircle", Pattern: `\bcircle\b`},
	{Name: "KwPoly", Pattern: `\bpoly\b`},

	// Style keywords.
	{Name: "KwStroke", Pattern: `\bstroke\b`},
	{Name: "KwWidth", Pattern: `\bwidth\b`},
	{Name: "KwDash", Pattern: `\bdash\b`},

	// Radius marker; must precede Ident so bare "r" never lexes as a
	// color name.
	{Name: "KwR", Pattern: `\br\b`},

	// Literals.
	{Name: "Number", Pattern: `[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?`},
	{Name: "Color", Pattern: `#[0-9a-fA-F]{3,8}`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

	// Punctuation.
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Comma", Pattern: `,`},
})
