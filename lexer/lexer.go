/*
File    : microscala/lexer/lexer.go
Derived from: github.com/akashmaji946/go-mix/lexer/lexer.go
*/
package lexer

// Lexer performs longest-match, fixed-priority-order tokenization of
// MicroScala source text (spec.md §4.1). It scans left to right,
// tracking line and column for diagnostic echoing.
//
// Fields:
//   - Src: the complete source text
//   - Current: the byte at Position (0 once the input is exhausted)
//   - Position: current index into Src
//   - Line: current 1-indexed line number
//   - Column: current 0-indexed character offset within Line, reset at
//     each line boundary
//   - CurrentLine: the text of the line Column is measured against, kept
//     around so diagnostics can echo it verbatim
type Lexer struct {
	Src         string
	Current     byte
	Position    int
	SrcLength   int
	Line        int
	Column      int
	CurrentLine string
	lines       []string
}

// NewLexer creates a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	lex := &Lexer{
		Src:       src,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    0,
	}
	lex.lines = splitLines(src)
	if len(lex.lines) > 0 {
		lex.CurrentLine = lex.lines[0]
	}
	if lex.SrcLength > 0 {
		lex.Current = src[0]
	}
	return lex
}

func splitLines(src string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, src[start:i])
			start = i + 1
		}
	}
	lines = append(lines, src[start:])
	return lines
}

// Peek returns the byte after Current without consuming it.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance consumes Current and moves to the next byte, updating
// Line/Column bookkeeping (Column resets at a newline).
func (lex *Lexer) Advance() {
	if lex.Current == '\n' {
		lex.Line++
		lex.Column = 0
		if lex.Line-1 < len(lex.lines) {
			lex.CurrentLine = lex.lines[lex.Line-1]
		}
	} else {
		lex.Column++
	}
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// AtEnd reports whether the lexer has consumed all input.
func (lex *Lexer) AtEnd() bool {
	return lex.Position >= lex.SrcLength
}

// SkipWhitespaceAndComments consumes runs of space/tab/newline and
// `//`-to-end-of-line comments; neither is emitted to the parser
// (spec.md §4.1: "the parser skips e/comment kinds").
func (lex *Lexer) SkipWhitespaceAndComments() {
	for {
		switch {
		case lex.Current == ' ' || lex.Current == '\t' || lex.Current == '\n' || lex.Current == '\r':
			lex.Advance()
		case lex.Current == '/' && lex.Peek() == '/':
			for lex.Current != '\n' && !lex.AtEnd() {
				lex.Advance()
			}
		default:
			return
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isAlnum(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

// NextToken returns the next token, trying each production in the fixed
// priority order of spec.md §4.1/§6 and emitting the first match. An
// unrecognized prefix produces UNK; exhausted input produces EOF.
func (lex *Lexer) NextToken() Token {
	lex.SkipWhitespaceAndComments()

	line, col := lex.Line, lex.Column

	if lex.AtEnd() {
		return NewTokenWithLiteral(EOF, "EOF", line, col)
	}

	ch := lex.Current

	switch {
	case ch == ';':
		lex.Advance()
		return NewToken(SEMICOLON, ';', line, col)
	case ch == ':':
		if lex.Peek() == ':' {
			lex.Advance()
			lex.Advance()
			return NewTokenWithLiteral(CONS, "::", line, col)
		}
		lex.Advance()
		return NewToken(COLON, ':', line, col)
	case ch == '.':
		lex.Advance()
		return NewToken(PERIOD, '.', line, col)
	case ch == ',':
		lex.Advance()
		return NewToken(COMMA, ',', line, col)
	case ch == '{':
		lex.Advance()
		return NewToken(LBRACE, '{', line, col)
	case ch == '}':
		lex.Advance()
		return NewToken(RBRACE, '}', line, col)
	case ch == '[':
		lex.Advance()
		return NewToken(LBRACKET, '[', line, col)
	case ch == ']':
		lex.Advance()
		return NewToken(RBRACKET, ']', line, col)
	case ch == '|' && lex.Peek() == '|':
		lex.Advance()
		lex.Advance()
		return NewTokenWithLiteral(OR, "||", line, col)
	case ch == '&' && lex.Peek() == '&':
		lex.Advance()
		lex.Advance()
		return NewTokenWithLiteral(AND, "&&", line, col)
	case ch == '<':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewTokenWithLiteral(LE, "<=", line, col)
		}
		lex.Advance()
		return NewToken(LT, '<', line, col)
	case ch == '>':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewTokenWithLiteral(GE, ">=", line, col)
		}
		lex.Advance()
		return NewToken(GT, '>', line, col)
	case ch == '=':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewTokenWithLiteral(EQ, "==", line, col)
		}
		lex.Advance()
		return NewToken(ASSIGN, '=', line, col)
	case ch == '!':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewTokenWithLiteral(NE, "!=", line, col)
		}
		lex.Advance()
		return NewToken(NOT, '!', line, col)
	case ch == '(':
		lex.Advance()
		return NewToken(LPAREN, '(', line, col)
	case ch == ')':
		lex.Advance()
		return NewToken(RPAREN, ')', line, col)
	case ch == '+':
		lex.Advance()
		return NewToken(PLUS, '+', line, col)
	case ch == '-':
		lex.Advance()
		return NewToken(MINUS, '-', line, col)
	case ch == '*':
		lex.Advance()
		return NewToken(STAR, '*', line, col)
	case ch == '/':
		lex.Advance()
		return NewToken(SLASH, '/', line, col)
	case isDigit(ch):
		return lex.readInteger(line, col)
	case isLetter(ch):
		return lex.readIdentifier(line, col)
	default:
		lex.Advance()
		return NewToken(UNK, ch, line, col)
	}
}

// readInteger consumes a maximal run of digits: `[0-9]+`.
func (lex *Lexer) readInteger(line, col int) Token {
	start := lex.Position
	for isDigit(lex.Current) {
		lex.Advance()
	}
	return NewTokenWithLiteral(INTEGER, lex.Src[start:lex.Position], line, col)
}

// ConsumeTokens drains the lexer and returns every token up to and
// including the terminal EOF. Used by tests and by diagnostics that
// want to validate lexing totality (spec.md §8) independent of parsing.
func (lex *Lexer) ConsumeTokens() []Token {
	var tokens []Token
	for {
		tok := lex.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// readIdentifier consumes a maximal-munch identifier lexeme
// (`[A-Za-z](_?[A-Za-z0-9]+)*`, spec.md §6) and classifies it as a
// keyword or a plain identifier via lookupIdent.
func (lex *Lexer) readIdentifier(line, col int) Token {
	start := lex.Position
	lex.Advance() // consume the leading letter
	for {
		if lex.Current == '_' && isAlnum(lex.Peek()) {
			lex.Advance()
			for isAlnum(lex.Current) {
				lex.Advance()
			}
			continue
		}
		if isAlnum(lex.Current) {
			lex.Advance()
			continue
		}
		break
	}
	lexeme := lex.Src[start:lex.Position]
	return NewTokenWithLiteral(lookupIdent(lexeme), lexeme, line, col)
}
