/*
File    : microscala/parser/parser.go
Derived from: github.com/akashmaji946/go-mix/parser/parser.go (error-collection
              idiom: Errors, advance/expectAdvance/expectNext), and the grammar
              of _examples/original_source/MicroTree.py / spec.md §4.2.

Unlike the teacher, this is a genuine recursive-descent parser (the
teacher's Pratt engine does not map onto spec.md's explicit BNF
grammar), one function per production.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/microscala/ast"
	"github.com/akashmaji946/microscala/diagnostics"
	"github.com/akashmaji946/microscala/lexer"
)

// Parser holds a one-token lookahead over a Lexer and implements the
// MicroScala grammar top to bottom.
type Parser struct {
	Lex       *lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token

	// Errors collects non-fatal parse diagnostics. In this grammar
	// every mismatch is immediately fatal via diagnostics.FailAt, so
	// this slice stays empty on any program the parser accepts; it is
	// kept for symmetry with the teacher's Parser and so tests can
	// assert "no errors" on valid programs.
	Errors []string
}

// NewParser creates a Parser over src and primes the two-token
// lookahead.
func NewParser(src string) *Parser {
	par := &Parser{
		Lex:    lexer.NewLexer(src),
		Errors: make([]string, 0),
	}
	par.advance()
	par.advance()
	return par
}

// advance shifts the lookahead window forward by one token.
func (p *Parser) advance() {
	p.CurrToken = p.NextToken
	p.NextToken = p.Lex.NextToken()
}

// addError appends a collected (non-fatal) parser error. Unused by any
// production in this grammar today, kept for parity with the teacher.
func (p *Parser) addError(format string, args ...any) {
	p.Errors = append(p.Errors, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any collected errors exist.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// GetErrors returns the collected errors.
func (p *Parser) GetErrors() []string { return p.Errors }

// expect raises a positioned diagnostic naming what was expected
// ("X expected") if CurrToken is not of type tt, per spec.md §4.2's
// contract ("On mismatch, it invokes the diagnostic sink with
// 'X expected' ...").
func (p *Parser) expect(tt lexer.TokenType, what string) lexer.Token {
	if p.CurrToken.Type != tt {
		p.failExpected(what)
	}
	tok := p.CurrToken
	p.advance()
	return tok
}

// expectIdent expects an IDENT token and returns its lexeme.
func (p *Parser) expectIdent() string {
	tok := p.expect(lexer.IDENT, "identifier")
	return tok.Literal
}

func (p *Parser) failExpected(what string) {
	diagnostics.FailAt(
		fmt.Sprintf("%s expected", what),
		p.Lex.CurrentLine,
		p.CurrToken.Column,
	)
}

// Parse parses the whole compilation unit (spec.md §4.2
// compilationUnit ::= object id { {def} mainDef } EOF).
func (p *Parser) Parse() *ast.Program {
	p.expect(lexer.KW_OBJECT, "object")
	name := p.expectIdent()
	p.expect(lexer.LBRACE, "{")

	prog := &ast.Program{Name: name}

	for {
		switch p.CurrToken.Type {
		case lexer.KW_VAR:
			prog.DecVars = append(prog.DecVars, p.parseVarDef())
		case lexer.KW_DEF:
			if p.NextToken.Type == lexer.KW_MAIN {
				prog.Main = p.parseMainDef()
				goto doneTop
			}
			prog.Funcs = append(prog.Funcs, p.parseFunctionDef())
		default:
			p.failExpected("def or var")
		}
	}
doneTop:
	p.expect(lexer.RBRACE, "}")
	p.expect(lexer.EOF, "EOF")

	if prog.Main == nil {
		diagnostics.Fail("no main found")
	}
	return prog
}

// parseMainDef parses:
//
//	mainDef ::= def main ( args : Array [ String ] )
//	              { {varDef} statement {statement} }
func (p *Parser) parseMainDef() *ast.Program {
	p.expect(lexer.KW_DEF, "def")
	p.expect(lexer.KW_MAIN, "main")
	p.expect(lexer.LPAREN, "(")
	p.expect(lexer.KW_ARGS, "args")
	p.expect(lexer.COLON, ":")
	p.expect(lexer.KW_ARRAY, "Array")
	p.expect(lexer.LBRACKET, "[")
	p.expect(lexer.KW_STRING, "String")
	p.expect(lexer.RBRACKET, "]")
	p.expect(lexer.RPAREN, ")")
	p.expect(lexer.LBRACE, "{")

	main := &ast.Program{
		Name: "main",
		Params: []*ast.DecVar{
			{Name: "args", Type: ast.TypeTag{Kind: ast.TypeArrayString}, Value: &ast.NilLit{}},
		},
	}

	for p.CurrToken.Type == lexer.KW_VAR {
		main.DecVars = append(main.DecVars, p.parseVarDef())
	}

	var stmts []ast.Node
	stmts = append(stmts, p.parseStatement())
	for p.CurrToken.Type != lexer.RBRACE {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(lexer.RBRACE, "}")

	main.Stmt = &ast.Block{Stmts: stmts}
	return main
}

// parseFunctionDef parses:
//
//	def ::= def id ( [id : Type {, id : Type}] ) : Type =
//	          { {varDef} {statement} return listExpr ; }
func (p *Parser) parseFunctionDef() *ast.Program {
	p.expect(lexer.KW_DEF, "def")
	name := p.expectIdent()
	p.expect(lexer.LPAREN, "(")

	var params []*ast.DecVar
	if p.CurrToken.Type == lexer.IDENT {
		params = append(params, p.parseParam())
		for p.CurrToken.Type == lexer.COMMA {
			p.advance()
			params = append(params, p.parseParam())
		}
	}
	p.expect(lexer.RPAREN, ")")
	p.expect(lexer.COLON, ":")
	retType := p.parseType()
	p.expect(lexer.ASSIGN, "=")
	p.expect(lexer.LBRACE, "{")

	var locals []*ast.DecVar
	for p.CurrToken.Type == lexer.KW_VAR {
		locals = append(locals, p.parseVarDef())
	}

	var stmts []ast.Node
	for p.CurrToken.Type != lexer.KW_RETURN {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(lexer.KW_RETURN, "return")
	retExpr := p.parseListExpr()
	p.expect(lexer.SEMICOLON, ";")
	stmts = append(stmts, &ast.Return{Expr: retExpr})
	p.expect(lexer.RBRACE, "}")

	return &ast.Program{
		Name:       name,
		Params:     params,
		ReturnType: &retType,
		DecVars:    locals,
		Stmt:       &ast.Block{Stmts: stmts},
	}
}

// parseParam parses one `id : Type` formal parameter, storing the
// parser-supplied placeholder default required by spec.md §4.2
// ("Parameter defaults"): UNDEFINED for Int, Nil for List[Int].
func (p *Parser) parseParam() *ast.DecVar {
	name := p.expectIdent()
	p.expect(lexer.COLON, ":")
	t := p.parseType()
	var def ast.Node
	if t.Kind == ast.TypeInt {
		def = &ast.IntLit{Value: UNDEFINED}
	} else {
		def = &ast.NilLit{}
	}
	return &ast.DecVar{Name: name, Type: t, Value: def}
}

// UNDEFINED is the sentinel used for uninitialized Int parameters
// (spec.md GLOSSARY).
const UNDEFINED int64 = -32768

// parseVarDef parses `var id : Type = literal ;`.
func (p *Parser) parseVarDef() *ast.DecVar {
	p.expect(lexer.KW_VAR, "var")
	name := p.expectIdent()
	p.expect(lexer.COLON, ":")
	t := p.parseType()
	p.expect(lexer.ASSIGN, "=")
	lit := p.parseLiteral()
	p.expect(lexer.SEMICOLON, ";")
	return &ast.DecVar{Name: name, Type: t, Value: lit}
}

// parseType parses `Int | List [ Int ]`.
func (p *Parser) parseType() ast.TypeTag {
	switch p.CurrToken.Type {
	case lexer.KW_INT:
		p.advance()
		return ast.TypeTag{Kind: ast.TypeInt}
	case lexer.KW_LIST:
		p.advance()
		p.expect(lexer.LBRACKET, "[")
		p.expect(lexer.KW_INT, "Int")
		p.expect(lexer.RBRACKET, "]")
		return ast.TypeTag{Kind: ast.TypeListInt}
	default:
		p.failExpected("type")
		return ast.TypeTag{}
	}
}

// parseStatement parses one production of:
//
//	statement ::= if ( expr ) statement [else statement]
//	            | while ( expr ) statement
//	            | id = listExpr ;
//	            | println ( listExpr ) ;
//	            | { statement {statement} }
func (p *Parser) parseStatement() ast.Node {
	switch p.CurrToken.Type {
	case lexer.KW_IF:
		p.advance()
		p.expect(lexer.LPAREN, "(")
		cond := p.parseExpr()
		p.expect(lexer.RPAREN, ")")
		then := p.parseStatement()
		var elseStmt ast.Node
		if p.CurrToken.Type == lexer.KW_ELSE {
			p.advance()
			elseStmt = p.parseStatement()
		}
		return &ast.If{Cond: cond, Then: then, Else: elseStmt}

	case lexer.KW_WHILE:
		p.advance()
		p.expect(lexer.LPAREN, "(")
		cond := p.parseExpr()
		p.expect(lexer.RPAREN, ")")
		body := p.parseStatement()
		return &ast.While{Cond: cond, Body: body}

	case lexer.KW_PRINTLN:
		p.advance()
		p.expect(lexer.LPAREN, "(")
		e := p.parseListExpr()
		p.expect(lexer.RPAREN, ")")
		p.expect(lexer.SEMICOLON, ";")
		return &ast.Println{Expr: e}

	case lexer.LBRACE:
		p.advance()
		var stmts []ast.Node
		stmts = append(stmts, p.parseStatement())
		for p.CurrToken.Type != lexer.RBRACE {
			stmts = append(stmts, p.parseStatement())
		}
		p.expect(lexer.RBRACE, "}")
		return &ast.Block{Stmts: stmts}

	case lexer.IDENT:
		name := p.CurrToken.Literal
		p.advance()
		p.expect(lexer.ASSIGN, "=")
		rhs := p.parseListExpr()
		p.expect(lexer.SEMICOLON, ";")
		return &ast.Assignment{Lhs: &ast.Variable{Name: name}, Rhs: rhs}

	default:
		p.failExpected("statement")
		return nil
	}
}

// parseExpr parses `expr ::= andExpr {|| andExpr}` (left-associative).
func (p *Parser) parseExpr() ast.Node {
	left := p.parseAndExpr()
	for p.CurrToken.Type == lexer.OR {
		p.advance()
		right := p.parseAndExpr()
		left = &ast.Expr{Op: ast.OpOr, Term1: left, Term2: right}
	}
	return left
}

// parseAndExpr parses `andExpr ::= relExpr {&& relExpr}`.
func (p *Parser) parseAndExpr() ast.Node {
	left := p.parseRelExpr()
	for p.CurrToken.Type == lexer.AND {
		p.advance()
		right := p.parseRelExpr()
		left = &ast.Expr{Op: ast.OpAnd, Term1: left, Term2: right}
	}
	return left
}

// parseRelExpr parses `relExpr ::= [!] listExpr [relOper listExpr]`.
// Unary ! binds over the whole (possibly relational) expression, per
// spec.md §4.2's associativity note.
func (p *Parser) parseRelExpr() ast.Node {
	hasNot := false
	if p.CurrToken.Type == lexer.NOT {
		hasNot = true
		p.advance()
	}

	term1 := p.parseListExpr()
	var node ast.Node = term1
	if op, ok := relOp(p.CurrToken.Type); ok {
		p.advance()
		term2 := p.parseListExpr()
		node = &ast.Expr{Op: op, Term1: term1, Term2: term2}
	}

	if hasNot {
		node = &ast.Expr{Op: ast.OpNot, Term1: node}
	}
	return node
}

// relOp maps a relOper token to its Op, per `relOper ::= < | <= | > | >= | == | !=`.
func relOp(tt lexer.TokenType) (ast.Op, bool) {
	switch tt {
	case lexer.LT:
		return ast.OpLt, true
	case lexer.LE:
		return ast.OpLe, true
	case lexer.GT:
		return ast.OpGt, true
	case lexer.GE:
		return ast.OpGe, true
	case lexer.EQ:
		return ast.OpEq, true
	case lexer.NE:
		return ast.OpNe, true
	default:
		return "", false
	}
}

// parseListExpr parses `listExpr ::= addExpr [:: listExpr]`, right
// recursive, implementing right-associativity of `::`.
func (p *Parser) parseListExpr() ast.Node {
	left := p.parseAddExpr()
	if p.CurrToken.Type == lexer.CONS {
		p.advance()
		right := p.parseListExpr()
		return &ast.Expr{Op: ast.OpCons, Term1: left, Term2: right}
	}
	return left
}

// parseAddExpr parses `addExpr ::= mulExpr {(+|-) mulExpr}` (left-associative).
func (p *Parser) parseAddExpr() ast.Node {
	left := p.parseMulExpr()
	for p.CurrToken.Type == lexer.PLUS || p.CurrToken.Type == lexer.MINUS {
		op := ast.OpAdd
		if p.CurrToken.Type == lexer.MINUS {
			op = ast.OpSub
		}
		p.advance()
		right := p.parseMulExpr()
		left = &ast.Expr{Op: op, Term1: left, Term2: right}
	}
	return left
}

// parseMulExpr parses `mulExpr ::= prefixExpr {(*|/) prefixExpr}` (left-associative).
func (p *Parser) parseMulExpr() ast.Node {
	left := p.parsePrefixExpr()
	for p.CurrToken.Type == lexer.STAR || p.CurrToken.Type == lexer.SLASH {
		op := ast.OpMul
		if p.CurrToken.Type == lexer.SLASH {
			op = ast.OpDiv
		}
		p.advance()
		right := p.parsePrefixExpr()
		left = &ast.Expr{Op: op, Term1: left, Term2: right}
	}
	return left
}

// parsePrefixExpr parses `prefixExpr ::= [+|-] simpleExpr {. (head|tail|isEmpty)}`.
//
// The optional sign is read first syntactically but applied LAST: per
// spec.md §4.2's construction-order note, the prefix sign wraps the
// result only after the whole .head/.tail/.isEmpty chain has been
// built, so `-xs.head` negates the head of xs rather than taking the
// head of -xs.
func (p *Parser) parsePrefixExpr() ast.Node {
	hasSign := false
	neg := false
	if p.CurrToken.Type == lexer.PLUS || p.CurrToken.Type == lexer.MINUS {
		hasSign = true
		neg = p.CurrToken.Type == lexer.MINUS
		p.advance()
	}

	node := p.parseSimpleExpr()
	for p.CurrToken.Type == lexer.PERIOD {
		p.advance()
		op := p.parseListMethodCall()
		node = &ast.Expr{Op: op, Term1: node}
	}

	if hasSign {
		op := ast.OpPos
		if neg {
			op = ast.OpNeg
		}
		node = &ast.Expr{Op: op, Term1: node}
	}
	return node
}

// parseListMethodCall parses `. (head|tail|isEmpty)`, with the leading
// period already consumed by the caller.
func (p *Parser) parseListMethodCall() ast.Op {
	switch p.CurrToken.Type {
	case lexer.KW_HEAD:
		p.advance()
		return ast.OpHead
	case lexer.KW_TAIL:
		p.advance()
		return ast.OpTail
	case lexer.KW_ISEMPTY:
		p.advance()
		return ast.OpIsEmpty
	default:
		p.failExpected("head, tail, or isEmpty")
		return ""
	}
}

// parseSimpleExpr parses `simpleExpr ::= literal | ( expr ) | id [ ( [listExpr {, listExpr}] ) ]`.
func (p *Parser) parseSimpleExpr() ast.Node {
	switch p.CurrToken.Type {
	case lexer.INTEGER, lexer.KW_NIL:
		return p.parseLiteral()
	case lexer.LPAREN:
		p.advance()
		e := p.parseExpr()
		p.expect(lexer.RPAREN, ")")
		return e
	case lexer.IDENT:
		name := p.CurrToken.Literal
		p.advance()
		if p.CurrToken.Type != lexer.LPAREN {
			return &ast.Variable{Name: name}
		}
		p.advance()
		var args []ast.Node
		if p.CurrToken.Type != lexer.RPAREN {
			args = append(args, p.parseListExpr())
			for p.CurrToken.Type == lexer.COMMA {
				p.advance()
				args = append(args, p.parseListExpr())
			}
		}
		p.expect(lexer.RPAREN, ")")
		return &ast.FunctionCall{Name: name, Args: args}
	default:
		p.failExpected("expression")
		return nil
	}
}

// parseLiteral parses `literal ::= integer | Nil`.
func (p *Parser) parseLiteral() ast.Node {
	switch p.CurrToken.Type {
	case lexer.INTEGER:
		tok := p.CurrToken
		p.advance()
		var v int64
		fmt.Sscanf(tok.Literal, "%d", &v)
		return &ast.IntLit{Value: v}
	case lexer.KW_NIL:
		p.advance()
		return &ast.NilLit{}
	default:
		p.failExpected("literal")
		return nil
	}
}
