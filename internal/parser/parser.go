// Package parser implements golox's recursive-descent parser: it turns a
// lexer.Token sequence into an ast.Stmt sequence, recovering from syntax
// errors in panic mode so a single bad statement never prevents the rest of
// the file from being checked.
package parser

import (
	"github.com/golox-lang/golox/internal/ast"
	"github.com/golox-lang/golox/internal/lexer"
)

const maxArguments = 255

// Parser consumes a token slice produced by the lexer and builds an AST by
// recursive descent. Precedence climbs in the canonical order: assignment <
// or < and < equality < comparison < term < factor < unary < call < primary.
type Parser struct {
	tokens    []lexer.Token
	current   int
	loopDepth int
	errors    []Error
}

// New creates a Parser over the given token sequence. The sequence must end
// with an EOF token, as produced by lexer.Lexer.ScanTokens.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []Error {
	return p.errors
}

// HadError reports whether any parse error was recorded.
func (p *Parser) HadError() bool {
	return len(p.errors) > 0
}

// Parse parses the whole token stream as a sequence of declarations and
// returns the resulting statements. Even when HadError is true afterwards,
// the returned slice holds every statement that parsed successfully, in
// source order, for callers that want best-effort diagnostics.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// declaration parses a class/function/variable declaration or falls through
// to an ordinary statement. On a parse error it synchronises to the next
// statement boundary and returns nil for this declaration, letting the
// caller keep going.
func (p *Parser) declaration() ast.Stmt {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(lexer.CLASS):
		return p.classDeclaration()
	case p.checkFunKeyword():
		p.advance()
		return p.function("function")
	case p.match(lexer.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// checkFunKeyword exists only so declaration's switch can peek without
// consuming; the match call for VAR/CLASS already consumes on success, fun
// is consumed explicitly right after.
func (p *Parser) checkFunKeyword() bool {
	return p.check(lexer.FUN)
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect class name.")

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		p.consume(lexer.IDENTIFIER, "Expect superclass name.")
		superclass = ast.NewVariable(p.previous())
	}

	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.Function
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")
	return ast.NewClass(name, superclass, methods)
}

func (p *Parser) function(kind string) *ast.Function {
	name := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArguments {
				p.reportAtCurrent("Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return ast.NewFunction(name, params, body)
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}

	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return ast.NewVar(name, initializer)
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.BREAK):
		return p.breakStatement()
	case p.match(lexer.LEFT_BRACE):
		return ast.NewBlock(p.block())
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars `for (init; cond; incr) body` into a Block wrapping
// a While, per spec.md §4.2. The loop-depth counter that guards `break` is
// incremented around the body for the duration of this call, including when
// a parse error unwinds through it.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	p.loopDepth++
	defer func() { p.loopDepth-- }()

	body := p.statement()

	if increment != nil {
		body = ast.NewBlock([]ast.Stmt{body, ast.NewExpression(increment)})
	}

	if condition == nil {
		condition = ast.NewLiteral(true)
	}
	body = ast.NewWhile(condition, body)

	if initializer != nil {
		body = ast.NewBlock([]ast.Stmt{initializer, body})
	}

	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}

	return ast.NewIf(condition, thenBranch, elseBranch)
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return ast.NewPrint(value)
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()

	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}

	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return ast.NewReturn(keyword, value)
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")

	p.loopDepth++
	defer func() { p.loopDepth-- }()
	body := p.statement()

	return ast.NewWhile(condition, body)
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.reportAtPrevious("Must be inside a loop to use 'break'.")
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after 'break'.")
	return ast.NewBreak(keyword)
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return ast.NewExpression(expr)
}
