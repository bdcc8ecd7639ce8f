package parser

import (
	"github.com/golox-lang/golox/internal/ast"
	"github.com/golox-lang/golox/internal/lexer"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses the left-hand side as an ordinary expression, and on
// seeing '=' rewrites a Variable into an Assign or a Get into a Set. Any
// other left-hand side is reported as an invalid assignment target, but
// parsing continues with the already-parsed left-hand side so the rest of
// the statement (and file) still parses; this mirrors spec.md §4.2's
// explicitly non-fatal treatment of that error.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment() // right-associative

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value)
		case *ast.Get:
			return ast.NewSet(target.Object, target.Name, value)
		default:
			p.report(equals, "Invalid assignment target.")
			return expr
		}
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		operator := p.previous()
		right := p.and()
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		operator := p.previous()
		right := p.equality()
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

// unary is right-recursive: "-" and "!" bind tighter than */÷ and +/-.
func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return ast.NewUnary(operator, right)
	}
	return p.call()
}

// call parses a primary expression followed by any number of call and
// property-access suffixes: "(" starts an argument list, "." consumes a
// property name.
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			expr = ast.NewGet(expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArguments {
				p.reportAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}

	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return ast.NewCall(callee, paren, args)
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return ast.NewLiteral(false)
	case p.match(lexer.TRUE):
		return ast.NewLiteral(true)
	case p.match(lexer.NIL):
		return ast.NewLiteral(nil)
	case p.match(lexer.NUMBER, lexer.STRING):
		return ast.NewLiteral(p.previous().Literal)
	case p.match(lexer.SUPER):
		keyword := p.previous()
		p.consume(lexer.DOT, "Expect '.' after 'super'.")
		method := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		return ast.NewSuper(keyword, method)
	case p.match(lexer.THIS):
		return ast.NewThis(p.previous())
	case p.match(lexer.IDENTIFIER):
		return ast.NewVariable(p.previous())
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return ast.NewGrouping(expr)
	}

	p.reportAtCurrent("Expect expression.")
	panic(parseError{})
}
