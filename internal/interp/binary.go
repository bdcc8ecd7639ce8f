package interp

import (
	"github.com/golox-lang/golox/internal/lexer"
)

// evaluateBinary dispatches a Binary expression's already-evaluated operands
// on the operator's token type. + has its own branch ahead of the generic
// numeric-arithmetic and comparison branches because it alone accepts
// strings, including the string/number display-form coercion spec.md
// documents as an explicit extension.
func (i *Interpreter) evaluateBinary(operator lexer.Token, left, right any) (any, error) {
	switch operator.Type {
	case lexer.PLUS:
		return evaluatePlus(operator, left, right)
	case lexer.MINUS:
		return numericBinary(operator, left, right, func(a, b float64) any { return a - b })
	case lexer.STAR:
		return numericBinary(operator, left, right, func(a, b float64) any { return a * b })
	case lexer.SLASH:
		return numericBinary(operator, left, right, func(a, b float64) any { return a / b })
	case lexer.GREATER:
		return numericBinary(operator, left, right, func(a, b float64) any { return a > b })
	case lexer.GREATER_EQUAL:
		return numericBinary(operator, left, right, func(a, b float64) any { return a >= b })
	case lexer.LESS:
		return numericBinary(operator, left, right, func(a, b float64) any { return a < b })
	case lexer.LESS_EQUAL:
		return numericBinary(operator, left, right, func(a, b float64) any { return a <= b })
	case lexer.BANG_EQUAL:
		return !isEqual(left, right), nil
	case lexer.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}
	return nil, &RuntimeError{Token: operator, Message: "Unknown operator '" + operator.Lexeme + "'."}
}

func evaluatePlus(operator lexer.Token, left, right any) (any, error) {
	ln, lIsNum := left.(float64)
	rn, rIsNum := right.(float64)
	if lIsNum && rIsNum {
		return ln + rn, nil
	}

	ls, lIsStr := left.(string)
	rs, rIsStr := right.(string)
	if lIsStr && rIsStr {
		return ls + rs, nil
	}

	// Extension beyond the reference semantics: string concatenated with a
	// non-string coerces the other operand to its display form.
	if lIsStr {
		return ls + stringify(right), nil
	}
	if rIsStr {
		return stringify(left) + rs, nil
	}

	return nil, &RuntimeError{Token: operator, Message: "Operands must be numbers."}
}

func numericBinary(operator lexer.Token, left, right any, apply func(a, b float64) any) (any, error) {
	ln, lOk := left.(float64)
	rn, rOk := right.(float64)
	if !lOk || !rOk {
		return nil, &RuntimeError{Token: operator, Message: "Operands must be numbers."}
	}
	return apply(ln, rn), nil
}
