package main

import (
	"strconv"
	"text/scanner"
)

//
// Recursive descent expression parser.  The grammar, lowest to
// highest precedence:
//
//	expr   := term (('+'|'-') term)*
//	term   := factor (('*'|'/') factor)*
//	factor := INTEGER | IDENTIFIER | '(' expr ')'
//
// Both binary levels are left-associative.  The parser consumes
// exactly one expression and leaves the lexer on the first token
// that can't continue it, which is how IF finds its relational
// operator and how PRINT finds trailing garbage
//

func parseExpr(lex *Lexer) (exprNode, error) {

	return parseBinary(lex, parseTerm, '+', '-')
}

func parseTerm(lex *Lexer) (exprNode, error) {

	return parseBinary(lex, parseFactor, '*', '/')
}

func parseBinary(lex *Lexer, operand func(*Lexer) (exprNode, error),
	op1, op2 rune) (exprNode, error) {

	left, err := operand(lex)
	if err != nil {
		return exprNode{}, err
	}

	for {
		op := lex.peekToken().kind
		if op != op1 && op != op2 {
			return left, nil
		}

		lex.nextToken()

		right, err := operand(lex)
		if err != nil {
			return exprNode{}, err
		}

		left = makeBinopNode(op, left, right)
	}
}

func parseFactor(lex *Lexer) (exprNode, error) {

	t := lex.nextToken()

	switch t.kind {
	default:
		if t.kind == scanner.EOF {
			return exprNode{}, syntaxError("unexpected end of expression")
		}

		return exprNode{}, syntaxError("unexpected %q in expression", t.text)

	case scanner.Int:
		value, err := strconv.ParseInt(t.text, 10, strconv.IntSize)
		if err != nil {
			return exprNode{}, syntaxError("bad integer constant %q", t.text)
		}

		return exprNode{kind: CONSTANT, value: int(value)}, nil

	case scanner.Ident:
		if !isValidVariable(t.text) {
			return exprNode{}, syntaxError("%q is not a variable", t.text)
		}

		return exprNode{kind: IDENT, name: t.text}, nil

	case '(':
		e, err := parseExpr(lex)
		if err != nil {
			return exprNode{}, err
		}

		if lex.nextToken().kind != ')' {
			return exprNode{}, syntaxError("missing ')'")
		}

		return e, nil
	}
}

func makeBinopNode(op rune, left, right exprNode) exprNode {

	return exprNode{kind: BINOP, op: op, operands: []exprNode{left, right}}
}

//
// Evaluate an expression tree against the variable state.  Both
// operands of a binary operator are always evaluated, left first.
// Go's integer division already truncates toward zero, which is
// what BASIC wants
//

func (e *exprNode) eval(state *evalState) (int, error) {

	switch e.kind {
	default:
		fatalError("Unknown expression node")
		return 0, nil

	case CONSTANT:
		return e.value, nil

	case IDENT:
		return state.getValue(e.name)

	case BINOP:
		basicAssert(len(e.operands) == 2, "BINOP botch")

		lval, err := e.operands[0].eval(state)
		if err != nil {
			return 0, err
		}

		rval, err := e.operands[1].eval(state)
		if err != nil {
			return 0, err
		}

		return applyOperator(e.op, lval, rval)
	}
}

func applyOperator(op rune, lval, rval int) (int, error) {

	switch op {
	default:
		fatalError("Unknown operator " + string(op))
		return 0, nil

	case '+':
		return lval + rval, nil

	case '-':
		return lval - rval, nil

	case '*':
		return lval * rval, nil

	case '/':
		if rval == 0 {
			return 0, runtimeError(EDIVISIONBY0, "%d / 0", lval)
		}

		return lval / rval, nil
	}
}
