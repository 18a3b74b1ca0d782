package main

import (
	"strconv"
	"text/scanner"
)

//
// Statement constructors.  parseStatement only looks at the first
// token to pick the variant; each variant then re-lexes the whole
// line itself and pulls out its own operands.  Any grammar problem
// (including trailing junk) is reported here, when the line is
// entered, rather than when it runs
//

func parseStatement(line string) (*stmtNode, error) {

	t := NewLexer(line).nextToken()
	if t.kind != scanner.Ident {
		return nil, syntaxError("statement must start with a keyword")
	}

	switch keywordMap[t.text] {
	default:
		return nil, syntaxError("unknown statement %q", t.text)

	case REM:
		return newRemStmt(line)

	case LET:
		return newLetStmt(line)

	case PRINT:
		return newPrintStmt(line)

	case INPUT:
		return newInputStmt(line)

	case GOTO:
		return newGotoStmt(line)

	case IF:
		return newIfStmt(line)

	case END:
		return newEndStmt(line)
	}
}

func makeStmtNode(tok int, line string) *stmtNode {

	return &stmtNode{token: tok, line: line}
}

//
// REM <anything>
//

func newRemStmt(line string) (*stmtNode, error) {

	lex := NewLexer(line)

	if err := expectKeyword(lex, REM); err != nil {
		return nil, err
	}

	return makeStmtNode(REM, line), nil
}

//
// LET <var> = <expr>
//

func newLetStmt(line string) (*stmtNode, error) {

	var err error

	lex := NewLexer(line)
	stmt := makeStmtNode(LET, line)

	if err = expectKeyword(lex, LET); err != nil {
		return nil, err
	}

	if stmt.varName, err = parseVariable(lex); err != nil {
		return nil, err
	}

	if lex.nextToken().kind != '=' {
		return nil, syntaxError("LET without '='")
	}

	e, err := parseExpr(lex)
	if err != nil {
		return nil, err
	}

	stmt.operands = []exprNode{e}

	return finishStmt(lex, stmt)
}

//
// PRINT <expr>
//

func newPrintStmt(line string) (*stmtNode, error) {

	lex := NewLexer(line)
	stmt := makeStmtNode(PRINT, line)

	if err := expectKeyword(lex, PRINT); err != nil {
		return nil, err
	}

	e, err := parseExpr(lex)
	if err != nil {
		return nil, err
	}

	stmt.operands = []exprNode{e}

	return finishStmt(lex, stmt)
}

//
// INPUT <var>
//

func newInputStmt(line string) (*stmtNode, error) {

	var err error

	lex := NewLexer(line)
	stmt := makeStmtNode(INPUT, line)

	if err = expectKeyword(lex, INPUT); err != nil {
		return nil, err
	}

	if stmt.varName, err = parseVariable(lex); err != nil {
		return nil, err
	}

	return finishStmt(lex, stmt)
}

//
// GOTO <line number>
//
// Whether the target exists is checked when the GOTO executes, since
// the program can change between now and then
//

func newGotoStmt(line string) (*stmtNode, error) {

	var err error

	lex := NewLexer(line)
	stmt := makeStmtNode(GOTO, line)

	if err = expectKeyword(lex, GOTO); err != nil {
		return nil, err
	}

	if stmt.target, err = parseLineNumber(lex); err != nil {
		return nil, err
	}

	return finishStmt(lex, stmt)
}

//
// IF <expr> <relop> <expr> THEN <line number>
//

func newIfStmt(line string) (*stmtNode, error) {

	var err error

	lex := NewLexer(line)
	stmt := makeStmtNode(IF, line)

	if err = expectKeyword(lex, IF); err != nil {
		return nil, err
	}

	lhs, err := parseExpr(lex)
	if err != nil {
		return nil, err
	}

	switch op := lex.nextToken(); op.kind {
	default:
		return nil, syntaxError("bad relational operator %q", op.text)

	case '=', '<', '>':
		stmt.relop = op.kind
	}

	rhs, err := parseExpr(lex)
	if err != nil {
		return nil, err
	}

	stmt.operands = []exprNode{lhs, rhs}

	if err = expectKeyword(lex, THEN); err != nil {
		return nil, err
	}

	if stmt.target, err = parseLineNumber(lex); err != nil {
		return nil, err
	}

	return finishStmt(lex, stmt)
}

//
// END
//

func newEndStmt(line string) (*stmtNode, error) {

	lex := NewLexer(line)

	if err := expectKeyword(lex, END); err != nil {
		return nil, err
	}

	return finishStmt(lex, makeStmtNode(END, line))
}

//
// Helpers shared by the constructors
//

func expectKeyword(lex *Lexer, tok int) error {

	t := lex.nextToken()

	if t.kind != scanner.Ident || keywordMap[t.text] != tok {
		return syntaxError("expected %s", getTokenName(tok))
	}

	return nil
}

func finishStmt(lex *Lexer, stmt *stmtNode) (*stmtNode, error) {

	if err := expectEOL(lex); err != nil {
		return nil, err
	}

	return stmt, nil
}

func expectEOL(lex *Lexer) error {

	if lex.hasMoreTokens() {
		return syntaxError("unexpected %q at end of statement",
			lex.peekToken().text)
	}

	return nil
}

func parseVariable(lex *Lexer) (string, error) {

	t := lex.nextToken()

	if t.kind != scanner.Ident || !isValidVariable(t.text) {
		return "", syntaxError("%q is not a valid variable name", t.text)
	}

	return t.text, nil
}

func parseLineNumber(lex *Lexer) (int, error) {

	t := lex.nextToken()

	if t.kind != scanner.Int {
		return 0, syntaxError("%q is not a line number", t.text)
	}

	lineNo, err := strconv.ParseInt(t.text, 10, strconv.IntSize)
	if err != nil {
		return 0, syntaxError("%q is not a line number", t.text)
	}

	return int(lineNo), nil
}
