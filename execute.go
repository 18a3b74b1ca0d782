package main

import (
	"fmt"
	"strconv"
	"strings"
)

//
// Execute one statement.  Every statement must leave the program
// cursor in one of three states: advanced to the next line, set to
// a jump target, or set to haltLineNo.  On error, the cursor is left
// alone
//

func executeStmt(stmt *stmtNode, state *evalState, prog *program,
	con *console) error {

	switch stmt.token {
	default:
		fatalError(fmt.Sprintf("Unexpected statement token %d", stmt.token))
		return nil

	case REM:
		prog.advanceToNextLine()
		return nil

	case LET:
		return executeLet(stmt, state, prog)

	case PRINT:
		return executePrint(stmt, state, prog, con)

	case INPUT:
		return executeInput(stmt, state, prog, con)

	case GOTO:
		return executeGoto(stmt, prog)

	case IF:
		return executeIf(stmt, state, prog)

	case END:
		prog.setCurrentLineNumber(haltLineNo)
		return nil
	}
}

func executeLet(stmt *stmtNode, state *evalState, prog *program) error {

	basicAssert(len(stmt.operands) == 1, "LET botch")

	val, err := stmt.operands[0].eval(state)
	if err != nil {
		return err
	}

	state.setValue(stmt.varName, val)

	prog.advanceToNextLine()

	return nil
}

func executePrint(stmt *stmtNode, state *evalState, prog *program,
	con *console) error {

	basicAssert(len(stmt.operands) == 1, "PRINT botch")

	val, err := stmt.operands[0].eval(state)
	if err != nil {
		return err
	}

	fmt.Fprintln(con.out, val)

	prog.advanceToNextLine()

	return nil
}

//
// Keep prompting until we get something that looks like an integer.
// A malformed line is not an error, just a complaint and another
// prompt.  Blank lines are skipped without complaint.  The only way
// out other than a good number is the reader itself failing (EOF,
// or ^C at a terminal)
//

func executeInput(stmt *stmtNode, state *evalState, prog *program,
	con *console) error {

	for {
		input, err := con.input.readLine(executePrompt)
		if err != nil {
			return err
		}

		input = strings.TrimLeft(input, " \t")
		if len(input) == 0 {
			continue
		}

		val, ok := convertInt(input)
		if !ok {
			fmt.Fprintln(con.out, EINVALIDNUMBER)
			continue
		}

		state.setValue(stmt.varName, val)

		prog.advanceToNextLine()

		return nil
	}
}

//
// Optionally signed decimal integer, nothing else.  Leading blanks
// are stripped by the caller; anything after the last digit,
// including a blank, makes the line malformed
//

func convertInt(s string) (int, bool) {

	i, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}

	return int(i), true
}

func executeGoto(stmt *stmtNode, prog *program) error {

	if prog.getSourceLine(stmt.target) == "" {
		return lineNumberError(stmt.target)
	}

	prog.setCurrentLineNumber(stmt.target)

	return nil
}

//
// The target line is checked first, so a missing target is reported
// even when an expression would also fail.  Then both sides are
// evaluated, left first
//

func executeIf(stmt *stmtNode, state *evalState, prog *program) error {

	basicAssert(len(stmt.operands) == 2, "IF botch")

	if prog.getSourceLine(stmt.target) == "" {
		return lineNumberError(stmt.target)
	}

	lhs, err := stmt.operands[0].eval(state)
	if err != nil {
		return err
	}

	rhs, err := stmt.operands[1].eval(state)
	if err != nil {
		return err
	}

	if compareValues(stmt.relop, lhs, rhs) {
		prog.setCurrentLineNumber(stmt.target)
	} else {
		prog.advanceToNextLine()
	}

	return nil
}

func compareValues(relop rune, lhs, rhs int) bool {

	switch relop {
	default:
		fatalError("Unknown relational operator " + string(relop))
		return false

	case '=':
		return lhs == rhs

	case '<':
		return lhs < rhs

	case '>':
		return lhs > rhs
	}
}
