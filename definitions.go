package main

import (
	"github.com/danswartzendruber/avl"
	"github.com/danswartzendruber/liner"
	"io"
	"math"
	"sync/atomic"
	"time"
)

//
// Constants
//

const VERSION = "1.0.0"

const basFileSuffix = ".bas"

const maxLineLen = math.MaxUint8

const myPrompt = "% "

const executePrompt = " ? "

//
// The halt sentinel.  When the program cursor holds this value, no
// program is running
//

const haltLineNo = -1

//
// Statement, command and misc keyword tokens.  Statement tokens come
// first, so executeStmt can range-check them
//

const (
	REM = iota + 1
	LET
	PRINT
	INPUT
	GOTO
	IF
	END
	THEN
	RUN
	LIST
	CLEAR
	QUIT
	HELP
)

//
// Expression node kinds
//

const (
	CONSTANT = iota + 1
	IDENT
	BINOP
)

//
// The reserved words.  Built once at startup and never written to
// again: nothing may be named after one of these
//

var keywordMap = map[string]int{
	"REM":   REM,
	"LET":   LET,
	"PRINT": PRINT,
	"INPUT": INPUT,
	"GOTO":  GOTO,
	"IF":    IF,
	"END":   END,
	"THEN":  THEN,
	"RUN":   RUN,
	"LIST":  LIST,
	"CLEAR": CLEAR,
	"QUIT":  QUIT,
	"HELP":  HELP,
}

var tokenNames = map[int]string{}

func init() {

	for k, v := range keywordMap {
		tokenNames[v] = k
	}
}

//
// Type definitions
//

type token struct {
	kind rune
	text string
}

type Lexer struct {
	tokens []token
	idx    int
	line   string
}

//
// An expression is an owned tree of values.  operands holds the
// left and right subtrees of a BINOP and is empty otherwise
//

type exprNode struct {
	kind     int
	value    int
	name     string
	op       rune
	operands []exprNode
}

//
// A parsed statement.  token selects the variant; the remaining
// fields are only meaningful for the variants that use them:
//
// LET   => varName, operands[0]
// PRINT => operands[0]
// INPUT => varName
// GOTO  => target
// IF    => operands[0] relop operands[1], target
//

type stmtNode struct {
	token    int
	line     string
	varName  string
	operands []exprNode
	relop    rune
	target   int
}

type lineNode struct {
	avl    avl.AvlNode
	lineNo int
	text   string
	stmt   *stmtNode
}

type program struct {
	root      *avl.AvlNode
	curLineNo int
}

type evalState struct {
	symtab map[string]int
	traceW io.Writer
}

type lineReader interface {
	readLine(prompt string) (string, error)
}

type console struct {
	out   io.Writer
	input lineReader
}

type stats struct {
	elapsed       time.Time
	utime         int64
	stime         int64
	numStatements int64
}

//
// One interpreter session: a program, its variables, and the
// console it talks to.  'interrupted' is the only field touched
// by another goroutine (the signal handler)
//

type session struct {
	prog        *program
	state       *evalState
	con         *console
	cmdReader   lineReader
	prompt      string
	stats       stats
	interrupted atomic.Bool
	exiting     bool
	traceExec   bool
	traceVars   bool
	traceDump   bool
	printStats  bool
}

//
// Terminal state.  Only main() and the liner helpers touch this
//

var g struct {
	parserLiner *liner.State
	inputLiner  *liner.State
}
