package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

//
// Manifest constants for the user-visible error messages.  There
// are only three kinds of error a statement can fail with: a syntax
// error, a runtime error (a handful of distinct messages) and a bad
// transfer target
//

const (
	ESYNTAX        = "SYNTAX ERROR"
	EVARNOTDEFINED = "VARIABLE NOT DEFINED"
	EDIVISIONBY0   = "DIVIDE BY ZERO"
	ELINENUMBER    = "LINE NUMBER ERROR"
	EINVALIDNUMBER = "INVALID NUMBER"
	EINTERRUPTED   = "Interrupted"
)

type errorKind int

const (
	noError errorKind = iota
	syntaxErrorKind
	runtimeErrorKind
	lineNumberErrorKind
)

func (k errorKind) String() string {

	switch k {
	default:
		return "no error"

	case syntaxErrorKind:
		return "SyntaxError"

	case runtimeErrorKind:
		return "RuntimeError"

	case lineNumberErrorKind:
		return "InvalidLineNumber"
	}
}

//
// A basicError is what every parse and execute routine hands back to
// the session.  detail is never printed to the user; it's there for
// the tests and for anyone poking at an error with a debugger
//

type basicError struct {
	kind   errorKind
	msg    string
	detail string
}

func (e *basicError) Error() string {

	return e.msg
}

func syntaxError(f string, args ...any) error {

	return &basicError{kind: syntaxErrorKind, msg: ESYNTAX,
		detail: fmt.Sprintf(f, args...)}
}

func runtimeError(msg string, f string, args ...any) error {

	return &basicError{kind: runtimeErrorKind, msg: msg,
		detail: fmt.Sprintf(f, args...)}
}

func lineNumberError(lineNo int) error {

	return &basicError{kind: lineNumberErrorKind, msg: ELINENUMBER,
		detail: fmt.Sprintf("line %d does not exist", lineNo)}
}

//
// Map an arbitrary error onto the BASIC error taxonomy.  Anything
// that isn't ours (I/O errors reading INPUT for example) maps to
// noError
//

func errorKindOf(err error) errorKind {

	var be *basicError

	if errors.As(err, &be) {
		return be.kind
	}

	return noError
}

//
// Internal errors.  These are interpreter bugs, not user errors, so
// we panic with the caller's location and let call() report it
//

type internalErrorInfo struct {
	msg  string
	file string
	line int
}

func basicAssert(chk bool, msg string) {

	if !chk {
		fatalError(msg)
	}
}

func fatalError(msg string) {

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		crash("Unable to find caller frame!")
	}

	panic(&internalErrorInfo{strings.TrimRight(msg, "\n"), file, line})
}
