package main

import (
	"fmt"
	"text/scanner"
)

//
// Commands are only recognized at the start of an unnumbered line.
// Each one gets the lexer positioned just past the command name
//

type commandFunc func(s *session, lex *Lexer) error

var commandMap = map[string]commandFunc{
	"RUN":   executeRunCmd,
	"LIST":  executeList,
	"CLEAR": executeClear,
	"QUIT":  executeQuit,
	"HELP":  executeHelpCmd,
	"TRACE": executeTrace,
	"STATS": executeStats,
}

func executeRunCmd(s *session, lex *Lexer) error {

	if err := expectEOL(lex); err != nil {
		return err
	}

	return s.executeRun()
}

func executeList(s *session, lex *Lexer) error {

	if err := expectEOL(lex); err != nil {
		return err
	}

	s.prog.walk(func(lineNo int, text string) {
		fmt.Fprintf(s.con.out, "%d %s\n", lineNo, text)
	})

	return nil
}

func executeClear(s *session, lex *Lexer) error {

	if err := expectEOL(lex); err != nil {
		return err
	}

	s.prog.clear()

	s.state.initSymbolTable()

	return nil
}

func executeQuit(s *session, lex *Lexer) error {

	if err := expectEOL(lex); err != nil {
		return err
	}

	s.exiting = true

	return nil
}

func executeHelpCmd(s *session, lex *Lexer) error {

	var topic string

	if lex.hasMoreTokens() {
		t := lex.nextToken()
		if t.kind != scanner.Ident {
			return syntaxError("HELP wants a command name")
		}

		topic = t.text
	}

	if err := expectEOL(lex); err != nil {
		return err
	}

	executeHelp(s.con.out, topic)

	return nil
}

//
// TRACE EXEC, TRACE VARS and TRACE DUMP each toggle one kind of
// tracing.  The new state is echoed back
//

func executeTrace(s *session, lex *Lexer) error {

	var flag *bool

	t := lex.nextToken()

	switch t.text {
	default:
		return syntaxError("TRACE wants EXEC, VARS or DUMP")

	case "EXEC":
		flag = &s.traceExec

	case "VARS":
		flag = &s.traceVars

	case "DUMP":
		flag = &s.traceDump
	}

	if err := expectEOL(lex); err != nil {
		return err
	}

	*flag = !*flag

	if s.traceVars {
		s.state.setTrace(s.con.out)
	} else {
		s.state.setTrace(nil)
	}

	fmt.Fprintf(s.con.out, "Trace %s %s\n", t.text, onOff(*flag))

	return nil
}

func executeStats(s *session, lex *Lexer) error {

	if err := expectEOL(lex); err != nil {
		return err
	}

	s.printStats = !s.printStats

	fmt.Fprintf(s.con.out, "Statistics %s\n", onOff(s.printStats))

	return nil
}

func onOff(b bool) string {

	if b {
		return "on"
	}

	return "off"
}
