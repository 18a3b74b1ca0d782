package main

import (
	"fmt"
	"io"
)

var helpTopics = map[string][]string{
	"CLEAR": {"Erase the current program and all variables"},
	"HELP":  {"Print this list, or help for one command or statement", "\tHELP <name>"},
	"LIST":  {"List the program lines in order"},
	"QUIT":  {"Exit from BASIC"},
	"RUN":   {"Execute the current program from the lowest numbered line"},
	"STATS": {"Toggle printing execution statistics when the program stops"},
	"TRACE": {"Toggle tracing of statement execution, variable modification" +
		" or parsed statements",
		"\tTRACE EXEC",
		"\tTRACE VARS",
		"\tTRACE DUMP"},

	"REM":   {"Comment; ignored", "\tREM <anything>"},
	"LET":   {"Assign an integer expression to a variable", "\tLET <var> = <expr>"},
	"PRINT": {"Print the value of an expression", "\tPRINT <expr>"},
	"INPUT": {"Read an integer from the user into a variable", "\tINPUT <var>"},
	"GOTO":  {"Continue execution at the given line", "\tGOTO <line>"},
	"IF": {"Jump to a line if a comparison (=, < or >) holds",
		"\tIF <expr> <op> <expr> THEN <line>"},
	"END": {"Stop the program"},
}

var helpCommands = []string{"CLEAR", "HELP", "LIST", "QUIT", "RUN", "STATS",
	"TRACE"}

var helpStatements = []string{"END", "GOTO", "IF", "INPUT", "LET", "PRINT",
	"REM"}

func executeHelp(w io.Writer, topic string) {

	if topic == "" {
		fmt.Fprintln(w, "You are running BASIC.  Enter numbered lines to build"+
			" a program, or one of:")
		printLines(w, helpCommands)
		fmt.Fprintln(w, "Statements:")
		printLines(w, helpStatements)
		return
	}

	text, ok := helpTopics[topic]
	if !ok {
		fmt.Fprintf(w, "No help for %q\n", topic)
		return
	}

	printLines(w, text)
}
