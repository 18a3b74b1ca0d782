package main

import (
	"errors"
	"fmt"
	"github.com/goforj/godump"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"
)

func main() {

	var s *session

	//
	// We need to close the Liner instances in reverse order, to make
	// sure we end up back in normal (cooked) terminal mode
	//

	defer func() {
		cleanupLiners()
	}()

	if len(os.Args) > 2 {
		crash("Usage: basic [program]")
	}

	if isInteractive() {
		setupLiners()

		s = newSession(&linerReader{l: g.parserLiner, history: true},
			&linerReader{l: g.inputLiner}, os.Stdout, myPrompt)

		printVersionInfo(os.Stdout)

		//
		// Run the signal handling code in a goroutine.  Only when
		// interactive: as a filter, ^C should just kill us
		//

		go sigHdlr(s)
	} else {
		sr := newStreamReader(os.Stdin, os.Stdout)

		s = newSession(sr, sr, os.Stdout, "")
	}

	if len(os.Args) == 2 {
		if err := s.loadProgram(os.Args[1]); err != nil {
			fmt.Println(err)
		}
	}

	s.repl()
}

func newSession(cmdReader, inputReader lineReader, out io.Writer,
	prompt string) *session {

	return &session{
		prog:      newProgram(),
		state:     newEvalState(),
		con:       &console{out: out, input: inputReader},
		cmdReader: cmdReader,
		prompt:    prompt,
	}
}

func printVersionInfo(w io.Writer) {

	fmt.Fprintf(w, "BASIC version %s\n", VERSION)
}

//
// Loop until QUIT or end of input.  Errors from a line are reported
// and we go back for the next one; nothing a user types is fatal
//

func (s *session) repl() {

	for !s.exiting {
		line, err := s.cmdReader.readLine(s.prompt)
		if err != nil {
			if errors.Is(err, errInterrupted) {
				continue
			}

			if err != io.EOF {
				fmt.Fprintln(s.con.out, err)
			}

			return
		}

		if err := checkLineLen(line); err != nil {
			s.reportError(err)
			continue
		}

		s.call(func() {
			err = s.processLine(line)
		})

		if errors.Is(err, io.EOF) {
			return
		}

		s.reportError(err)
	}
}

//
// Typed lines and program file lines share one length limit
//

func checkLineLen(line string) error {

	if len(line) > maxLineLen {
		return syntaxError("line longer than %d characters", maxLineLen)
	}

	return nil
}

//
// Wrapper routine for a function.  We need this so that internal
// errors (interpreter bugs) can be caught and reported before
// returning to the command loop, rather than taking the whole
// session down
//

func (s *session) call(f func()) {

	defer func() {
		e := recover()
		if e == nil {
			return
		}

		ie, ok := e.(*internalErrorInfo)
		if !ok {
			panic(e)
		}

		fmt.Fprintf(s.con.out, "%q at %s line %d\n", ie.msg,
			filepath.Base(ie.file), ie.line)

		debug.PrintStack()
	}()

	f()
}

func (s *session) reportError(err error) {

	if err != nil {
		fmt.Fprintln(s.con.out, err.Error())
	}
}

//
// Process one line of input.  Three cases:
//
// 1. It starts with a digit, so it's a program line.  A bare line
//    number deletes that line
// 2. It's one of the commands (RUN, LIST, ...)
// 3. Otherwise it's a statement to run right now, without storing it
//

func (s *session) processLine(line string) error {

	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}

	if unicode.IsDigit(rune(line[0])) {
		return s.processProgramLine(line)
	}

	lex := NewLexer(line)

	if t := lex.peekToken(); t.kind == scanner.Ident {
		if cmd, ok := commandMap[t.text]; ok {
			lex.nextToken()
			return cmd(s, lex)
		}
	}

	return s.executeImmediate(line)
}

func (s *session) processProgramLine(line string) error {

	i := 0
	for i < len(line) && unicode.IsDigit(rune(line[i])) {
		i++
	}

	lineNo, err := strconv.Atoi(line[:i])
	if err != nil || lineNo <= 0 {
		return syntaxError("bad line number %q", line[:i])
	}

	text := strings.TrimSpace(line[i:])
	if len(text) == 0 {
		s.prog.removeLine(lineNo)
		return nil
	}

	//
	// Parse before touching the program, so a bad line leaves any
	// existing line with the same number alone
	//

	stmt, err := parseStatement(text)
	if err != nil {
		return err
	}

	s.dumpStmt(stmt)

	s.prog.addLine(lineNo, text)

	return s.prog.setParsedStatement(lineNo, stmt)
}

//
// A direct statement runs once against the live variables and
// program.  Whatever it did to the cursor (a GOTO, say) is thrown
// away afterwards: only RUN runs the program
//

func (s *session) executeImmediate(line string) error {

	stmt, err := parseStatement(line)
	if err != nil {
		return err
	}

	s.dumpStmt(stmt)

	defer s.prog.setCurrentLineNumber(haltLineNo)

	return executeStmt(stmt, s.state, s.prog, s.con)
}

func (s *session) dumpStmt(stmt *stmtNode) {

	if s.traceDump {
		godump.Fdump(s.con.out, stmt)
	}
}

//
// The run loop.  Start at the lowest numbered line and keep going
// until some statement sets the cursor to haltLineNo (END, or
// falling off the end of the program).  A line with no parsed
// statement can't happen in normal use, but if it does it's a
// syntax error, same as any other unparseable line
//

func (s *session) executeRun() error {

	prog := s.prog

	s.interrupted.Store(false)

	s.initClock()

	defer s.printStatistics()

	prog.setCurrentLineNumber(prog.firstLineNumber())

	for {
		curLineNo := prog.currentLineNumber()
		if curLineNo == haltLineNo {
			return nil
		}

		if s.interrupted.Load() {
			return fmt.Errorf("%w at line %d", errInterrupted, curLineNo)
		}

		stmt := prog.getParsedStatement(curLineNo)
		if stmt == nil {
			return syntaxError("line %d was never parsed", curLineNo)
		}

		if s.traceExec {
			fmt.Fprintf(s.con.out, "[%d]\n", curLineNo)
		}

		if err := executeStmt(stmt, s.state, prog, s.con); err != nil {
			if errors.Is(err, errInterrupted) {
				return fmt.Errorf("%w at line %d", errInterrupted, curLineNo)
			}

			return err
		}

		s.stats.numStatements++
	}
}

//
// Read a saved program.  Every line must be a numbered program line
//

func (s *session) loadProgram(fname string) error {

	if filepath.Ext(fname) == "" {
		fname += basFileSuffix
	}

	f, err := os.Open(fname)
	if err != nil {
		return err
	}

	defer f.Close()

	sr := newStreamReader(f, nil)

	for lineNo := 1; ; lineNo++ {
		line, err := sr.readLine("")
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if err := checkLineLen(line); err != nil {
			return fmt.Errorf("%s:%d: %w", fname, lineNo, err)
		}

		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if !unicode.IsDigit(rune(line[0])) {
			return fmt.Errorf("%s:%d: not a program line", fname, lineNo)
		}

		if err := s.processProgramLine(line); err != nil {
			return fmt.Errorf("%s:%d: %w", fname, lineNo, err)
		}
	}
}
