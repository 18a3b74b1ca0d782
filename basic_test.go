package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func runSession(in string) string {

	var out bytes.Buffer

	sr := newStreamReader(strings.NewReader(in), &out)
	s := newSession(sr, sr, &out, "")
	s.repl()

	return out.String()
}

func TestBasic(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"PRINT 123\n", "123\n"},
		{"PRINT 2 + 3 * 4\n", "14\n"},
		{"PRINT (2 + 3) * 4\n", "20\n"},
		{"PRINT 10 - 3 - 2\n", "5\n"},
		{"PRINT 100 / 10 / 5\n", "2\n"},
		{"PRINT 7 / 2\n", "3\n"},
		{"PRINT (0 - 7) / 2\n", "-3\n"},
		{"PRINT 1 / 0\n", "DIVIDE BY ZERO\n"},
		{"PRINT 1 +\n", "SYNTAX ERROR\n"},
		{"PRINT 1 2\n", "SYNTAX ERROR\n"},
		{"PRINT -1\n", "SYNTAX ERROR\n"},

		{"LET x = 5\nPRINT x\n", "5\n"},
		{"LET x = 5\nLET x = x * x\nPRINT x\n", "25\n"},
		{"PRINT y\n", "VARIABLE NOT DEFINED\n"},
		{"LET LET = 1\n", "SYNTAX ERROR\n"},
		{"LET a.b = 1\n", "SYNTAX ERROR\n"},
		{"LET 1x = 1\n", "SYNTAX ERROR\n"},
		{"LET x 1\n", "SYNTAX ERROR\n"},
		{"LET under_score9 = 9\nPRINT under_score9\n", "9\n"},
		{"REM anything at all $%^&\n", ""},
		{"FOO\n", "SYNTAX ERROR\n"},
		{"x = 1\n", "SYNTAX ERROR\n"},
		{"\n\n   \nPRINT 1\n", "1\n"},

		{"GOTO 999\n", "LINE NUMBER ERROR\n"},
		{"GOTO x\n", "SYNTAX ERROR\n"},
		{"IF 1 = 1 THEN 99\n", "LINE NUMBER ERROR\n"},
		{"IF 1 = 1 99\n", "SYNTAX ERROR\n"},
		{"IF y = 1 THEN 999\n", "LINE NUMBER ERROR\n"},
		{"10 REM\nIF y = 1 THEN 10\n", "VARIABLE NOT DEFINED\n"},
		{"IF 1 <= 1 THEN 10\n", "SYNTAX ERROR\n"},

		{`10 LET x = 0
20 PRINT x
30 LET x = x + 1
40 IF x < 3 THEN 20
50 END
RUN
`, "0\n1\n2\n"},
		{`
50 END
40 IF x < 3 THEN 20
30 LET x = x + 1
20 PRINT x
10 LET x = 0
RUN
`, "0\n1\n2\n"},
		{`
10 PRINT 1
20 END
30 PRINT 2
RUN
`, "1\n"},
		{`
10 PRINT 1
20 GOTO 40
30 PRINT 2
40 PRINT 3
RUN
`, "1\n3\n"},
		{`
10 PRINT 1
20 PRINT z
30 PRINT 3
RUN
`, "1\nVARIABLE NOT DEFINED\n"},
		{`
10 GOTO 20
RUN
`, "LINE NUMBER ERROR\n"},
		{`
10 LET a = 5
20 IF a > 3 THEN 40
30 PRINT 0
40 PRINT a
RUN
`, "5\n"},
		{`
10 LET a = 2
20 IF a > 3 THEN 40
30 PRINT 0
40 PRINT a
RUN
`, "0\n2\n"},

		// Replacing, deleting and listing lines
		{"10 PRINT 1\n10 PRINT 2\nRUN\n", "2\n"},
		{"10 PRINT 1\n10 PRINT\nRUN\n", "SYNTAX ERROR\n1\n"},
		{"10 PRINT 1\n20 PRINT 2\n20\nRUN\n", "1\n"},
		{"30\nRUN\n", ""},
		{"0 PRINT 1\n", "SYNTAX ERROR\n"},
		{"20 PRINT   2\n10LET x = 1\nLIST\n", "10 LET x = 1\n20 PRINT   2\n"},
		{"10 PRINT 1\nLET x = 3\nCLEAR\nLIST\nPRINT x\n", "VARIABLE NOT DEFINED\n"},
		{"10 PRINT 1\nPRINT 2\nRUN\n", "2\n1\n"},
		{"10 PRINT 1\nGOTO 10\nRUN\n", "1\n"},
		{"RUN\n", ""},
		{"LIST 10\n", "SYNTAX ERROR\n"},

		{"PRINT 1\nQUIT\nPRINT 2\n", "1\n"},
		{"HELP RUN\n", "Execute the current program from the lowest numbered line\n"},
		{"HELP NOTHING\n", "No help for \"NOTHING\"\n"},

		// INPUT
		{"10 INPUT n\n20 PRINT n * 2\nRUN\n21\n", " ? 42\n"},
		{"10 INPUT n\n20 PRINT n\nRUN\nabc\n12 34\n\n  -7\n",
			" ? INVALID NUMBER\n ? INVALID NUMBER\n ?  ? -7\n"},
		{"INPUT x\n5\nPRINT x + 1\n", " ? 6\n"},
		{"INPUT x\n5 \n", " ? INVALID NUMBER\n ? "},
		{"INPUT x\n5 \n5\nPRINT x\n", " ? INVALID NUMBER\n ? 5\n"},
		{"INPUT x\n5\t\n\t 8\nPRINT x\n", " ? INVALID NUMBER\n ? 8\n"},
		{"INPUT x\n5x\n+5\nPRINT x\n", " ? INVALID NUMBER\n ? 5\n"},
		{"INPUT x\n", " ? "},
		{"INPUT 5\n", "SYNTAX ERROR\n"},
		{"INPUT x y\n", "SYNTAX ERROR\n"},
		{"INPUT THEN\n", "SYNTAX ERROR\n"},

		// Tracing
		{"10 PRINT 1\nTRACE EXEC\nRUN\n", "Trace EXEC on\n[10]\n1\n"},
		{"TRACE VARS\nLET a = 1\nLET a = 2\nTRACE VARS\nLET a = 3\n",
			"Trace VARS on\nVariable a set to 1\n" +
				"Variable a changed from 1 to 2\nTrace VARS off\n"},
		{"TRACE\n", "SYNTAX ERROR\n"},
		{"REM " + strings.Repeat("x", maxLineLen-4) + "\nPRINT 1\n", "1\n"},
		{"REM " + strings.Repeat("x", maxLineLen-3) + "\nPRINT 2\n",
			"SYNTAX ERROR\n2\n"},
	}

	for _, c := range cases {
		out := runSession(c.in)
		if out != c.out {
			t.Errorf("%q: got %q want %q", c.in, out, c.out)
		}
	}
}

//
// A reader that gives up as if the user hit ^C
//

type abortReader struct{}

func (abortReader) readLine(prompt string) (string, error) {
	return "", errInterrupted
}

func TestRunInterruptedInput(t *testing.T) {
	var out bytes.Buffer

	s := newSession(abortReader{}, abortReader{}, &out, "")

	for _, line := range []string{"10 PRINT 1", "20 INPUT x", "30 PRINT 2"} {
		if err := s.processLine(line); err != nil {
			t.Fatalf("processLine(%q) failed: %v", line, err)
		}
	}

	err := s.executeRun()
	if !errors.Is(err, errInterrupted) {
		t.Fatalf("executeRun() got %v want %v", err, errInterrupted)
	}

	if err.Error() != "Interrupted at line 20" {
		t.Errorf("executeRun() got %q", err.Error())
	}

	if out.String() != "1\n" {
		t.Errorf("output got %q want %q", out.String(), "1\n")
	}
}

func TestRunInterruptFlag(t *testing.T) {
	var out bytes.Buffer

	s := newSession(abortReader{}, abortReader{}, &out, "")

	for _, line := range []string{"10 PRINT 1", "20 GOTO 10"} {
		if err := s.processLine(line); err != nil {
			t.Fatalf("processLine(%q) failed: %v", line, err)
		}
	}

	//
	// The first PRINT raises the flag, as if ^C arrived while it ran.
	// The loop should notice before running line 20
	//

	s.con.out = &interruptingWriter{s: s, after: 1, w: &out}

	err := s.executeRun()
	if !errors.Is(err, errInterrupted) {
		t.Fatalf("executeRun() got %v want %v", err, errInterrupted)
	}

	if err.Error() != "Interrupted at line 20" {
		t.Errorf("executeRun() got %q", err.Error())
	}

	if s.stats.numStatements != 1 {
		t.Errorf("executed %d statements, want 1", s.stats.numStatements)
	}
}

type interruptingWriter struct {
	s     *session
	after int
	w     *bytes.Buffer
}

func (iw *interruptingWriter) Write(p []byte) (int, error) {

	iw.after--
	if iw.after <= 0 {
		iw.s.interrupted.Store(true)
	}

	return iw.w.Write(p)
}

func TestRunStatistics(t *testing.T) {
	out := runSession("STATS\n10 PRINT 1\n20 PRINT 2\nRUN\n")

	if !strings.HasPrefix(out, "Statistics on\n1\n2\n\n") {
		t.Fatalf("unexpected output %q", out)
	}

	if !strings.HasSuffix(out, "2 statements executed\n") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestLoadProgram(t *testing.T) {
	var out bytes.Buffer

	dir := t.TempDir()
	fname := dir + "/count"

	prog := "10 LET x = 0\n\n20 PRINT x\n30 LET x = x + 1\n40 IF x < 2 THEN 20\n"

	if err := os.WriteFile(fname+basFileSuffix, []byte(prog), 0644); err != nil {
		t.Fatal(err)
	}

	sr := newStreamReader(strings.NewReader("RUN\n"), &out)
	s := newSession(sr, sr, &out, "")

	if err := s.loadProgram(fname); err != nil {
		t.Fatalf("loadProgram(%q) failed: %v", fname, err)
	}

	s.repl()

	if out.String() != "0\n1\n" {
		t.Errorf("got %q want %q", out.String(), "0\n1\n")
	}

	bad := dir + "/bad.bas"
	if err := os.WriteFile(bad, []byte("10 PRINT 1\nPRINT 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := s.loadProgram(bad); err == nil {
		t.Errorf("loadProgram(%q) should fail", bad)
	}

	long := dir + "/long.bas"
	text := "10 REM " + strings.Repeat("x", maxLineLen) + "\n"
	if err := os.WriteFile(long, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}

	if err := s.loadProgram(long); errorKindOf(err) != syntaxErrorKind {
		t.Errorf("loadProgram(%q) got %v want a syntax error", long, err)
	}

	if err := s.loadProgram(dir + "/missing.bas"); err == nil {
		t.Errorf("loadProgram of a missing file should fail")
	}
}

func TestTraceDump(t *testing.T) {
	out := runSession("TRACE DUMP\nLET total = 1 + 2\nTRACE DUMP\nPRINT total\n")

	if !strings.HasPrefix(out, "Trace DUMP on\n") {
		t.Fatalf("unexpected output %q", out)
	}

	for _, want := range []string{"<#dump", "main.stmtNode", "total"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q: %q", want, out)
		}
	}

	if !strings.HasSuffix(out, "Trace DUMP off\n3\n") {
		t.Errorf("unexpected output %q", out)
	}

	if strings.Count(out, "<#dump") != 1 {
		t.Errorf("expected exactly one dump: %q", out)
	}
}
