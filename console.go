package main

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/danswartzendruber/liner"
	"io"
	"strings"
)

var errInterrupted = errors.New(EINTERRUPTED)

//
// Two ways of getting a line of input.  At a terminal we go through
// liner, for line editing (and history at command level).  Anywhere
// else (a pipe, a file, the tests) we read the stream directly and
// write the prompt to the output ourselves
//

//
// The part of *liner.State a linerReader uses
//

type promptState interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type linerReader struct {
	l       promptState
	history bool
}

type streamReader struct {
	r *bufio.Reader
	w io.Writer
}

func newStreamReader(r io.Reader, w io.Writer) *streamReader {

	return &streamReader{r: bufio.NewReader(r), w: w}
}

func (sr *streamReader) readLine(prompt string) (string, error) {

	if prompt != "" {
		fmt.Fprint(sr.w, prompt)
	}

	line, err := sr.r.ReadString('\n')

	//
	// A last line with no newline still counts.  We only report EOF
	// once there's nothing left at all
	//

	if err == io.EOF && len(line) > 0 {
		err = nil
	}

	if err != nil {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (lr *linerReader) readLine(prompt string) (string, error) {

	s, err := lr.l.Prompt(prompt)

	//
	// ^D at the start of a line shows up as io.EOF, and ^C at the
	// INPUT prompt as ErrPromptAborted.  Hand both back so the
	// session can quit or abort the program, respectively
	//

	if err != nil {
		if err == liner.ErrPromptAborted {
			return "", errInterrupted
		}

		return "", err
	}

	if lr.history {
		lr.l.AppendHistory(s)
	}

	return s, nil
}

//
// Two liner instances: one for the command level (with history), one
// for INPUT (no history, so answers don't clutter it).  Only the INPUT
// instance aborts on ^C; at command level ^C just clears the line.
// Close them in reverse order to get back to cooked mode
//

func setupLiners() {
	g.parserLiner = newLiner(false)
	g.inputLiner = newLiner(true)
}

func newLiner(ctrlCAborts bool) *liner.State {

	l := liner.NewLiner()

	l.SetCtrlCAborts(ctrlCAborts)

	return l
}

func cleanupLiners() {

	for _, lp := range []**liner.State{&g.inputLiner, &g.parserLiner} {
		if *lp != nil {
			(*lp).Close()
			*lp = nil
		}
	}
}
