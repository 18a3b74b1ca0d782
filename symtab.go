package main

import (
	"fmt"
	"io"
)

//
// The symbol table.  There is only one kind of variable (a scalar
// integer), so a single map covers it.  Entries appear on the first
// LET or INPUT that names them and stay until CLEAR
//

func newEvalState() *evalState {

	state := &evalState{}

	state.initSymbolTable()

	return state
}

//
// Initialize the symbol table to pristine state
//

func (state *evalState) initSymbolTable() {

	state.symtab = make(map[string]int)
}

func (state *evalState) getValue(name string) (int, error) {

	val, ok := state.symtab[name]
	if !ok {
		return 0, runtimeError(EVARNOTDEFINED, "%s", name)
	}

	return val, nil
}

func (state *evalState) setValue(name string, val int) {

	oval, ok := state.symtab[name]

	state.traceVar(name, ok, oval, val)

	state.symtab[name] = val
}

//
// Turn variable tracing on (w != nil) or off
//

func (state *evalState) setTrace(w io.Writer) {

	state.traceW = w
}

func (state *evalState) traceVar(name string, defined bool, oval, nval int) {

	if state.traceW == nil {
		return
	}

	if defined {
		fmt.Fprintf(state.traceW, "Variable %s changed from %d to %d\n",
			name, oval, nval)
	} else {
		fmt.Fprintf(state.traceW, "Variable %s set to %d\n", name, nval)
	}
}
