package main

import (
	"github.com/danswartzendruber/avl"
)

//
// The program store.  Lines live in an AVL tree keyed on line number,
// so in-order traversal is execution order.  These wrappers hide the
// AVL interface from the rest of the interpreter.  A nil root is the
// empty tree
//

func newProgram() *program {

	return &program{curLineNo: haltLineNo}
}

func cmpLineKey(key any, node any) int {

	return cmpIntItems(key.(int), node.(*lineNode).lineNo)
}

func cmpLineNode(node1, node2 any) int {

	return cmpIntItems(node1.(*lineNode).lineNo, node2.(*lineNode).lineNo)
}

func cmpIntItems(item1, item2 int) int {

	if item1 < item2 {
		return -1
	} else if item1 > item2 {
		return 1
	} else {
		return 0
	}
}

func (prog *program) lookup(lineNo int) *lineNode {

	p := avl.AvlTreeLookup(prog.root, lineNo, cmpLineKey)
	if p != nil {
		return p.(*lineNode)
	} else {
		return nil
	}
}

func (prog *program) firstInOrder() *lineNode {

	p := avl.AvlTreeFirstInOrder(prog.root)
	if p != nil {
		return p.(*lineNode)
	} else {
		return nil
	}
}

func (prog *program) nextInOrder(node *lineNode) *lineNode {

	p := avl.AvlTreeNextInOrder(&node.avl)
	if p != nil {
		return p.(*lineNode)
	} else {
		return nil
	}
}

//
// Insert or replace the source text for a line.  A replaced line
// loses its parsed statement until setParsedStatement is called again
//

func (prog *program) addLine(lineNo int, text string) {

	basicAssert(lineNo > 0, "Line numbers must be positive")

	if node := prog.lookup(lineNo); node != nil {
		node.text = text
		node.stmt = nil
		return
	}

	node := &lineNode{lineNo: lineNo, text: text}

	p := avl.AvlTreeInsert(&prog.root, &node.avl, node, cmpLineNode)
	basicAssert(p == nil, "Line already in tree???")
}

//
// Removing a line that isn't there is fine
//

func (prog *program) removeLine(lineNo int) {

	if node := prog.lookup(lineNo); node != nil {
		avl.AvlTreeRemove(&prog.root, &node.avl)
	}
}

func (prog *program) setParsedStatement(lineNo int, stmt *stmtNode) error {

	node := prog.lookup(lineNo)
	if node == nil {
		return lineNumberError(lineNo)
	}

	node.stmt = stmt

	return nil
}

func (prog *program) getParsedStatement(lineNo int) *stmtNode {

	if node := prog.lookup(lineNo); node != nil {
		return node.stmt
	}

	return nil
}

//
// Returns "" for a line that doesn't exist.  GOTO and IF use this to
// validate their targets
//

func (prog *program) getSourceLine(lineNo int) string {

	if node := prog.lookup(lineNo); node != nil {
		return node.text
	}

	return ""
}

func (prog *program) firstLineNumber() int {

	if node := prog.firstInOrder(); node != nil {
		return node.lineNo
	}

	return haltLineNo
}

//
// Smallest line number strictly greater than lineNo.  lineNo need not
// be in the program (the current line may have just been deleted,
// or we may be halted), in which case we walk from the front
//

func (prog *program) nextLineNumber(lineNo int) int {

	var node *lineNode

	if node = prog.lookup(lineNo); node != nil {
		node = prog.nextInOrder(node)
	} else {
		for node = prog.firstInOrder(); node != nil; node = prog.nextInOrder(node) {
			if node.lineNo > lineNo {
				break
			}
		}
	}

	if node != nil {
		return node.lineNo
	}

	return haltLineNo
}

func (prog *program) currentLineNumber() int {

	return prog.curLineNo
}

func (prog *program) setCurrentLineNumber(lineNo int) {

	prog.curLineNo = lineNo
}

func (prog *program) advanceToNextLine() {

	prog.curLineNo = prog.nextLineNumber(prog.curLineNo)
}

func (prog *program) clear() {

	prog.root = nil
	prog.curLineNo = haltLineNo
}

//
// Call f on every line in ascending order
//

func (prog *program) walk(f func(lineNo int, text string)) {

	for node := prog.firstInOrder(); node != nil; node = prog.nextInOrder(node) {
		f(node.lineNo, node.text)
	}
}
