package main

import (
	"strings"
	"text/scanner"
)

//
// The lexer turns one line of text into a slice of tokens up front.
// Callers then walk the slice with nextToken/peekToken.  Whitespace
// is never returned; digit runs come back as a single scanner.Int;
// identifiers as scanner.Ident; everything else as the character
// itself (so '+' is token{kind: '+', text: "+"})
//

func NewLexer(line string) *Lexer {

	lexer := &Lexer{line: line}

	myScanner(lexer)

	return lexer
}

func myScanner(yylex *Lexer) {

	var s scanner.Scanner

	sinput := strings.NewReader(yylex.line)

	s.Init(sinput)
	s.Mode = scanner.ScanIdents | scanner.ScanInts
	s.IsIdentRune = basicIdent
	s.Error = dummyScannerError

	for {
		tok := s.Scan()
		if tok == scanner.EOF {
			return
		}

		saveToken(yylex, token{kind: tok, text: s.TokenText()})
	}
}

func saveToken(yylex *Lexer, tok token) {

	yylex.tokens = append(yylex.tokens, tok)
}

//
// Hand back the next token and consume it.  Past the end of the
// line, we keep returning an EOF token
//

func (yylex *Lexer) nextToken() token {

	t := yylex.peekToken()

	if t.kind != scanner.EOF {
		yylex.idx++
	}

	return t
}

func (yylex *Lexer) peekToken() token {

	if yylex.idx >= len(yylex.tokens) {
		return token{kind: scanner.EOF}
	}

	return yylex.tokens[yylex.idx]
}

func (yylex *Lexer) hasMoreTokens() bool {

	return yylex.idx < len(yylex.tokens)
}

//
// The scanner reports things like malformed octal literals through
// this hook.  We don't care: the token text still comes back, and
// strconv will reject it later if it really is garbage
//

func dummyScannerError(s *scanner.Scanner, msg string) {
}

//
// Ident predicate routine for text/scanner.  Only ASCII letters,
// digits and underscore, and no leading digit (a leading digit run
// is an integer literal)
//

func basicIdent(ch rune, pos int) bool {

	switch {
	case ch == '_':
		return true

	case ch >= 'A' && ch <= 'Z', ch >= 'a' && ch <= 'z':
		return true

	case ch >= '0' && ch <= '9':
		return pos > 0
	}

	return false
}

func isKeyword(txt string) bool {

	_, ok := keywordMap[txt]

	return ok
}

//
// A legal variable name is a non-empty run of letters, digits and
// underscores that isn't a reserved word
//

func isValidVariable(txt string) bool {

	if len(txt) == 0 {
		return false
	}

	for i := 0; i < len(txt); i++ {
		if !basicIdent(rune(txt[i]), 1) {
			return false
		}
	}

	return !isKeyword(txt)
}

func getTokenName(tok int) string {

	name, ok := tokenNames[tok]
	basicAssert(ok, "No such token")

	return name
}
