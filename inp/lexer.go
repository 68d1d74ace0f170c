// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the reader for the three plain-text input files
// (settings, elements, nodes): a small brace-delimited "tag: value;" DSL,
// and the builder that turns parsed records into a network.Network.
package inp

import (
	"strings"
	"unicode"

	"github.com/cpmech/gosl/chk"
)

// tokKind tags a lexer token
type tokKind int

const (
	tokIdent tokKind = iota
	tokColon
	tokSemi
	tokLBrace
	tokRBrace
	tokEOF
)

type token struct {
	kind tokKind
	text string
	line int
}

// lexer turns raw source text into a stream of tokens: identifiers
// (including quoted-free numeric/string values), ':' ';' '{' '}', and EOF.
// "//" introduces a line comment (spec §6 "Input semantics")
type lexer struct {
	src  []rune
	pos  int
	line int
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src), line: 1}
}

func (lx *lexer) peekByte() rune {
	if lx.pos >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos]
}

func (lx *lexer) skipSpaceAndComments() {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if c == '\n' {
			lx.line++
			lx.pos++
			continue
		}
		if unicode.IsSpace(c) {
			lx.pos++
			continue
		}
		if c == '/' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '/' {
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.pos++
			}
			continue
		}
		break
	}
}

// next returns the next token, or a tokEOF token at end of input
func (lx *lexer) next() (token, error) {
	lx.skipSpaceAndComments()
	if lx.pos >= len(lx.src) {
		return token{kind: tokEOF, line: lx.line}, nil
	}
	c := lx.src[lx.pos]
	ln := lx.line
	switch c {
	case '{':
		lx.pos++
		return token{tokLBrace, "{", ln}, nil
	case '}':
		lx.pos++
		return token{tokRBrace, "}", ln}, nil
	case ':':
		lx.pos++
		return token{tokColon, ":", ln}, nil
	case ';':
		lx.pos++
		return token{tokSemi, ";", ln}, nil
	}
	start := lx.pos
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if c == '{' || c == '}' || c == ':' || c == ';' || unicode.IsSpace(c) {
			break
		}
		if c == '/' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '/' {
			break
		}
		lx.pos++
	}
	if lx.pos == start {
		return token{}, chk.Err("parse: line %d: unexpected character %q", ln, string(c))
	}
	text := string(lx.src[start:lx.pos])
	return token{tokIdent, strings.ToLower(strings.TrimSpace(text)), ln}, nil
}
