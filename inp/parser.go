// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// Block is one parsed "tag: value;" / "tag { ... }" brace scope. The three
// input files (settings, elements, nodes) all parse to the same shape: a
// flat map of scalar fields plus zero or more nested (optionally tagged)
// child blocks, recursively (spec §6 "Input: three plain-text files")
type Block struct {
	Tag    string
	Line   int
	Fields map[string]string
	Kids   []*Block
}

// field returns a block's field value and whether it was set
func (b *Block) field(name string) (string, bool) {
	v, ok := b.Fields[name]
	return v, ok
}

// Parse lexes and parses src into the implicit top-level Block
func Parse(src string) (*Block, error) {
	lx := newLexer(src)
	return parseBody(lx, "")
}

// parseBody reads statements until a matching '}' or EOF. tag is the
// identifier that preceded the '{' opening this block, "" for the
// implicit top-level block or an anonymous nested one
func parseBody(lx *lexer, tag string) (*Block, error) {
	blk := &Block{Tag: tag, Fields: map[string]string{}}
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokEOF, tokRBrace:
			return blk, nil
		case tokLBrace:
			child, err := parseBody(lx, "")
			if err != nil {
				return nil, err
			}
			blk.Kids = append(blk.Kids, child)
		case tokIdent:
			ident := tok.text
			nxt, err := lx.next()
			if err != nil {
				return nil, err
			}
			switch nxt.kind {
			case tokLBrace:
				child, err := parseBody(lx, ident)
				if err != nil {
					return nil, err
				}
				blk.Kids = append(blk.Kids, child)
			case tokColon:
				valTok, err := lx.next()
				if err != nil {
					return nil, err
				}
				if valTok.kind != tokIdent {
					return nil, chk.Err("parse: line %d: expected value after %q", tok.line, ident)
				}
				semi, err := lx.next()
				if err != nil {
					return nil, err
				}
				if semi.kind != tokSemi {
					return nil, chk.Err("parse: line %d: missing ';' after %q: %q", tok.line, ident, valTok.text)
				}
				if _, dup := blk.Fields[ident]; dup {
					return nil, chk.Err("parse: line %d: field %q assigned twice", tok.line, ident)
				}
				blk.Fields[ident] = valTok.text
			default:
				return nil, chk.Err("parse: line %d: expected ':' or '{' after %q", tok.line, ident)
			}
		default:
			return nil, chk.Err("parse: line %d: unexpected token", tok.line)
		}
	}
}
