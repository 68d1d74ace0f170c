// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// safeAtof wraps io.Atof (which panics on malformed input) and turns a bad
// numeric literal into a Parse error instead of an uncaught panic
func safeAtof(name, s string) (f float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("parse: field %q: invalid number %q: %v", name, s, r)
		}
	}()
	f = io.Atof(s)
	return
}

func safeAtoi(name, s string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("parse: field %q: invalid integer %q: %v", name, s, r)
		}
	}()
	n = io.Atoi(s)
	return
}

func safeAtob(name, s string) (v bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("parse: field %q: invalid boolean %q: %v", name, s, r)
		}
	}()
	v = io.Atob(s)
	return
}

// floatField reads a required or optional float field, returning def if
// absent and not required
func floatField(b *Block, name string, required bool, def float64) (float64, error) {
	s, ok := b.field(name)
	if !ok {
		if required {
			return 0, chk.Err("parse: missing required field %q", name)
		}
		return def, nil
	}
	return safeAtof(name, s)
}

func intField(b *Block, name string, required bool, def int) (int, error) {
	s, ok := b.field(name)
	if !ok {
		if required {
			return 0, chk.Err("parse: missing required field %q", name)
		}
		return def, nil
	}
	return safeAtoi(name, s)
}

func strField(b *Block, name string, required bool, def string) (string, error) {
	s, ok := b.field(name)
	if !ok {
		if required {
			return "", chk.Err("parse: missing required field %q", name)
		}
		return def, nil
	}
	return s, nil
}
