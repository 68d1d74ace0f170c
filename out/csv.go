// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the transient solver's sampling output: five
// per-element CSV traces plus the end-of-run text summary (spec §6
// "Output"), and an optional diagnostic plot.
package out

import (
	"os"

	"github.com/Milover/HydNet/network"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// elementFiles holds the five open CSV streams for one element
type elementFiles struct {
	v, h, p, f, alpha *os.File
}

// Writer implements transient.Sampler, writing one row per sampled step to
// each of an element's five CSV files: el_<i>_v.csv, _H.csv, _p.csv, _f.csv,
// _alpha.csv — comma-separated per-mesh-node values followed by time
// (spec §6 "Output"). Streams are acquired at construction and released by
// Close on every exit path (spec §9 "Scoped resource acquisition")
type Writer struct {
	dir   string
	files map[int]*elementFiles
}

// NewWriter opens the five CSV files for every element of net under dir
func NewWriter(net *network.Network, dir string) (*Writer, error) {
	w := &Writer{dir: dir, files: make(map[int]*elementFiles)}
	for _, e := range net.Elements {
		ef, err := openElementFiles(dir, e.ID)
		if err != nil {
			w.Close()
			return nil, err
		}
		w.files[e.ID] = ef
	}
	return w, nil
}

func openElementFiles(dir string, id int) (*elementFiles, error) {
	open := func(suffix string) (*os.File, error) {
		path := io.Sf("%s/el_%d_%s.csv", dir, id, suffix)
		f, err := os.Create(path)
		if err != nil {
			return nil, chk.Err("output: cannot create %q: %v", path, err)
		}
		return f, nil
	}
	var ef elementFiles
	var err error
	if ef.v, err = open("v"); err != nil {
		return nil, err
	}
	if ef.h, err = open("H"); err != nil {
		return nil, err
	}
	if ef.p, err = open("p"); err != nil {
		return nil, err
	}
	if ef.f, err = open("f"); err != nil {
		return nil, err
	}
	if ef.alpha, err = open("alpha"); err != nil {
		return nil, err
	}
	return &ef, nil
}

// Sample writes one row of every mesh node's v/H/p/f/alpha to each
// element's CSV files, implementing transient.Sampler
func (w *Writer) Sample(net *network.Network, step int) error {
	for _, e := range net.Elements {
		ef := w.files[e.ID]
		var v, h, p, f, alpha string
		for _, n := range e.Mesh {
			v += io.Sf("%.8g,", n.Velocity)
			h += io.Sf("%.8g,", n.Head)
			p += io.Sf("%.8g,", n.Pressure)
			f += io.Sf("%.8g,", 0.5*(n.UpstreamFriction+n.DownstreamFriction))
			alpha += io.Sf("%.8g,", n.GasFraction)
		}
		t := io.Sf("%.8g\n", net.Time)
		if _, err := ef.v.WriteString(v + t); err != nil {
			return chk.Err("output: element %d: %v", e.ID, err)
		}
		if _, err := ef.h.WriteString(h + t); err != nil {
			return chk.Err("output: element %d: %v", e.ID, err)
		}
		if _, err := ef.p.WriteString(p + t); err != nil {
			return chk.Err("output: element %d: %v", e.ID, err)
		}
		if _, err := ef.f.WriteString(f + t); err != nil {
			return chk.Err("output: element %d: %v", e.ID, err)
		}
		if _, err := ef.alpha.WriteString(alpha + t); err != nil {
			return chk.Err("output: element %d: %v", e.ID, err)
		}
	}
	return nil
}

// Close releases every open CSV stream, ignoring already-nil handles so it
// is safe to call after a partially failed NewWriter
func (w *Writer) Close() error {
	var firstErr error
	closeOne := func(f *os.File) {
		if f == nil {
			return
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for _, ef := range w.files {
		closeOne(ef.v)
		closeOne(ef.h)
		closeOne(ef.p)
		closeOne(ef.f)
		closeOne(ef.alpha)
	}
	return firstErr
}
