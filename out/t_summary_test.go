// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_writeSummary01(tst *testing.T) {

	chk.PrintTitle("writeSummary01: WriteSummary emits settings, node and element sections")

	net := smallNet(tst)
	if err := net.BuildLoops(); err != nil {
		tst.Fatalf("BuildLoops: %v", err)
	}
	path := tst.TempDir() + "/summary.txt"
	if err := WriteSummary(net, path); err != nil {
		tst.Fatalf("WriteSummary: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		tst.Fatalf("ReadFile: %v", err)
	}
	s := string(data)
	for _, want := range []string{"# settings", "# nodes", "# elements / links", "# fundamental loops", "# pseudo-loops"} {
		if !strings.Contains(s, want) {
			tst.Errorf("summary missing section %q", want)
		}
	}
}

func Test_writeSummary02(tst *testing.T) {

	chk.PrintTitle("writeSummary02: WriteSummary fails cleanly for an unwritable path")

	net := smallNet(tst)
	if err := WriteSummary(net, "/nonexistent/path/summary.txt"); err == nil {
		tst.Errorf("WriteSummary should fail for a path in a nonexistent directory")
	}
}
