// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primary

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/dualindex/record"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// one pending node of the drawing
type frame struct {
	h      record.Handle
	prefix string
	br     branch
	depth  int
}

// indent below a node, the bar continues on the side facing the parent
func indent(bar bool) string {
	if bar {
		return "|      "
	}
	return "       "
}

// Print - display an ASCII graphic representation of the tree
// returns the maximum depth of the tree
//
// right sub-trees are drawn above their node, left below; the walk
// uses an explicit stack so a list shaped tree can be drawn
func (tree *Tree) Print(w io.Writer) int {
	maxDepth := 0
	stack := make([]frame, 0, 32)
	f := frame{h: tree.root, br: root, depth: 1}
	for {
		for !f.h.IsNil() {
			stack = append(stack, f)
			f = frame{
				h:      tree.nodes[f.h].right,
				prefix: f.prefix + indent(left == f.br),
				br:     right,
				depth:  f.depth + 1,
			}
		}

		n := len(stack)
		if 0 == n {
			return maxDepth
		}
		f = stack[n-1]
		stack = stack[:n-1]

		if f.depth > maxDepth {
			maxDepth = f.depth
		}
		switch f.br {
		case root:
			fmt.Fprintf(w, "%s|------+ ", f.prefix)
		case left:
			fmt.Fprintf(w, "%s\\------+ ", f.prefix)
		case right:
			fmt.Fprintf(w, "%s/------+ ", f.prefix)
		}
		fmt.Fprintf(w, "%d %v\n", tree.nodes[f.h].key, f.h)

		f = frame{
			h:      tree.nodes[f.h].left,
			prefix: f.prefix + indent(right == f.br),
			br:     left,
			depth:  f.depth + 1,
		}
	}
}
