// Package vlc builds variable-length-code decode tables from (length, code)
// arrays and decodes symbols from a bitstream.
//
// Tables are constructed once, at package init of the data that owns them, and
// are immutable afterwards, so sharing them across decoder instances is safe
// without further synchronization.
package vlc

import (
	"fmt"

	"github.com/llehouerou/go-wmapro/internal/bits"
)

// primaryBits is the width of the first-level lookup. Codes no longer than
// this resolve with a single peek; longer codes fall back to a tree walk.
const primaryBits = 9

type primaryEntry struct {
	sym int16
	n   uint8 // code length in bits, 0 = not resolvable at this level
}

type node struct {
	child [2]int32 // next node index, 0 = absent
	sym   int32    // leaf symbol, -1 on interior nodes
}

// Table is an immutable VLC decode table.
type Table struct {
	primary [1 << primaryBits]primaryEntry
	nodes   []node
	maxLen  uint8
}

// New builds a decode table from per-symbol code lengths and MSB-first code
// values. It panics if the inputs do not form a prefix code; the code tables
// compiled into the binary are validated by tests.
func New(lengths []uint8, codes []uint32) *Table {
	if len(lengths) != len(codes) {
		panic(fmt.Sprintf("vlc: %d lengths but %d codes", len(lengths), len(codes)))
	}

	t := &Table{nodes: make([]node, 1, 2*len(codes))}
	t.nodes[0] = node{sym: -1}

	for sym, l := range lengths {
		if l == 0 {
			panic(fmt.Sprintf("vlc: symbol %d has zero length", sym))
		}
		if l > t.maxLen {
			t.maxLen = l
		}
		t.insert(sym, l, codes[sym])

		if l <= primaryBits {
			// Fill every suffix the code is a prefix of.
			base := codes[sym] << (primaryBits - uint(l))
			for i := uint32(0); i < 1<<(primaryBits-uint(l)); i++ {
				e := &t.primary[base|i]
				if e.n != 0 {
					panic(fmt.Sprintf("vlc: symbol %d overlaps an earlier code", sym))
				}
				*e = primaryEntry{sym: int16(sym), n: l}
			}
		}
	}
	return t
}

func (t *Table) insert(sym int, length uint8, code uint32) {
	cur := int32(0)
	for i := int(length) - 1; i >= 0; i-- {
		b := code >> uint(i) & 1
		if t.nodes[cur].sym >= 0 {
			panic(fmt.Sprintf("vlc: symbol %d extends a shorter code", sym))
		}
		next := t.nodes[cur].child[b]
		if next == 0 {
			t.nodes = append(t.nodes, node{sym: -1})
			next = int32(len(t.nodes) - 1)
			t.nodes[cur].child[b] = next
		}
		cur = next
	}
	if t.nodes[cur].sym >= 0 || t.nodes[cur].child[0] != 0 || t.nodes[cur].child[1] != 0 {
		panic(fmt.Sprintf("vlc: symbol %d duplicates or prefixes another code", sym))
	}
	t.nodes[cur].sym = int32(sym)
}

// Decode reads one codeword from r and returns its symbol, or -1 if the
// stream does not continue any valid code.
func (t *Table) Decode(r *bits.Reader) int {
	if e := t.primary[r.ShowBits(primaryBits)]; e.n != 0 {
		r.SkipBits(int(e.n))
		return int(e.sym)
	}

	cur := int32(0)
	for i := uint8(0); i <= t.maxLen; i++ {
		cur = t.nodes[cur].child[r.Get1()]
		if cur == 0 {
			return -1
		}
		if s := t.nodes[cur].sym; s >= 0 {
			return int(s)
		}
	}
	return -1
}
