// Package address implements hierarchical node addresses for the simulated
// network: network -> hub -> AP -> RT. An address names one node by its index
// path from the top of the tree, independent of the node's numeric identity.
//
// Address is a small comparable value type, so it works as a map key and can
// be passed around freely. Addresses are built top-down; a deeper level can
// only be attached to an address of the level directly above it, which makes
// invalid hierarchies (an RT without an AP, say) unrepresentable.
package address

import (
	"fmt"
	"strings"
)

// Level is the depth of an address in the topology tree.
type Level int

const (
	LevelNetwork Level = iota
	LevelHub
	LevelAP
	LevelRT
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelNetwork:
		return "network"
	case LevelHub:
		return "hub"
	case LevelAP:
		return "ap"
	case LevelRT:
		return "rt"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

var levelLetters = [4]byte{'N', 'H', 'A', 'R'}

// Address is the index path of a node from the top of the tree. The zero
// Address addresses nothing; IsZero reports that.
type Address struct {
	depth int
	index [4]int
}

// Network returns the address of a top-level network.
func Network(net int) Address {
	return Address{depth: 1, index: [4]int{net}}
}

// Hub returns the address of hub index under this network address.
// It panics when called on anything but a network address.
func (a Address) Hub(hub int) Address {
	return a.extend(LevelHub, hub)
}

// AP returns the address of AP index under this hub address.
// It panics when called on anything but a hub address.
func (a Address) AP(ap int) Address {
	return a.extend(LevelAP, ap)
}

// RT returns the address of RT index under this AP address.
// It panics when called on anything but an AP address.
func (a Address) RT(rt int) Address {
	return a.extend(LevelRT, rt)
}

func (a Address) extend(level Level, index int) Address {
	if a.depth != int(level) {
		panic(fmt.Sprintf("address: cannot attach %s index to %q", level, a.Tag()))
	}
	a.index[a.depth] = index
	a.depth++
	return a
}

// Level returns the address's level. Meaningless for the zero Address.
func (a Address) Level() Level {
	return Level(a.depth - 1)
}

// Index returns the node's index at its own level.
func (a Address) Index() int {
	if a.depth == 0 {
		return 0
	}
	return a.index[a.depth-1]
}

// Parent returns the address one level up, or false for a network-level or
// zero Address.
func (a Address) Parent() (Address, bool) {
	if a.depth <= 1 {
		return Address{}, false
	}
	a.depth--
	a.index[a.depth] = 0
	return a, true
}

// IsZero reports whether this is the zero Address.
func (a Address) IsZero() bool { return a.depth == 0 }

// Tag returns the compact display form, one letter plus a two-digit hex index
// per level: Network(1).Hub(0).AP(3).RT(10) -> "N01H00A03R0a".
func (a Address) Tag() string {
	var b strings.Builder
	for i := 0; i < a.depth; i++ {
		fmt.Fprintf(&b, "%c%02x", levelLetters[i], a.index[i])
	}
	return b.String()
}

// String returns Tag().
func (a Address) String() string { return a.Tag() }
