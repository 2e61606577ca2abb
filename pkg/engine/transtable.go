package engine

import (
	"fmt"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

const (
	ReplaceAlways         = "always"
	ReplaceDepthPreferred = "depth"
)

func roundPowerOfTwo(size int) int {
	var x = 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

//16 bytes
type transEntry struct {
	key      uint64
	moveDate uint32
	score    int16
	depth    int8
	bound    uint8
}

func (entry *transEntry) Move() Move {
	return Move(entry.moveDate & 0x1fffff)
}

func (entry *transEntry) Date() uint16 {
	return uint16(entry.moveDate >> 21)
}

func (entry *transEntry) SetMoveAndDate(move Move, date uint16) {
	entry.moveDate = uint32(move) + uint32(date)<<21
}

// replaceFunc decides whether a store may overwrite the occupied slot.
type replaceFunc func(entry *transEntry, key uint64, depth int, date uint16) bool

func replaceAlways(entry *transEntry, key uint64, depth int, date uint16) bool {
	return true
}

func replaceDepthPreferred(entry *transEntry, key uint64, depth int, date uint16) bool {
	return entry.bound == 0 ||
		entry.key == key ||
		entry.Date() != date ||
		depth >= int(entry.depth)
}

func replacePolicy(name string) (replaceFunc, error) {
	switch name {
	case "", ReplaceAlways:
		return replaceAlways, nil
	case ReplaceDepthPreferred:
		return replaceDepthPreferred, nil
	}
	return nil, fmt.Errorf("unknown replacement policy %q", name)
}

// transTable is a direct-mapped cache of search results indexed by the low bits of the key.
type transTable struct {
	megabytes int
	policy    string
	replace   replaceFunc
	entries   []transEntry
	date      uint16
	mask      uint64
}

func newTransTable(megabytes int, policy string) (*transTable, error) {
	var replace, err = replacePolicy(policy)
	if err != nil {
		return nil, err
	}
	var size = roundPowerOfTwo(1024 * 1024 * megabytes / 16)
	return &transTable{
		megabytes: megabytes,
		policy:    policy,
		replace:   replace,
		entries:   make([]transEntry, size),
		mask:      uint64(size - 1),
	}, nil
}

func (tt *transTable) Size() int {
	return tt.megabytes
}

func (tt *transTable) IncDate() {
	tt.date = (tt.date + 1) & 0x7ff
}

func (tt *transTable) Clear() {
	tt.date = 0
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

func (tt *transTable) Read(key uint64) (depth, score, bound int, move Move, ok bool) {
	var entry = &tt.entries[key&tt.mask]
	if entry.bound == 0 || entry.key != key {
		return
	}
	return int(entry.depth), int(entry.score), int(entry.bound), entry.Move(), true
}

func (tt *transTable) Update(key uint64, depth, score, bound int, move Move) {
	var entry = &tt.entries[key&tt.mask]
	if !tt.replace(entry, key, depth, tt.date) {
		return
	}
	entry.key = key
	entry.score = int16(score)
	entry.depth = int8(depth)
	entry.bound = uint8(bound)
	entry.SetMoveAndDate(move, tt.date)
}
