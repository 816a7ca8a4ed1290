// Package analysis computes statistics over move histories.
package analysis

import (
	"sort"

	"github.com/SeamusWaldron/rubik/pkg/types"
)

// NGram represents a repeated move sequence.
type NGram struct {
	N           int      `json:"n"`
	Sequence    []string `json:"sequence"`
	Count       int      `json:"count"`
	Occurrences []int    `json:"occurrences,omitempty"` // start indexes, at most 10
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// token packs a move into one comparable value.
func token(m types.Move) uint64 {
	return uint64(m.Axis)<<40 | uint64(uint32(m.Slice))<<1 | uint64(m.Orientation)
}

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint64
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   1_000_003,
		n:      n,
		window: make([]uint64, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll adds a token, dropping the oldest once the window is full.
func (rh *RollingHash) Roll(tok uint64) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, tok)
		rh.hash = rh.hash*rh.base + tok
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-old*rh.pow)*rh.base + tok

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = tok
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint64 {
	return append([]uint64(nil), rh.window...)
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens      []uint64
	first       int
	count       int
	occurrences []int
}

// MineNGrams finds the top-K most frequent repeated n-grams for each n in
// [minN, maxN]. Sequences seen only once are not reported.
func MineNGrams(moves []types.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	for n := max(minN, 1); n <= maxN && n <= len(moves); n++ {
		if ngrams := mineNGramsForN(moves, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

func mineNGramsForN(moves []types.Move, n, topK int) []NGram {
	// Buckets per hash handle collisions.
	counts := make(map[uint64][]*ngramEntry)
	rh := NewRollingHash(n)

	for i, m := range moves {
		rh.Roll(token(m))
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		window := rh.Window()
		bucket := counts[rh.Hash()]

		var entry *ngramEntry
		for _, e := range bucket {
			if tokensEqual(e.tokens, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &ngramEntry{tokens: window, first: start}
			counts[rh.Hash()] = append(bucket, entry)
		}

		entry.count++
		if len(entry.occurrences) < 10 {
			entry.occurrences = append(entry.occurrences, start)
		}
	}

	var entries []*ngramEntry
	for _, bucket := range counts {
		for _, e := range bucket {
			if e.count >= 2 {
				entries = append(entries, e)
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].first < entries[j].first
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, e := range entries {
		sequence := make([]string, n)
		for j := range sequence {
			sequence[j] = moves[e.first+j].Notation()
		}
		result[i] = NGram{
			N:           n,
			Sequence:    sequence,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}

	return result
}

func tokensEqual(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
