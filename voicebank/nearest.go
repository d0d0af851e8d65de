package voicebank

import (
	"sort"
	"strings"
)

// LabelEditDistance computes the Levenshtein distance between two labels
// split into space-separated parts ("- g" vs "g" is 1).
func LabelEditDistance(a, b string) int {
	return partsEditDistance(strings.Fields(a), strings.Fields(b))
}

func partsEditDistance(a, b []string) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Use single-row DP to save memory.
	prev := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur := make([]int, lb+1)
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev = cur
	}
	return prev[lb]
}

// Nearest returns up to n aliases closest to label, nearest first. Ties are
// broken alphabetically. label itself is never returned.
func (c *Catalog) Nearest(label string, n int) []string {
	if c == nil || n <= 0 {
		return nil
	}
	type scored struct {
		alias string
		dist  int
	}
	want := strings.Fields(label)
	var cands []scored
	for a := range c.aliases {
		if a == label {
			continue
		}
		cands = append(cands, scored{a, partsEditDistance(want, strings.Fields(a))})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].alias < cands[j].alias
	})
	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]string, len(cands))
	for i, s := range cands {
		out[i] = s.alias
	}
	return out
}
