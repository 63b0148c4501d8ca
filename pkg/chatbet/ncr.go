package chatbet

import (
	"regexp"
	"strconv"
)

// NCr is a parsed round-robin sizing token such as 4c2 or 5c3-.
// The trailing dash selects "at most" mode: every parlay size from 2 up to
// ParlaySize, rather than exactly ParlaySize.
type NCr struct {
	TotalLegs  int
	ParlaySize int
	IsAtMost   bool
}

var ncrPattern = regexp.MustCompile(`^(\d+)[cC](\d+)(-?)$`)

// parseNCr parses a round-robin sizing token. The shape must match
// exactly; comma-separated sizes, missing separators and stray characters
// are format errors, while count violations are range errors.
func parseNCr(input, token string) (NCr, error) {
	m := ncrPattern.FindStringSubmatch(token)
	if m == nil {
		return NCr{}, newError(KindNCrFormat, input, token,
			"round robin size must look like 4c2 or 5c3-")
	}

	totalLegs, err := strconv.Atoi(m[1])
	if err != nil {
		return NCr{}, newError(KindNCrFormat, input, token, "unreadable leg count")
	}
	parlaySize, err := strconv.Atoi(m[2])
	if err != nil {
		return NCr{}, newError(KindNCrFormat, input, token, "unreadable parlay size")
	}

	if totalLegs < 3 {
		return NCr{}, newError(KindNCrRange, input, token,
			"round robin needs at least 3 total legs, got %d", totalLegs)
	}
	if parlaySize < 2 {
		return NCr{}, newError(KindNCrRange, input, token,
			"round robin parlays need at least 2 legs each, got %d", parlaySize)
	}
	if parlaySize >= totalLegs {
		return NCr{}, newError(KindNCrRange, input, token,
			"parlay size %d must be smaller than total legs %d", parlaySize, totalLegs)
	}

	return NCr{TotalLegs: totalLegs, ParlaySize: parlaySize, IsAtMost: m[3] == "-"}, nil
}

// combinations returns every r-element index subset of [0, n) in
// lexicographic order.
func combinations(n, r int) [][]int {
	if r > n || r <= 0 {
		return nil
	}
	var result [][]int
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]int, r)
		copy(combo, idx)
		result = append(result, combo)

		// advance the rightmost index that still has room
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return result
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
