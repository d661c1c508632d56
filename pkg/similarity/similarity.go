// Package similarity implements the Ratcliff/Obershelp sequence-matching
// ratio used throughout the scoring engine as the fuzzy string signal.
//
// The ratio is 2*M / (len(a)+len(b)) where M is the total length of matched
// characters found by recursively locating the longest common block and
// matching the pieces to its left and right. This mirrors the classic
// difflib SequenceMatcher behavior (without junk heuristics), so thresholds
// such as 0.7 for single-answer promotion and 0.85 for duplicate detection
// keep their calibrated meaning.
package similarity

// Ratio returns a measure of the sequences' similarity in [0, 1].
// 1.0 means the strings are identical; 0.0 means nothing in common.
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	matched := matchingBlocksTotal([]byte(a), []byte(b))
	return 2.0 * float64(matched) / float64(len(a)+len(b))
}

// matchingBlocksTotal sums the lengths of all matching blocks between a and b.
func matchingBlocksTotal(a, b []byte) int {
	alo, ahi := 0, len(a)
	blo, bhi := 0, len(b)
	return matchRecursive(a, b, alo, ahi, blo, bhi)
}

func matchRecursive(a, b []byte, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	total := size
	total += matchRecursive(a, b, alo, i, blo, j)
	total += matchRecursive(a, b, i+size, ahi, j+size, bhi)
	return total
}

// longestMatch finds the longest matching block in a[alo:ahi] and b[blo:bhi].
// Ties are broken by the earliest block in a, then in b, matching the
// reference algorithm so recursion splits identically.
func longestMatch(a, b []byte, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	// b2j: positions of each byte value in b[blo:bhi]
	b2j := make(map[byte][]int, bhi-blo)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj, bestsize = alo, blo, 0
	// j2len[j] = length of longest match ending at a[i-1], b[j-1]
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}
