package services

// SimilarityRatio computes a character-based sequence similarity in [0, 1]:
// twice the total length of matching blocks divided by the combined length
// of both strings. Matching blocks are found by repeatedly taking the
// longest common substring and recursing on the pieces to its left and
// right, which keeps the measure order-sensitive and deterministic.
func SimilarityRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	matched := matchingBlockTotal([]rune(a), []rune(b))
	return 2.0 * float64(matched) / float64(len([]rune(a))+len([]rune(b)))
}

func matchingBlockTotal(a, b []rune) int {
	aStart, bStart, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}

	total := size
	total += matchingBlockTotal(a[:aStart], b[:bStart])
	total += matchingBlockTotal(a[aStart+size:], b[bStart+size:])
	return total
}

// longestMatch finds the longest common substring of a and b, preferring the
// earliest occurrence on ties so results are stable.
func longestMatch(a, b []rune) (aStart, bStart, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// lengths[j] holds the match length ending at a[i-1], b[j-1] for the
	// previous row of the DP table.
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := lengths[j]
			if a[i-1] == b[j-1] {
				lengths[j] = prev + 1
				if lengths[j] > size {
					size = lengths[j]
					aStart = i - size
					bStart = j - size
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return aStart, bStart, size
}
