package solver

// factorials of 0..12; table sizes never need more.
var factorials = [...]int{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800, 39916800, 479001600}

// rankPermutation computes the Lehmer-code rank of a permutation of
// 0..n-1, in [0, n!). Complexity: O(n²), with n <= 9 in practice.
func rankPermutation(perm []int) int {
	n := len(perm)
	rank := 0
	for i := 0; i < n; i++ {
		smaller := 0
		for j := i + 1; j < n; j++ {
			if perm[j] < perm[i] {
				smaller++
			}
		}
		rank += smaller * factorials[n-1-i]
	}
	return rank
}

// unrankPermutation writes the permutation of 0..n-1 with the given
// Lehmer-code rank into out, which must have length n.
func unrankPermutation(rank int, out []int) {
	n := len(out)
	var avail [12]int
	for i := 0; i < n; i++ {
		avail[i] = i
	}
	for i := 0; i < n; i++ {
		f := factorials[n-1-i]
		k := rank / f
		rank %= f
		out[i] = avail[k]
		copy(avail[k:], avail[k+1:n-i])
	}
}
