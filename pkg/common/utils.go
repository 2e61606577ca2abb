package common

import "math/bits"

func Min(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

func SquareMask(sq int) uint64 {
	return uint64(1) << uint(sq)
}

func FirstOne(b uint64) int {
	return bits.TrailingZeros64(b)
}

func PopCount(b uint64) int {
	return bits.OnesCount64(b)
}

func MoreThanOne(b uint64) bool {
	return b&(b-1) != 0
}
