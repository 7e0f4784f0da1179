package utils

import "math"

func Clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// SaturatingAdd returns a+b, pinned to the int range instead of wrapping.
func SaturatingAdd(a, b int) int {
	sum := a + b
	if b > 0 && sum < a {
		return math.MaxInt
	}
	if b < 0 && sum > a {
		return math.MinInt
	}
	return sum
}
