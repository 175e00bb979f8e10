package feerange

import "fmt"

// Range is an annual fee interval in won.
//
// Both endpoints are inclusive: an amount n matches when min <= n <= max.
// The same closed policy applies to every fee tier of every record.
type Range struct {
	min int
	max int
}

// New validates and creates a closed fee Range.
func New(minFee, maxFee int) (Range, error) {
	if minFee < 0 {
		return Range{}, fmt.Errorf("min_fee must be non-negative, got %d", minFee)
	}
	if maxFee < minFee {
		return Range{}, fmt.Errorf("max_fee (%d) must not be less than min_fee (%d)", maxFee, minFee)
	}
	return Range{min: minFee, max: maxFee}, nil
}

// Min returns the inclusive lower bound.
func (r Range) Min() int { return r.min }

// Max returns the inclusive upper bound.
func (r Range) Max() int { return r.max }

// Contains reports whether amount lies within the closed interval.
func (r Range) Contains(amount int) bool {
	return amount >= r.min && amount <= r.max
}

// ContainsAny reports whether any of amounts lies within the range.
// An empty slice never matches.
func (r Range) ContainsAny(amounts []int) bool {
	for _, a := range amounts {
		if r.Contains(a) {
			return true
		}
	}
	return false
}
