package pattern

import (
	"sort"

	"git.thinkinpower.net/cardkit/mod"
)

// Candidate is a brand whose prefixes are compatible with a digit string.
// Strength is the width of the matching prefix once enough digits are
// known to confirm it, zero while the match is still speculative.
type Candidate struct {
	Brand    mod.Brand
	Format   mod.CardFormat
	Strength int
}

// Match returns the brands a digit string may belong to. When every
// candidate is confirmed only the strongest is returned, otherwise all of
// them, strongest first. Empty input matches nothing.
func Match(digits string) []Candidate {
	if digits == "" {
		return nil
	}
	var (
		candidates []Candidate
		resolved   = 0
	)
	for _, bp := range brandPatterns {
		for _, p := range bp.prefixes {
			if !p.matches(digits) {
				continue
			}
			c := Candidate{Brand: bp.brand, Format: cloneFormat(bp.format)}
			if width := len(p.min); len(digits) >= width {
				c.Strength = width
				resolved++
			}
			candidates = append(candidates, c)
			break
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	if resolved == len(candidates) {
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.Strength > best.Strength {
				best = c
			}
		}
		return []Candidate{best}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Strength > candidates[j].Strength
	})
	return candidates
}

// Lookup returns the format of a brand.
func Lookup(brand mod.Brand) (mod.CardFormat, bool) {
	for _, bp := range brandPatterns {
		if bp.brand == brand {
			return cloneFormat(bp.format), true
		}
	}
	return mod.CardFormat{}, false
}

// Brands lists every known brand in matching order.
func Brands() []mod.Brand {
	result := make([]mod.Brand, 0, len(brandPatterns))
	for _, bp := range brandPatterns {
		result = append(result, bp.brand)
	}
	return result
}

func (p prefix) matches(digits string) bool {
	if p.max == "" {
		n := len(p.min)
		if len(digits) < n {
			n = len(digits)
		}
		return p.min[:n] == digits[:n]
	}

	head := digits
	if len(head) > len(p.min) {
		head = head[:len(p.min)]
	}
	// equal width digit strings compare like the numbers they spell
	return head >= p.min[:len(head)] && head <= p.max[:len(head)]
}

func cloneFormat(f mod.CardFormat) mod.CardFormat {
	return mod.CardFormat{
		Gaps:    append([]int(nil), f.Gaps...),
		Lengths: append([]int(nil), f.Lengths...),
		Code:    f.Code,
	}
}
