package models

import (
	"encoding/json"
	"maps"
	"slices"
)

// Distribution counts how many trials produced each total.
// Iteration is always in ascending order of total.
type Distribution struct {
	counts map[int]int
	sum    int
}

// DistributionEntry is one row of a Distribution
type DistributionEntry struct {
	Total int `json:"total"`
	Count int `json:"count"`
}

// NewDistribution creates an empty distribution
func NewDistribution() *Distribution {
	return &Distribution{
		counts: make(map[int]int),
	}
}

// Add records one observation of total
func (d *Distribution) Add(total int) {
	d.AddN(total, 1)
}

// AddN records n observations of total. Non-positive n is ignored so that
// every key present has a count of at least one.
func (d *Distribution) AddN(total, n int) {
	if n <= 0 {
		return
	}
	if d.counts == nil {
		d.counts = make(map[int]int)
	}
	d.counts[total] += n
	d.sum += n
}

// Count returns the number of observations of total
func (d *Distribution) Count(total int) int {
	return d.counts[total]
}

// Totals returns the observed totals in ascending order
func (d *Distribution) Totals() []int {
	return slices.Sorted(maps.Keys(d.counts))
}

// Len returns the number of distinct totals observed
func (d *Distribution) Len() int {
	return len(d.counts)
}

// Sum returns the number of observations recorded
func (d *Distribution) Sum() int {
	return d.sum
}

// Each calls fn for every total in ascending order
func (d *Distribution) Each(fn func(total, count int)) {
	for _, total := range d.Totals() {
		fn(total, d.counts[total])
	}
}

// Entries returns the distribution as rows in ascending order
func (d *Distribution) Entries() []DistributionEntry {
	entries := make([]DistributionEntry, 0, len(d.counts))
	d.Each(func(total, count int) {
		entries = append(entries, DistributionEntry{Total: total, Count: count})
	})
	return entries
}

// Merge adds every count in other into d
func (d *Distribution) Merge(other *Distribution) {
	if other == nil {
		return
	}
	for total, count := range other.counts {
		d.AddN(total, count)
	}
}

// AtLeast returns the number of observations with a total of at least dc
func (d *Distribution) AtLeast(dc int) int {
	n := 0
	for total, count := range d.counts {
		if total >= dc {
			n += count
		}
	}
	return n
}

// Min returns the smallest observed total. ok is false when empty.
func (d *Distribution) Min() (int, bool) {
	if len(d.counts) == 0 {
		return 0, false
	}
	return slices.Min(slices.Collect(maps.Keys(d.counts))), true
}

// Max returns the largest observed total. ok is false when empty.
func (d *Distribution) Max() (int, bool) {
	if len(d.counts) == 0 {
		return 0, false
	}
	return slices.Max(slices.Collect(maps.Keys(d.counts))), true
}

// Mean returns the average observed total, or 0 when empty
func (d *Distribution) Mean() float64 {
	if d.sum == 0 {
		return 0
	}
	weighted := 0
	for total, count := range d.counts {
		weighted += total * count
	}
	return float64(weighted) / float64(d.sum)
}

// MarshalJSON encodes the distribution as an ascending list of rows
func (d *Distribution) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Entries())
}
