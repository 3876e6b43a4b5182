package domain

// ReleaseTotals maps release keys to accumulated net EUR gains while
// preserving first-insertion order. Output sheets replay releases in the
// order they first appeared in the source sheet, not in sorted order, so a
// plain map is not enough.
type ReleaseTotals struct {
	keys   []ReleaseKey
	totals map[ReleaseKey]float64
}

// NewReleaseTotals returns an empty totals accumulator.
func NewReleaseTotals() *ReleaseTotals {
	return &ReleaseTotals{
		totals: make(map[ReleaseKey]float64),
	}
}

// Add accumulates gain for key. A key seen before keeps its position and
// its running sum grows; a new key is appended after all existing entries.
func (t *ReleaseTotals) Add(key ReleaseKey, gain float64) {
	if _, ok := t.totals[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.totals[key] += gain
}

// Get returns the accumulated gain for key.
func (t *ReleaseTotals) Get(key ReleaseKey) (float64, bool) {
	gain, ok := t.totals[key]
	return gain, ok
}

// Len returns the number of distinct releases.
func (t *ReleaseTotals) Len() int {
	return len(t.keys)
}

// Keys returns the release keys in first-insertion order. The returned
// slice is a copy.
func (t *ReleaseTotals) Keys() []ReleaseKey {
	keys := make([]ReleaseKey, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Merge folds other into t: gains for keys already present are summed in
// place, new keys are appended preserving other's order. Merging with an
// empty map leaves t unchanged. Per-key results are independent of merge
// order up to floating-point rounding.
func (t *ReleaseTotals) Merge(other *ReleaseTotals) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		t.Add(key, other.totals[key])
	}
}

// Total returns the sum of all accumulated gains.
func (t *ReleaseTotals) Total() float64 {
	var total float64
	for _, key := range t.keys {
		total += t.totals[key]
	}
	return total
}
