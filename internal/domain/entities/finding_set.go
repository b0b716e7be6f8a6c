package entities

// FindingSet accumulates the findings of every verifier for one hosting
// request. Insertion deduplicates on (severity, message) and keeps insertion
// order so rendering the same set twice yields identical output.
//
// Verifiers never write here directly; the check command merges each
// verifier's returned findings itself, so the set needs no locking.
type FindingSet struct {
	keys  map[string]struct{}
	items []Finding
}

// NewFindingSet creates an empty finding set.
func NewFindingSet() *FindingSet {
	return &FindingSet{keys: make(map[string]struct{})}
}

// Add inserts the finding unless an equal one is already present.
func (it *FindingSet) Add(finding Finding) {
	key := finding.key()
	if _, ok := it.keys[key]; ok {
		return
	}
	it.keys[key] = struct{}{}
	it.items = append(it.items, finding)
}

// AddAll inserts every finding in order.
func (it *FindingSet) AddAll(findings []Finding) {
	for _, finding := range findings {
		it.Add(finding)
	}
}

// Len returns the number of distinct findings collected so far.
func (it *FindingSet) Len() int {
	return len(it.items)
}

// Items returns the collected findings in insertion order.
func (it *FindingSet) Items() []Finding {
	result := make([]Finding, len(it.items))
	copy(result, it.items)
	return result
}
