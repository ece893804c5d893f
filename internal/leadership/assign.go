// Package leadership assigns two staff leaders to each class under a
// fairness constraint: no staff member leads more than two classes while
// enough unburdened staff remain.
package leadership

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/conn-castle/mockfactory/internal/messages"
)

// maxLoad is the fairness cap on class assignments per staff member.
const maxLoad = 2

// ErrEmptyRoster is returned when the staff roster carries no entries.
var ErrEmptyRoster = errors.New(messages.LeadersNoStaff)

// Fallback describes how far a selection had to relax the fairness
// constraint.
type Fallback int

const (
	// FallbackNone means two distinct staff were taken from the
	// under-loaded pool.
	FallbackNone Fallback = iota
	// FallbackWidened means the under-loaded pool was exhausted and the
	// pair was drawn from the full roster.
	FallbackWidened
	// FallbackReplacement means the roster holds fewer than two distinct
	// staff and the pair was drawn with replacement; both leaders may be
	// the same person. Kept as-is pending product clarification.
	FallbackReplacement
)

// Assignment is one committed leader pair for a class.
type Assignment struct {
	StaffIDs [2]int64
	Fallback Fallback
}

// Assigner selects leader pairs and tracks per-staff load for the
// duration of one run. It is not safe for concurrent use and is owned by
// a single orchestration run.
type Assigner struct {
	rng   *rand.Rand
	staff []int64
	load  map[int64]int
}

// NewAssigner builds an assigner over the staff roster. The random
// source is injected so tests and reruns can fix outcomes.
func NewAssigner(staffIDs []int64, rng *rand.Rand) (*Assigner, error) {
	if len(staffIDs) == 0 {
		return nil, ErrEmptyRoster
	}
	staff := append([]int64(nil), staffIDs...)
	load := make(map[int64]int, len(staff))
	for _, id := range staff {
		load[id] = 0
	}
	return &Assigner{rng: rng, staff: staff, load: load}, nil
}

// Next selects the leader pair for the next class and commits it to the
// load tally.
func (a *Assigner) Next() Assignment {
	pool := a.underLoaded()
	fallback := FallbackNone
	if len(pool) < 2 {
		pool = a.staff
		fallback = FallbackWidened
	}

	var pair [2]int64
	if distinctCount(pool) >= 2 {
		pair = a.sampleDistinct(pool)
	} else {
		// Fewer than two distinct staff exist at all: draw with
		// replacement from the full roster.
		fallback = FallbackReplacement
		pair[0] = a.staff[a.rng.Intn(len(a.staff))]
		pair[1] = a.staff[a.rng.Intn(len(a.staff))]
	}

	a.load[pair[0]]++
	a.load[pair[1]]++
	return Assignment{StaffIDs: pair, Fallback: fallback}
}

// Load returns the committed assignment count for a staff member.
func (a *Assigner) Load(staffID int64) int {
	return a.load[staffID]
}

// Histogram returns how many staff members carry each load value, as
// sorted (load, staffCount) pairs.
func (a *Assigner) Histogram() []HistogramBucket {
	counts := make(map[int]int)
	for _, id := range a.staff {
		counts[a.load[id]]++
	}
	buckets := make([]HistogramBucket, 0, len(counts))
	for load, staff := range counts {
		buckets = append(buckets, HistogramBucket{Load: load, Staff: staff})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Load < buckets[j].Load })
	return buckets
}

// HistogramBucket is one row of the terminal load report.
type HistogramBucket struct {
	Load  int
	Staff int
}

// underLoaded returns the staff still below the fairness cap, in roster
// order so selection is reproducible under a fixed random source.
func (a *Assigner) underLoaded() []int64 {
	pool := make([]int64, 0, len(a.staff))
	for _, id := range a.staff {
		if a.load[id] < maxLoad {
			pool = append(pool, id)
		}
	}
	return pool
}

// sampleDistinct draws two distinct staff ids uniformly from the pool.
func (a *Assigner) sampleDistinct(pool []int64) [2]int64 {
	first := a.rng.Intn(len(pool))
	second := a.rng.Intn(len(pool) - 1)
	if second >= first {
		second++
	}
	return [2]int64{pool[first], pool[second]}
}

// distinctCount counts distinct ids in the pool. Rosters normally hold
// unique ids, but the selection must not rely on that.
func distinctCount(pool []int64) int {
	seen := make(map[int64]struct{}, len(pool))
	for _, id := range pool {
		seen[id] = struct{}{}
	}
	return len(seen)
}
