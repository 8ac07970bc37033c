package simpletype

import (
	"iter"
	"strconv"
	"strings"
)

const (
	// counterSeed is the value every counter starts above.
	counterSeed = 42
	// maxYields caps how many fresh values one Create call synthesizes.
	maxYields = 5
	// maxAttempts stops synthesis when the valid range is exhausted.
	maxAttempts = 1_000_000
)

type cursorKey struct {
	kind  Kind
	valid bool
}

// Allocator hands out replacement literals for one generation run. It owns
// the issued-value sets of the counter kinds and the round-robin cursors of
// the curated lists. An Allocator is not safe for concurrent use; parallel
// runs each take their own.
type Allocator struct {
	issued  map[Kind]map[int64]struct{}
	highest map[Kind]int64
	cursors map[cursorKey]int
}

func NewAllocator() *Allocator {
	a := &Allocator{}
	a.Reset()
	return a
}

// Reset forgets every issued value and rewinds all cursors.
func (a *Allocator) Reset() {
	a.issued = make(map[Kind]map[int64]struct{})
	a.highest = make(map[Kind]int64)
	a.cursors = make(map[cursorKey]int)
}

// Issued reports whether n was already handed out for kind.
func (a *Allocator) Issued(kind Kind, n int64) bool {
	if n == counterSeed {
		return true
	}
	_, ok := a.issued[kind][n]
	return ok
}

func (a *Allocator) markIssued(kind Kind, n int64) {
	set, ok := a.issued[kind]
	if !ok {
		set = make(map[int64]struct{})
		a.issued[kind] = set
	}
	set[n] = struct{}{}
	if n > a.top(kind) {
		a.highest[kind] = n
	}
}

func (a *Allocator) top(kind Kind) int64 {
	if n, ok := a.highest[kind]; ok {
		return n
	}
	return counterSeed
}

// Create yields replacement literals for kind. Invalid literals always come
// from the curated list. Valid literals of counter kinds are synthesized
// above the highest value issued so far; all other kinds rotate through
// their curated valid list. The sequence may be empty.
func (a *Allocator) Create(kind Kind, valid bool) iter.Seq[Value] {
	def := Lookup(kind)
	if !valid {
		if kind.IsCounter() {
			return literals(kind, def.Invalid)
		}
		return a.roundRobin(kind, false, def.Invalid)
	}

	switch def.Class {
	case ClassCounter:
		return a.counter(def)
	case ClassMultiCounter:
		return a.multiCounter(def)
	default:
		return a.roundRobin(kind, true, def.Valid)
	}
}

// NextValid returns the next valid literal for kind.
func (a *Allocator) NextValid(kind Kind) (Value, bool) {
	for v := range a.Create(kind, true) {
		return v, true
	}
	return Value{}, false
}

func literals(kind Kind, raws []string) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, raw := range raws {
			if !yield(New(kind, raw)) {
				return
			}
		}
	}
}

func (a *Allocator) roundRobin(kind Kind, valid bool, raws []string) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if len(raws) == 0 {
			return
		}
		key := cursorKey{kind: kind, valid: valid}
		for range len(raws) {
			cur := a.cursors[key] % len(raws)
			a.cursors[key] = (cur + 1) % len(raws)
			if !yield(New(kind, raws[cur])) {
				return
			}
		}
	}
}

func (a *Allocator) counter(def Definition) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		n := a.top(def.Kind)
		yields := 0
		for attempts := 0; yields < maxYields && attempts < maxAttempts; attempts++ {
			n++
			raw := strconv.FormatInt(n, 10)
			if a.Issued(def.Kind, n) || !def.Validate(raw) {
				continue
			}
			a.markIssued(def.Kind, n)
			yields++
			if !yield(New(def.Kind, raw)) {
				return
			}
		}
	}
}

// multiCounter synthesizes runs like "42 43 44". Runs are not checked
// against values issued earlier, so consecutive calls may overlap in their
// first element.
func (a *Allocator) multiCounter(def Definition) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		i := a.top(def.Kind)
		yields := 0
		for attempts := 0; yields < maxYields && attempts < maxAttempts; attempts++ {
			run := numberRun(i)
			i = run[len(run)-1] + 1

			parts := make([]string, len(run))
			for j, n := range run {
				parts[j] = strconv.FormatInt(n, 10)
			}
			raw := strings.Join(parts, " ")
			if !def.Validate(raw) {
				continue
			}
			for _, n := range run {
				a.markIssued(def.Kind, n)
			}
			yields++
			if !yield(New(def.Kind, raw)) {
				return
			}
		}
	}
}

// numberRun returns i, i+step, ... below i+(i%5)+1 with step (i%2)+1.
func numberRun(i int64) []int64 {
	end := i + i%5 + 1
	step := i%2 + 1
	var run []int64
	for n := i; n < end; n += step {
		run = append(run, n)
	}
	return run
}
