package bench

import "sync"

// Slot identifies one of the four metric categories tracked by a
// benchmark session.
type Slot int

// The four metric slots. The order here is the canonical reporting
// order; recording order is irrelevant.
const (
	AssignerMemory Slot = iota
	AssignerTime
	ProofMemory
	ProofTime
)

var slotNames = map[Slot]string{
	AssignerMemory: "assigner memory",
	AssignerTime:   "assigner time",
	ProofMemory:    "proof memory",
	ProofTime:      "proof time",
}

func (s Slot) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	return "unknown slot"
}

// allSlots lists every slot in canonical order.
var allSlots = []Slot{AssignerMemory, AssignerTime, ProofMemory, ProofTime}

// Unit labels a recorded measurement value.
type Unit string

const (
	// Gigabytes is decimal: byte counts are divided by 10^9, not 2^30.
	Gigabytes Unit = "GB"
	// Seconds is wall-clock elapsed time.
	Seconds Unit = "s"
)

// Measurement is a single recorded metric value.
type Measurement struct {
	Value float64
	Unit  Unit
}

// State holds the measurements collected so far in one benchmark
// session. Slots fill in whatever order the operator triggers them and
// the whole state is discarded when the process exits; there is no
// reset short of restarting the session.
//
// The engine is sequential, but State is mutex-guarded so it stays
// correct if a caller ever drives measurements from multiple
// goroutines.
type State struct {
	mu    sync.RWMutex
	slots map[Slot]Measurement
}

// NewState creates an empty benchmark state.
func NewState() *State {
	return &State{
		slots: make(map[Slot]Measurement, len(allSlots)),
	}
}

// Record stores a measurement. Re-recording a slot overwrites the
// previous value so a single measurement can be re-run; other slots are
// never touched.
func (s *State) Record(slot Slot, m Measurement) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[slot] = m
}

// Get returns the measurement for slot, if recorded.
func (s *State) Get(slot Slot) (Measurement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.slots[slot]
	return m, ok
}

// Snapshot returns a copy of the current slot mapping without mutating
// the state.
func (s *State) Snapshot() map[Slot]Measurement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[Slot]Measurement, len(s.slots))
	for slot, m := range s.slots {
		snapshot[slot] = m
	}

	return snapshot
}

// Missing returns the unpopulated slots in canonical order.
func (s *State) Missing() []Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	missing := make([]Slot, 0, len(allSlots))
	for _, slot := range allSlots {
		if _, ok := s.slots[slot]; !ok {
			missing = append(missing, slot)
		}
	}

	return missing
}
