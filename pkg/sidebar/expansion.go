package sidebar

import (
	"sync"

	"github.com/classhub/classhub/pkg/department"
	"github.com/classhub/classhub/pkg/eventbus"
)

// ExpansionMode controls how sections within one group expand.
type ExpansionMode int

const (
	// ModeIndependent lets every section toggle on its own.
	ModeIndependent ExpansionMode = iota
	// ModeAccordion keeps at most one section of the group open; expanding
	// one collapses its siblings.
	ModeAccordion
)

// Group declares an expansion policy over a set of section ids.
type Group struct {
	ID       string
	Mode     ExpansionMode
	Sections []string
}

// ExpansionState tracks which collapsible sections are open for one sidebar
// instance. It is UI-session state and is never persisted.
type ExpansionState struct {
	mu       sync.Mutex
	groups   []Group
	groupOf  map[string]string
	expanded map[string]bool
	forced   map[string]bool
}

// NewExpansionState builds the state from the group declarations and the
// sections' default-expanded flags.
func NewExpansionState(groups []Group, defaultExpanded []string) *ExpansionState {
	s := &ExpansionState{
		groups:   groups,
		groupOf:  make(map[string]string),
		expanded: make(map[string]bool),
		forced:   make(map[string]bool),
	}
	for _, g := range groups {
		for _, id := range g.Sections {
			s.groupOf[id] = g.ID
		}
	}
	for _, id := range defaultExpanded {
		s.expanded[id] = true
	}
	return s
}

// Toggle flips a section. In an accordion group, expanding a section
// collapses its siblings.
func (s *ExpansionState) Toggle(sectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expanded[sectionID] {
		s.expanded[sectionID] = false
		return
	}
	s.expandLocked(sectionID)
}

// Expand opens a section, applying the group's accordion policy.
func (s *ExpansionState) Expand(sectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expandLocked(sectionID)
}

// Collapse closes a section. A forced-open section stays visibly open until
// the force is released.
func (s *ExpansionState) Collapse(sectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expanded[sectionID] = false
}

func (s *ExpansionState) expandLocked(sectionID string) {
	if g := s.groupFor(sectionID); g != nil && g.Mode == ModeAccordion {
		for _, sibling := range g.Sections {
			s.expanded[sibling] = false
		}
	}
	s.expanded[sectionID] = true
}

func (s *ExpansionState) groupFor(sectionID string) *Group {
	gid, ok := s.groupOf[sectionID]
	if !ok {
		return nil
	}
	for i := range s.groups {
		if s.groups[i].ID == gid {
			return &s.groups[i]
		}
	}
	return nil
}

// IsExpanded reports whether a section renders open, forced state included.
func (s *ExpansionState) IsExpanded(sectionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forced[sectionID] || s.expanded[sectionID]
}

// ForceOpen pins a section open regardless of user-driven collapse state.
func (s *ExpansionState) ForceOpen(sectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forced[sectionID] = true
}

// Release returns a forced-open section to user control.
func (s *ExpansionState) Release(sectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.forced, sectionID)
}

// BindSwitchEvents forces the department section open for the duration of an
// in-flight switch: pinned on SwitchStarted, released once the controller
// leaves Switching.
func (s *ExpansionState) BindSwitchEvents(bus eventbus.EventBus, departmentSectionID string) {
	bus.Subscribe(func(e department.SwitchStarted) {
		s.ForceOpen(departmentSectionID)
	})
	bus.Subscribe(func(e department.SwitchCommitted) {
		s.Release(departmentSectionID)
	})
	bus.Subscribe(func(e department.SwitchFailed) {
		s.Release(departmentSectionID)
	})
}
