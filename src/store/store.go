// store.go - CaseStore holds the in-memory case collection and the current
// selection. It is the single point of truth shared by every pane: views
// derive from it and mutate it only through the methods below, never via
// direct field writes, so the list entry and the selection can never show
// divergent data for the same case.
//
// All methods run on the Bubble Tea update goroutine; the store does no
// locking of its own.

package store

import "legalaid/src/models"

// CaseStore is the shared application state.
type CaseStore struct {
	cases      []models.Case
	selectedID string
}

// NewCaseStore creates an empty store with no selection.
func NewCaseStore() *CaseStore {
	return &CaseStore{}
}

// Replace swaps in a freshly loaded case collection, keeping the service's
// ordering (no client-side sort). A non-empty collection selects its first
// case; an empty one clears the selection.
func (s *CaseStore) Replace(cases []models.Case) {
	s.cases = cases
	if len(cases) > 0 {
		s.selectedID = cases[0].ID
	} else {
		s.selectedID = ""
	}
}

// Add appends a newly created case to the collection and selects it.
func (s *CaseStore) Add(c models.Case) {
	s.cases = append(s.cases, c)
	s.selectedID = c.ID
}

// Select changes the current selection. Pure state change; selecting an
// unknown id clears the selection.
func (s *CaseStore) Select(caseID string) {
	if _, ok := s.find(caseID); ok {
		s.selectedID = caseID
	} else {
		s.selectedID = ""
	}
}

// Merge applies a partial update to the case matching caseID. Because the
// selection is held by id and resolved through the collection, the list
// entry and the selected view observe the update simultaneously. Merging
// into an unknown id is a no-op.
func (s *CaseStore) Merge(caseID string, patch models.CasePatch) {
	if i, ok := s.find(caseID); ok {
		s.cases[i].Apply(patch)
	}
}

// Cases returns the case collection in service order.
func (s *CaseStore) Cases() []models.Case {
	return s.cases
}

// Selected returns a pointer to the currently selected case, or nil when
// nothing is selected. The pointer aliases store memory and must not be
// mutated by callers.
func (s *CaseStore) Selected() *models.Case {
	if i, ok := s.find(s.selectedID); ok {
		return &s.cases[i]
	}
	return nil
}

// SelectedID returns the id of the current selection ("" when none).
func (s *CaseStore) SelectedID() string {
	return s.selectedID
}

// Get returns the case with the given id, or nil.
func (s *CaseStore) Get(caseID string) *models.Case {
	if i, ok := s.find(caseID); ok {
		return &s.cases[i]
	}
	return nil
}

func (s *CaseStore) find(caseID string) (int, bool) {
	if caseID == "" {
		return 0, false
	}
	for i := range s.cases {
		if s.cases[i].ID == caseID {
			return i, true
		}
	}
	return 0, false
}
