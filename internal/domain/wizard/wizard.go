// Package wizard implements the step-by-step profile capture flow as an
// explicit finite-state machine with guarded transitions.
package wizard

import (
	"fmt"
	"slices"

	"github.com/okian/weekender/internal/domain/model"
)

// State names a wizard step.
type State string

// Wizard states in forward order.
const (
	StateFamily      State = "family"
	StateInterests   State = "interests"
	StatePreferences State = "preferences"
	StateLocation    State = "location"
	StateComplete    State = "complete"
)

// TotalSteps is the number of editable steps.
const TotalSteps = 4

// step describes one editable state.
type step struct {
	index int
	title string
	next  State
	prev  State
	guard func(model.UserProfile) error
}

var steps = map[State]step{
	StateFamily: {
		index: 1,
		title: "Tell us about your family",
		next:  StateInterests,
		guard: func(p model.UserProfile) error {
			if p.HasKids && len(p.KidAgeGroups) == 0 {
				return fmt.Errorf("%w: select at least one age group for your kids", ErrStepIncomplete)
			}
			return nil
		},
	},
	StateInterests: {
		index: 2,
		title: "What interests you?",
		next:  StatePreferences,
		prev:  StateFamily,
		guard: func(p model.UserProfile) error {
			if len(p.Interests) == 0 {
				return fmt.Errorf("%w: select at least one interest", ErrStepIncomplete)
			}
			return nil
		},
	},
	StatePreferences: {
		index: 3,
		title: "Your preferences",
		next:  StateLocation,
		prev:  StateInterests,
	},
	StateLocation: {
		index: 4,
		title: "Location & transport",
		next:  StateComplete,
		prev:  StatePreferences,
	},
}

// Wizard holds the current state and the draft profile.
// A Wizard is not safe for concurrent use; owners serialize access.
type Wizard struct {
	state State
	draft model.UserProfile
}

// New starts a wizard at the family step with the default profile.
func New() *Wizard {
	return &Wizard{state: StateFamily, draft: model.DefaultProfile()}
}

// Snapshot is a read-only view of the wizard.
type Snapshot struct {
	State   State             `json:"state"`
	Step    int               `json:"step"`
	Total   int               `json:"total"`
	Title   string            `json:"title"`
	CanNext bool              `json:"canNext"`
	CanBack bool              `json:"canBack"`
	Draft   model.UserProfile `json:"draft"`
}

// Snapshot returns the current view.
func (w *Wizard) Snapshot() Snapshot {
	idx, total := w.Progress()
	return Snapshot{
		State:   w.state,
		Step:    idx,
		Total:   total,
		Title:   w.Title(),
		CanNext: w.CanNext(),
		CanBack: w.CanBack(),
		Draft:   w.Draft(),
	}
}

// State returns the current state.
func (w *Wizard) State() State { return w.state }

// Done reports whether the profile has been completed.
func (w *Wizard) Done() bool { return w.state == StateComplete }

// Draft returns a copy of the profile being edited.
func (w *Wizard) Draft() model.UserProfile { return w.draft.Clone() }

// Progress returns the 1-based step index and the number of steps.
// The complete state reports the last step.
func (w *Wizard) Progress() (int, int) {
	if s, ok := steps[w.state]; ok {
		return s.index, TotalSteps
	}
	return TotalSteps, TotalSteps
}

// Title returns the headline of the current step.
func (w *Wizard) Title() string {
	if s, ok := steps[w.state]; ok {
		return s.title
	}
	return "All set"
}

// CanNext reports whether Next would succeed.
func (w *Wizard) CanNext() bool {
	s, ok := steps[w.state]
	if !ok {
		return false
	}
	return s.guard == nil || s.guard(w.draft) == nil
}

// CanBack reports whether Back would succeed.
func (w *Wizard) CanBack() bool {
	s, ok := steps[w.state]
	return ok && s.prev != ""
}

// Next advances one step. Leaving the location step completes the wizard
// and returns the finished profile with done set.
func (w *Wizard) Next() (profile model.UserProfile, done bool, err error) {
	s, ok := steps[w.state]
	if !ok {
		return model.UserProfile{}, false, fmt.Errorf("%w: next from %s", ErrInvalidTransition, w.state)
	}
	if s.guard != nil {
		if err := s.guard(w.draft); err != nil {
			return model.UserProfile{}, false, err
		}
	}
	w.state = s.next
	if w.state == StateComplete {
		return w.draft.Normalize(), true, nil
	}
	return model.UserProfile{}, false, nil
}

// Back returns to the previous step. The family and complete states have no
// previous step.
func (w *Wizard) Back() error {
	s, ok := steps[w.state]
	if !ok || s.prev == "" {
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, w.state)
	}
	w.state = s.prev
	return nil
}

// Reset restarts the wizard with the default profile.
func (w *Wizard) Reset() {
	w.state = StateFamily
	w.draft = model.DefaultProfile()
}

// Complete jumps to the complete state with p as the draft. Used when a
// profile is supplied directly instead of through the steps.
func (w *Wizard) Complete(p model.UserProfile) {
	w.state = StateComplete
	w.draft = p.Normalize()
}

// edit replaces the draft; edits are rejected once the wizard is complete.
func (w *Wizard) edit(fn func(p *model.UserProfile)) error {
	if w.state == StateComplete {
		return fmt.Errorf("%w: wizard already complete", ErrInvalidTransition)
	}
	next := w.draft.Clone()
	fn(&next)
	w.draft = next
	return nil
}

// SetHasKids sets whether kids are joining. Turning it off clears age groups.
func (w *Wizard) SetHasKids(hasKids bool) error {
	return w.edit(func(p *model.UserProfile) {
		p.HasKids = hasKids
		if !hasKids {
			p.KidAgeGroups = []model.KidAgeGroup{}
		}
	})
}

// ToggleKidAgeGroup adds or removes a kid age bracket.
func (w *Wizard) ToggleKidAgeGroup(g model.KidAgeGroup) error {
	if !slices.Contains(model.KidAgeGroups, g) {
		return fmt.Errorf("%w: kid age group %q", ErrInvalidValue, g)
	}
	return w.edit(func(p *model.UserProfile) {
		p.KidAgeGroups = toggle(p.KidAgeGroups, g)
	})
}

// ToggleInterest adds or removes an interest.
func (w *Wizard) ToggleInterest(c model.Category) error {
	if !c.Valid() {
		return fmt.Errorf("%w: category %q", ErrInvalidValue, c)
	}
	return w.edit(func(p *model.UserProfile) {
		p.Interests = toggle(p.Interests, c)
	})
}

// SetBudget sets the budget tier.
func (w *Wizard) SetBudget(b model.PriceRange) error {
	if !b.Valid() {
		return fmt.Errorf("%w: budget %q", ErrInvalidValue, b)
	}
	return w.edit(func(p *model.UserProfile) { p.Budget = b })
}

// SetPreferredTime sets the preferred time of day.
func (w *Wizard) SetPreferredTime(t model.PreferredTime) error {
	switch t {
	case model.TimeMorning, model.TimeAfternoon, model.TimeEvening, model.TimeAny:
	default:
		return fmt.Errorf("%w: preferred time %q", ErrInvalidValue, t)
	}
	return w.edit(func(p *model.UserProfile) { p.PreferredTime = t })
}

// SetBorough sets the borough and keeps the zip code.
func (w *Wizard) SetBorough(b model.Borough) error {
	if !slices.Contains(model.Boroughs, b) {
		return fmt.Errorf("%w: borough %q", ErrInvalidValue, b)
	}
	return w.edit(func(p *model.UserProfile) { p.Location.Borough = b })
}

// SetTransport sets the transport mode.
func (w *Wizard) SetTransport(t model.TransportMode) error {
	switch t {
	case model.TransportWalking, model.TransportPublic, model.TransportCar:
	default:
		return fmt.Errorf("%w: transport mode %q", ErrInvalidValue, t)
	}
	return w.edit(func(p *model.UserProfile) { p.TransportMode = t })
}

func toggle[T comparable](items []T, v T) []T {
	if i := slices.Index(items, v); i >= 0 {
		return slices.Delete(slices.Clone(items), i, i+1)
	}
	return append(slices.Clone(items), v)
}
