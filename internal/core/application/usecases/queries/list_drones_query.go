package queries

import (
	"errors"

	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/pkg/guard"
)

var ErrListDronesQueryIsNotConstructed = errors.New(
	"ListDronesQuery must be created via NewListDronesQuery constructor",
)

// ListDronesQuery pages through drones, optionally only those in one state.
//
// Example:
//
//	idle := drone.Idle
//	query, err := NewListDronesQuery(page, &idle)
//	drones, err := handler.Handle(ctx, query)
type ListDronesQuery struct {
	page  Page
	state *drone.State

	guard guard.ConstructorGuard
}

// NewListDronesQuery accepts a nil state for an unfiltered list.
func NewListDronesQuery(page Page, state *drone.State) (ListDronesQuery, error) {
	query := ListDronesQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}

	if state != nil {
		if err := state.Validate(); err != nil {
			return ListDronesQuery{}, err
		}
		s := *state
		query.state = &s
	}

	return query, nil
}

func (q ListDronesQuery) Validate() error {
	return q.guard.Validate(ErrListDronesQueryIsNotConstructed)
}

func (q ListDronesQuery) Page() Page {
	return q.page
}

// State returns the filter and whether one is set.
func (q ListDronesQuery) State() (drone.State, bool) {
	if q.state == nil {
		return drone.UnknownState, false
	}
	return *q.state, true
}
