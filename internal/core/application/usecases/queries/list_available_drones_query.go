package queries

import (
	"errors"

	"medidrone/internal/pkg/guard"
)

var ErrListAvailableDronesQueryIsNotConstructed = errors.New(
	"ListAvailableDronesQuery must be created via NewListAvailableDronesQuery constructor",
)

// ListAvailableDronesQuery pages through drones that can start loading.
type ListAvailableDronesQuery struct {
	page Page

	guard guard.ConstructorGuard
}

func NewListAvailableDronesQuery(page Page) ListAvailableDronesQuery {
	return ListAvailableDronesQuery{page: page, guard: guard.NewConstructorGuard()}
}

func (q ListAvailableDronesQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableDronesQueryIsNotConstructed)
}

func (q ListAvailableDronesQuery) Page() Page {
	return q.page
}
