package queries

import (
	"errors"

	"medidrone/internal/pkg/guard"
)

var ErrListMedicationsQueryIsNotConstructed = errors.New(
	"ListMedicationsQuery must be created via NewListMedicationsQuery constructor",
)

type ListMedicationsQuery struct {
	page Page

	guard guard.ConstructorGuard
}

func NewListMedicationsQuery(page Page) ListMedicationsQuery {
	return ListMedicationsQuery{page: page, guard: guard.NewConstructorGuard()}
}

func (q ListMedicationsQuery) Validate() error {
	return q.guard.Validate(ErrListMedicationsQueryIsNotConstructed)
}

func (q ListMedicationsQuery) Page() Page {
	return q.page
}
