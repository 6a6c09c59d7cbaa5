package drone

import (
	"fmt"

	"medidrone/internal/pkg/errs"
)

// Model is the weight class a drone was built for. It is informational only:
// the effective capacity is always the drone's weight limit.
type Model int

const (
	UnknownModel Model = iota
	Lightweight
	Middleweight
	Cruiserweight
	Heavyweight
)

func getModelStrings() map[Model]string {
	return map[Model]string{
		UnknownModel:  "Unknown",
		Lightweight:   "Lightweight",
		Middleweight:  "Middleweight",
		Cruiserweight: "Cruiserweight",
		Heavyweight:   "Heavyweight",
	}
}

// Models lists every valid model from lightest to heaviest.
func Models() []Model {
	return []Model{Lightweight, Middleweight, Cruiserweight, Heavyweight}
}

// ParseModel converts the wire representation ("Lightweight", ...) into a Model.
func ParseModel(value string) (Model, error) {
	for _, model := range Models() {
		if model.String() == value {
			return model, nil
		}
	}
	return UnknownModel, errs.NewValueIsInvalidErrorWithCause(
		"model",
		fmt.Errorf("%q is not a valid drone model", value),
	)
}

func (m Model) Validate() error {
	if m < Lightweight || m > Heavyweight {
		return errs.NewValueIsInvalidErrorWithCause("model", fmt.Errorf("%d is not a valid drone model", m))
	}
	return nil
}

func (m Model) String() string {
	if str, ok := getModelStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
