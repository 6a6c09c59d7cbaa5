package commands

import (
	"math"

	"medidrone/internal/pkg/errs"
)

func checkID(paramName string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError(paramName, id, 1, int64(math.MaxInt64))
	}
	return nil
}
