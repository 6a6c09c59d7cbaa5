package http

import (
	"medidrone/internal/core/application/usecases/queries"
	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func pathID(c echo.Context, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, c.Param(name), &id)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// pageParams reads offset and limit, defaulting to 0 and DefaultPageLimit when absent.
func pageParams(c echo.Context) (queries.Page, error) {
	var offset, limit *int

	if err := runtime.BindQueryParameter("form", true, false, "offset", c.QueryParams(), &offset); err != nil {
		return queries.Page{}, errs.NewValueIsInvalidErrorWithCause("offset", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", c.QueryParams(), &limit); err != nil {
		return queries.Page{}, errs.NewValueIsInvalidErrorWithCause("limit", err)
	}

	pageOffset, pageLimit := 0, queries.DefaultPageLimit
	if offset != nil {
		pageOffset = *offset
	}
	if limit != nil {
		pageLimit = *limit
	}
	return queries.NewPage(pageOffset, pageLimit)
}

// stateFilter reads drone_state, or its alias state. A missing filter is nil.
func stateFilter(c echo.Context) (*drone.State, error) {
	value := c.QueryParam("drone_state")
	if value == "" {
		value = c.QueryParam("state")
	}
	if value == "" {
		return nil, nil //nolint:nilnil // no filter requested
	}

	state, err := drone.ParseState(value)
	if err != nil {
		return nil, err
	}
	return &state, nil
}
