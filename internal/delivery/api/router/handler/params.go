package handler

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListQuery holds the paging and search parameters shared by listings.
// Missing or zero values fall back to page 1 and 20 items.
type ListQuery struct {
	Search string `query:"search" validate:"max=255"`
	Page   int    `query:"page" validate:"min=0"`
	Limit  int    `query:"limit" validate:"min=0"`
}

// parseID reads a uuid path parameter. An id that cannot exist is reported
// with notFound, the same way as a row that does not.
func parseID(c echo.Context, name string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	value := strings.TrimSpace(*s)

	return &value
}
