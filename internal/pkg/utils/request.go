package utils

import (
	"internistika-service/internal/pkg/constvars"
	"internistika-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
)

// BuildPaginationRequest reads page/limit query parameters and clamps them:
// page to a minimum of 1, limit into [1, PaginationMaxLimit]. Unparseable
// values fall back to the defaults.
func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	limitStr := r.URL.Query().Get("limit")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = constvars.PaginationDefaultLimit
	}
	if limit > constvars.PaginationMaxLimit {
		limit = constvars.PaginationMaxLimit
	}

	return &requests.Pagination{
		Page:  page,
		Limit: limit,
	}
}
