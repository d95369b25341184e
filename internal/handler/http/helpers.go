package http

import (
	"net/http"
	"strconv"

	"github.com/nimbus-hr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/nimbus-hr/hrms-backend-go/internal/handler/http/response"
)

// queryPagination reads page/limit query parameters with sane defaults.
func queryPagination(r *http.Request) (int, int) {
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}

	return page, limit
}

// queryString returns a pointer to the query parameter value, or nil when
// the parameter is absent or empty.
func queryString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

// scopedEmployeeID returns the employee id a self-scoped caller is
// restricted to, nil when the caller has full access to the area.
func scopedEmployeeID(r *http.Request) *string {
	return middleware.ScopedEmployeeID(r.Context())
}

// ownsRow reports whether a self-scoped caller owns the row. Callers with
// full access own everything.
func ownsRow(r *http.Request, employeeID string) bool {
	scoped := middleware.ScopedEmployeeID(r.Context())
	return scoped == nil || *scoped == employeeID
}

func pageMeta(page, limit int, total int64) *response.Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
