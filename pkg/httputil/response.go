package httputil

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/homecare-api/pkg/params"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// PaginatedResponse wraps one page of a collection with its paging metadata.
// Total and TotalPage are set once the count is known.
type PaginatedResponse[T any] struct {
	Data      []T     `json:"data"`
	Page      int     `json:"page"`
	PerPage   int     `json:"per_page"`
	Total     *uint64 `json:"total"`
	TotalPage *uint64 `json:"total_page"`
}

// NewPaginatedResponse echoes the requested page. Data is never null.
func NewPaginatedResponse[T any](data []T, p params.Pagination) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &PaginatedResponse[T]{
		Data:    data,
		Page:    p.Page,
		PerPage: p.PerPage,
	}
}

// WithTotal sets the number of matching records and derives the page count.
func (r *PaginatedResponse[T]) WithTotal(total uint64) *PaginatedResponse[T] {
	pages := uint64(math.Ceil(float64(total) / float64(r.PerPage)))
	r.Total = &total
	r.TotalPage = &pages
	return r
}

// RespondWithSuccess writes data as the JSON body of a 200 response.
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondWithPagination writes a page of data with its total.
func RespondWithPagination[T any](c *gin.Context, data []T, p params.Pagination, total uint64) {
	c.JSON(http.StatusOK, NewPaginatedResponse(data, p).WithTotal(total))
}

// RespondWithError writes the error envelope with an explicit status.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
