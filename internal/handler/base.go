package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/homecare-api/internal/middleware"
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

// Fail hands err to the error middleware and stops the chain.
func Fail(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

// ParseID reads an int64 path parameter.
func ParseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		Fail(c, apperrors.NewBadRequest(fmt.Sprintf("invalid %s '%s'", name, raw), err))
		return 0, false
	}
	return id, true
}

// BindJSON decodes and validates the body into dst. Any failure is a 400.
func BindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			Fail(c, apperrors.NewBadRequest(middleware.ValidationMessage(verrs), err))
			return false
		}
		Fail(c, apperrors.NewBadRequest(fmt.Sprintf("invalid request body: %v", err), err))
		return false
	}
	return true
}

// ListParams parses pagination, search and sort from the query string.
func ListParams(c *gin.Context) (params.List, bool) {
	q, err := params.ParseList(c.Request.URL.Query())
	if err != nil {
		Fail(c, err)
		return q, false
	}
	return q, true
}

// PaginationParams parses pagination only.
func PaginationParams(c *gin.Context) (params.Pagination, bool) {
	p, err := params.ParsePagination(c.Request.URL.Query())
	if err != nil {
		Fail(c, err)
		return p, false
	}
	return p, true
}
