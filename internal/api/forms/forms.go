// Package forms holds the request helpers shared by the page handlers.
package forms

import (
	"net/http"
	"strconv"

	"fyyur/internal/repository"

	"github.com/gin-gonic/gin"
)

// PostedFields returns the allowed field names present in the submitted
// form body. Query parameters are not counted.
func PostedFields(c *gin.Context, allowed ...string) repository.FieldSet {
	// gin's form binding has already parsed the body; this only covers
	// callers that did not bind first.
	_ = c.Request.ParseForm()

	var names []string
	for _, name := range allowed {
		if _, ok := c.Request.PostForm[name]; ok {
			names = append(names, name)
		}
	}
	return repository.Fields(names...)
}

// ID parses the :id path parameter. Zero and non-numeric ids are rejected.
func ID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// OutcomeStatus maps a failed outcome's kind to an HTTP status.
func OutcomeStatus(o repository.Outcome) int {
	switch o.Kind() {
	case repository.KindNone:
		return http.StatusOK
	case repository.KindNotFound:
		return http.StatusNotFound
	case repository.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
