package middleware

import (
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeFormInput strips markup from every submitted form value before
// handlers bind it. Entities are decoded only once the value is free of
// markup, so stored text keeps characters like "&"; pages escape on output.
func SanitizeFormInput() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		clean(policy, c.Request.PostForm)
		clean(policy, c.Request.Form)

		c.Next()
	}
}

// maxCleanPasses bounds how many layers of entity encoding are peeled.
const maxCleanPasses = 8

func clean(policy *bluemonday.Policy, values url.Values) {
	for key, vs := range values {
		for i, v := range vs {
			vs[i] = cleanValue(policy, v)
		}
		values[key] = vs
	}
}

// cleanValue sanitizes and decodes until the value stops changing, so markup
// hidden behind entities is stripped on a later pass. A value still changing
// after maxCleanPasses is kept in its escaped form.
func cleanValue(policy *bluemonday.Policy, v string) string {
	for range maxCleanPasses {
		next := html.UnescapeString(policy.Sanitize(v))
		if next == v {
			return strings.TrimSpace(v)
		}
		v = next
	}
	return strings.TrimSpace(policy.Sanitize(v))
}
