package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mediaportal-backend/internal/domains/content/model"
	"mediaportal-backend/internal/shared/response"
)

// MethodNotAllowed answers unsupported verbs on known routes with 405 and an
// Allow header enumerating what the path actually supports.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		allow := allowedMethodsFor(c.Request.URL.Path)
		if allow != "" {
			c.Header("Allow", allow)
		}
		response.ErrorResponse(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED",
			"Method "+c.Request.Method+" not allowed")
	}
}

func allowedMethodsFor(path string) string {
	trimmed := strings.Trim(strings.TrimPrefix(path, "/api"), "/")
	parts := strings.Split(trimmed, "/")

	switch {
	case len(parts) == 1 && parts[0] == "upload":
		return "POST"
	case parts[0] == "admin" && len(parts) >= 2:
		if _, ok := model.KindByName(parts[1]); !ok {
			return ""
		}
		if len(parts) == 2 {
			return "POST"
		}
		return "PUT"
	case len(parts) >= 1:
		if _, ok := model.KindByName(parts[0]); !ok {
			return ""
		}
		if len(parts) == 1 {
			return "GET, POST"
		}
		return "GET, PUT, DELETE"
	}
	return ""
}
