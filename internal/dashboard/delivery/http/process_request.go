package http

import (
	"strconv"

	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const headerHXRequest = "HX-Request"

func (h *handler) processJSONRequest(c *gin.Context, req any) (model.Scope, error) {
	if err := c.ShouldBindJSON(req); err != nil {
		return model.Scope{}, err
	}
	return scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processFormRequest(c *gin.Context, req any) (model.Scope, error) {
	if err := c.ShouldBind(req); err != nil {
		return model.Scope{}, err
	}
	return scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processTriggerRequest(c *gin.Context) (model.Operation, bool, model.Scope) {
	op := model.Operation(c.Param("operation"))
	wait, _ := strconv.ParseBool(c.Query("wait"))
	return op, wait, scope.GetScopeFromContext(c.Request.Context())
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader(headerHXRequest) == "true"
}
