package controller

import (
	"career_coach_backend/internal/service"
	"career_coach_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	Service *service.InsightService
}

func NewInsightController(svc *service.InsightService) *InsightController {
	return &InsightController{Service: svc}
}

// @Summary Get the industry insight dashboard for the authenticated user's industry
// @Tags insights
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/insights [get]
func (c *InsightController) GetInsight(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	insight, err := c.Service.GetForUser(ctx.Request.Context(), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProfileNotFound):
			util.Error(ctx, http.StatusPreconditionFailed, "Complete your career profile to see industry insights")
		case errors.Is(err, util.ErrInsightNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, insight)
}

// @Summary Force a refresh of all due industry insights
// @Description Admin-only manual trigger of the periodic refresh.
// @Tags insights
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/insights/refresh [post]
func (c *InsightController) RefreshInsights(ctx *gin.Context) {
	if err := c.Service.RefreshDue(ctx.Request.Context()); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"refreshed": true})
}
