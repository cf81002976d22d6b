package controller

import (
	"career_coach_backend/internal/service"
	"career_coach_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ResumeController struct {
	Service *service.ResumeService
}

func NewResumeController(svc *service.ResumeService) *ResumeController {
	return &ResumeController{Service: svc}
}

// @Summary Get the authenticated user's resume
// @Tags resume
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/resume [get]
func (c *ResumeController) GetResume(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	resume, err := c.Service.Get(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrResumeNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resume)
}

type SaveResumeRequest struct {
	Content string `json:"content" binding:"required"`
}

// @Summary Save the resume markdown
// @Tags resume
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SaveResumeRequest true "Resume markdown"
// @Success 200 {object} util.Response
// @Router /api/resume [put]
func (c *ResumeController) SaveResume(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SaveResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resume, err := c.Service.Save(claims.UserID, req.Content)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resume)
}

// @Summary Build and save the resume from structured sections
// @Tags resume
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.BuildRequest true "Structured resume form"
// @Success 200 {object} util.Response
// @Router /api/resume/build [post]
func (c *ResumeController) BuildResume(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.BuildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resume, err := c.Service.Build(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resume)
}

// @Summary Improve one resume entry description with AI
// @Tags resume
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ImproveRequest true "Entry to improve"
// @Success 200 {object} util.Response
// @Router /api/resume/improve [post]
func (c *ResumeController) ImproveResume(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ImproveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	improved, err := c.Service.Improve(ctx.Request.Context(), claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.Error(ctx, http.StatusPreconditionFailed, "Complete your career profile before improving resume entries")
			return
		}
		util.Error(ctx, http.StatusBadGateway, "Could not improve the entry right now. Please try again.")
		return
	}

	util.Success(ctx, gin.H{"improved": improved})
}

// @Summary Export the resume markdown to document storage
// @Tags resume
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/resume/export [post]
func (c *ResumeController) ExportResume(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	location, err := c.Service.Export(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrResumeNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"location": location})
}
