package controller

import (
	"career_coach_backend/internal/service"
	"career_coach_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CoverLetterController struct {
	Service *service.CoverLetterService
}

func NewCoverLetterController(svc *service.CoverLetterService) *CoverLetterController {
	return &CoverLetterController{Service: svc}
}

// @Summary Generate a cover letter for a job posting
// @Tags cover-letters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CoverLetterRequest true "Job details"
// @Success 201 {object} util.Response
// @Router /api/cover-letters [post]
func (c *CoverLetterController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CoverLetterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cl, err := c.Service.Create(ctx.Request.Context(), claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.Error(ctx, http.StatusPreconditionFailed, "Complete your career profile before generating cover letters")
			return
		}
		util.Error(ctx, http.StatusBadGateway, "Could not generate the cover letter right now. Please try again.")
		return
	}

	util.Created(ctx, cl)
}

// @Summary List the user's cover letters
// @Tags cover-letters
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/cover-letters [get]
func (c *CoverLetterController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	cls, err := c.Service.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, cls)
}

// @Summary Get one cover letter
// @Tags cover-letters
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Cover letter ID"
// @Success 200 {object} util.Response
// @Router /api/cover-letters/{id} [get]
func (c *CoverLetterController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	cl, err := c.Service.Get(ctx.Param("id"), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCoverLetterNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, cl)
}

// @Summary Delete one cover letter
// @Tags cover-letters
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Cover letter ID"
// @Success 200 {object} util.Response
// @Router /api/cover-letters/{id} [delete]
func (c *CoverLetterController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.Delete(ctx.Param("id"), claims.UserID); err != nil {
		switch {
		case errors.Is(err, util.ErrCoverLetterNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}
