package controller

import (
	"career_coach_backend/internal/quiz"
	"career_coach_backend/internal/service"
	"career_coach_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type InterviewController struct {
	Service *service.InterviewService
}

func NewInterviewController(svc *service.InterviewService) *InterviewController {
	return &InterviewController{Service: svc}
}

// QuestionView is a question as shown to the quiz taker: the correct
// answer and explanation stay server-side until the quiz completes.
type QuestionView struct {
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type SessionView struct {
	State        quiz.SessionState `json:"state"`
	Category     quiz.Category     `json:"category"`
	CurrentIndex int               `json:"currentIndex"`
	Total        int               `json:"total"`
	Questions    []QuestionView    `json:"questions"`
}

func sessionView(s *quiz.Session) SessionView {
	questions := make([]QuestionView, len(s.Questions))
	for i, q := range s.Questions {
		questions[i] = QuestionView{Index: i, Question: q.Text, Options: q.Options}
	}
	return SessionView{
		State:        s.State,
		Category:     s.Category,
		CurrentIndex: s.Current,
		Total:        len(s.Questions),
		Questions:    questions,
	}
}

type StartQuizRequest struct {
	Category quiz.Category `json:"category" binding:"required"`
}

// @Summary Start a new interview quiz
// @Tags interview
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body StartQuizRequest true "Quiz category: technical, behavioral or leadership"
// @Success 201 {object} util.Response
// @Router /api/interview/quiz [post]
func (c *InterviewController) StartQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sess, err := c.Service.StartQuiz(ctx.Request.Context(), claims.UserID, req.Category)
	if err != nil {
		var genErr *quiz.GenerationError
		switch {
		case errors.Is(err, service.ErrInvalidCategory):
			util.BadRequest(ctx, "Category must be technical, behavioral or leadership")
		case errors.Is(err, util.ErrProfileNotFound):
			util.Error(ctx, http.StatusPreconditionFailed, "Complete your career profile before taking a quiz")
		case errors.Is(err, service.ErrQuizInFlight):
			util.Conflict(ctx, "A quiz is already being prepared, please wait")
		case errors.As(err, &genErr):
			util.Error(ctx, http.StatusBadGateway, "Could not generate quiz questions. Please try again.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, sessionView(sess))
}

type AnswerRequest struct {
	Index    int    `json:"index"`
	Selected string `json:"selected" binding:"required"`
}

// @Summary Record an answer for one question
// @Tags interview
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AnswerRequest true "Question index and selected option"
// @Success 200 {object} util.Response
// @Router /api/interview/quiz/answer [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sess, err := c.Service.SubmitAnswer(ctx.Request.Context(), claims.UserID, req.Index, req.Selected)
	if err != nil {
		switch {
		case errors.Is(err, quiz.ErrSessionNotActive):
			util.Error(ctx, http.StatusNotFound, "No quiz in progress")
		case errors.Is(err, quiz.ErrLengthMismatch):
			util.BadRequest(ctx, "Question index out of range")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, sessionView(sess))
}

// @Summary Advance to the next question, or finish and score the quiz
// @Tags interview
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/interview/quiz/advance [post]
func (c *InterviewController) Advance(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	outcome, err := c.Service.Advance(ctx.Request.Context(), claims.UserID)
	if err != nil {
		c.advanceError(ctx, err)
		return
	}

	util.Success(ctx, outcome)
}

// @Summary Retry saving a completed quiz whose save failed
// @Tags interview
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/interview/quiz/save [post]
func (c *InterviewController) RetrySave(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	outcome, err := c.Service.RetrySave(ctx.Request.Context(), claims.UserID)
	if err != nil {
		c.advanceError(ctx, err)
		return
	}

	util.Success(ctx, outcome)
}

func (c *InterviewController) advanceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, quiz.ErrSessionNotActive):
		util.Error(ctx, http.StatusNotFound, "No quiz in progress")
	case errors.Is(err, quiz.ErrIncompleteAnswer):
		util.BadRequest(ctx, "Please answer the current question before continuing")
	case errors.Is(err, service.ErrQuizInFlight):
		util.Conflict(ctx, "Your quiz is already being scored, please wait")
	case errors.Is(err, service.ErrSaveFailed):
		util.Error(ctx, http.StatusInternalServerError, "Your score was computed but could not be saved. Retry the save; you will not lose your result.")
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary List the user's past assessments
// @Tags interview
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/interview/assessments [get]
func (c *InterviewController) ListAssessments(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	assessments, err := c.Service.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, assessments)
}
