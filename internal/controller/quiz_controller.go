package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QuizController handles quiz, question and reward management inside an
// owned course.
type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type createQuizRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	LessonID    *uint  `json:"lesson_id"`
}

// @Summary Create quiz
// @Description Creates a quiz in an owned course, optionally attached to one of its lessons
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param quiz body createQuizRequest true "Quiz attributes"
// @Success 201 {object} util.Response
// @Router /api/courses/{id}/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	var req createQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.CreateQuiz(util.MustParseUint(ctx.Param("id")), principal.UserID, service.CreateQuizInput{
		Title:       req.Title,
		Description: req.Description,
		LessonID:    req.LessonID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, quiz)
}

// @Summary List quizzes
// @Description Lists quizzes of an owned course
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	quizzes, err := c.QuizService.ListQuizzes(util.MustParseUint(ctx.Param("id")), principal.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, quizzes)
}

// @Summary Get quiz
// @Description Fetches a quiz with its questions and rewards
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param quizId path int true "Quiz ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/quizzes/{quizId} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	detail, err := c.QuizService.GetQuizDetail(
		util.MustParseUint(ctx.Param("quizId")),
		util.MustParseUint(ctx.Param("id")),
		principal.UserID,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

type updateQuizRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
}

// @Summary Update quiz
// @Description Applies a partial update to a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param quizId path int true "Quiz ID"
// @Param quiz body updateQuizRequest true "Fields to change"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/quizzes/{quizId} [patch]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	var req updateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.UpdateQuiz(
		util.MustParseUint(ctx.Param("quizId")),
		util.MustParseUint(ctx.Param("id")),
		principal.UserID,
		service.UpdateQuizInput{
			Title:       req.Title,
			Description: req.Description,
		})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, quiz)
}

// @Summary Delete quiz
// @Description Removes a quiz with its questions and rewards
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param quizId path int true "Quiz ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/quizzes/{quizId} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.QuizService.DeleteQuiz(
		util.MustParseUint(ctx.Param("quizId")),
		util.MustParseUint(ctx.Param("id")),
		principal.UserID,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

type createQuestionRequest struct {
	QuestionType string `json:"question_type" binding:"required,oneof=multiple_choice true_false short_answer"`
	Prompt       string `json:"prompt" binding:"required"`
	Options      string `json:"options"`
	Answer       string `json:"answer" binding:"required"`
	Points       int    `json:"points" binding:"omitempty,min=1"`
}

// @Summary Create question
// @Description Appends a question to a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param quizId path int true "Quiz ID"
// @Param question body createQuestionRequest true "Question attributes"
// @Success 201 {object} util.Response
// @Router /api/courses/{id}/quizzes/{quizId}/questions [post]
func (c *QuizController) CreateQuestion(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	var req createQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuizService.CreateQuestion(
		util.MustParseUint(ctx.Param("quizId")),
		util.MustParseUint(ctx.Param("id")),
		principal.UserID,
		service.CreateQuestionInput{
			QuestionType: req.QuestionType,
			Prompt:       req.Prompt,
			Options:      req.Options,
			Answer:       req.Answer,
			Points:       req.Points,
		})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

type updateQuestionRequest struct {
	QuestionType *string `json:"question_type" binding:"omitempty,oneof=multiple_choice true_false short_answer"`
	Prompt       *string `json:"prompt"`
	Options      *string `json:"options"`
	Answer       *string `json:"answer"`
	Points       *int    `json:"points" binding:"omitempty,min=1"`
}

// @Summary Update question
// @Description Applies a partial update to a quiz question
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param quizId path int true "Quiz ID"
// @Param questionId path int true "Question ID"
// @Param question body updateQuestionRequest true "Fields to change"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/quizzes/{quizId}/questions/{questionId} [patch]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	var req updateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuizService.UpdateQuestion(
		util.MustParseUint(ctx.Param("questionId")),
		util.MustParseUint(ctx.Param("quizId")),
		util.MustParseUint(ctx.Param("id")),
		principal.UserID,
		service.UpdateQuestionInput{
			QuestionType: req.QuestionType,
			Prompt:       req.Prompt,
			Options:      req.Options,
			Answer:       req.Answer,
			Points:       req.Points,
		})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// @Summary Delete question
// @Description Removes a question from a quiz
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param quizId path int true "Quiz ID"
// @Param questionId path int true "Question ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/quizzes/{quizId}/questions/{questionId} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.QuizService.DeleteQuestion(
		util.MustParseUint(ctx.Param("questionId")),
		util.MustParseUint(ctx.Param("quizId")),
		util.MustParseUint(ctx.Param("id")),
		principal.UserID,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

type rewardItem struct {
	AttemptNumber int `json:"attempt_number" binding:"required,min=1"`
	PointsAwarded int `json:"points_awarded" binding:"min=0"`
}

type replaceRewardsRequest struct {
	Rewards []rewardItem `json:"rewards" binding:"dive"`
}

// @Summary Replace rewards
// @Description Replaces the whole reward set of a quiz; an empty list clears it
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param quizId path int true "Quiz ID"
// @Param rewards body replaceRewardsRequest true "New reward set"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/quizzes/{quizId}/rewards [put]
func (c *QuizController) ReplaceRewards(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	var req replaceRewardsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	inputs := make([]service.RewardInput, 0, len(req.Rewards))
	for _, r := range req.Rewards {
		inputs = append(inputs, service.RewardInput{
			AttemptNumber: r.AttemptNumber,
			PointsAwarded: r.PointsAwarded,
		})
	}

	rewards, err := c.QuizService.ReplaceRewards(
		util.MustParseUint(ctx.Param("quizId")),
		util.MustParseUint(ctx.Param("id")),
		principal.UserID,
		inputs,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, rewards)
}
