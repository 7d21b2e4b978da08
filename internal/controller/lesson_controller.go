package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

type createLessonRequest struct {
	Title           string `json:"title" binding:"required,max=200"`
	LessonType      string `json:"lesson_type" binding:"omitempty,oneof=video text quiz assignment"`
	Content         string `json:"content"`
	VideoURL        string `json:"video_url"`
	DurationSeconds int    `json:"duration_seconds" binding:"omitempty,min=0"`
}

// @Summary Create lesson
// @Description Appends a lesson to an owned course
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param lesson body createLessonRequest true "Lesson attributes"
// @Success 201 {object} util.Response
// @Router /api/courses/{id}/lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	var req createLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.CreateLesson(util.MustParseUint(ctx.Param("id")), principal.UserID, service.CreateLessonInput{
		Title:           req.Title,
		LessonType:      req.LessonType,
		Content:         req.Content,
		VideoURL:        req.VideoURL,
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, lesson)
}

// @Summary List lessons
// @Description Lists lessons of an owned course in display order
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/lessons [get]
func (c *LessonController) ListLessons(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	lessons, err := c.LessonService.ListLessons(util.MustParseUint(ctx.Param("id")), principal.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, lessons)
}

type updateLessonRequest struct {
	Title           *string `json:"title" binding:"omitempty,max=200"`
	LessonType      *string `json:"lesson_type" binding:"omitempty,oneof=video text quiz assignment"`
	Content         *string `json:"content"`
	VideoURL        *string `json:"video_url"`
	DurationSeconds *int    `json:"duration_seconds" binding:"omitempty,min=0"`
}

// @Summary Update lesson
// @Description Applies a partial update to a lesson; the slug never changes
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Param lesson body updateLessonRequest true "Fields to change"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/lessons/{lessonId} [patch]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	var req updateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.UpdateLesson(
		util.MustParseUint(ctx.Param("lessonId")),
		util.MustParseUint(ctx.Param("id")),
		principal.UserID,
		service.UpdateLessonInput{
			Title:           req.Title,
			LessonType:      req.LessonType,
			Content:         req.Content,
			VideoURL:        req.VideoURL,
			DurationSeconds: req.DurationSeconds,
		})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, lesson)
}

// @Summary Delete lesson
// @Description Removes a lesson from an owned course
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/lessons/{lessonId} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.LessonService.DeleteLesson(
		util.MustParseUint(ctx.Param("lessonId")),
		util.MustParseUint(ctx.Param("id")),
		principal.UserID,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
