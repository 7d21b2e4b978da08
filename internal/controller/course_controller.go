package controller

import (
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CourseController handles the instructor-facing course endpoints plus
// the public catalog.
type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

type createCourseRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Visibility  string `json:"visibility" binding:"omitempty,oneof=everyone signed_in"`
}

// @Summary Create course
// @Description Creates a draft course owned by the calling instructor
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body createCourseRequest true "Course attributes"
// @Success 201 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	var req createCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(principal.UserID, service.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Visibility:  req.Visibility,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

// @Summary List own courses
// @Description Lists courses owned by the calling instructor
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(draft, published, archived)
// @Param search query string false "Title substring filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, offset := pageParams(ctx)
	courses, total, err := c.CourseService.ListCourses(repository.CourseFilter{
		InstructorID: principal.UserID,
		Status:       ctx.Query("status"),
		Search:       ctx.Query("search"),
	}, limit, offset)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:   courses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// @Summary Get own course
// @Description Fetches one course owned by the calling instructor
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	course, err := c.CourseService.GetOwnedCourse(util.MustParseUint(ctx.Param("id")), principal.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

type updateCourseRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=draft published archived"`
	Visibility  *string `json:"visibility" binding:"omitempty,oneof=everyone signed_in"`
}

// @Summary Update course
// @Description Applies a partial update to an owned course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param course body updateCourseRequest true "Fields to change"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [patch]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	var req updateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.UpdateCourse(util.MustParseUint(ctx.Param("id")), principal.UserID, service.UpdateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Visibility:  req.Visibility,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// @Summary Delete course
// @Description Removes an owned course and its dependent rows
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.CourseService.DeleteCourse(util.MustParseUint(ctx.Param("id")), principal.UserID); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary Publish course
// @Description Publishes an owned course; the publish timestamp is set once and never moves
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/publish [post]
func (c *CourseController) PublishCourse(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	course, err := c.CourseService.PublishCourse(util.MustParseUint(ctx.Param("id")), principal.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// @Summary Public catalog
// @Description Lists published courses visible to everyone
// @Tags catalog
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} util.Response
// @Router /api/courses/catalog [get]
func (c *CourseController) PublicCatalog(ctx *gin.Context) {
	limit, offset := pageParams(ctx)
	courses, total, err := c.CourseService.PublicCatalog(ctx.Request.Context(), limit, offset)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:   courses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}
