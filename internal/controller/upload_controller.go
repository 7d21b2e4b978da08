package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UploadController stores lesson media for an owned course.
type UploadController struct {
	StorageService *service.StorageService
	CourseService  *service.CourseService
}

func NewUploadController(storageService *service.StorageService, courseService *service.CourseService) *UploadController {
	return &UploadController{
		StorageService: storageService,
		CourseService:  courseService,
	}
}

// @Summary Upload lesson media
// @Description Stores a media file for an owned course; video uploads are probed for duration
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param courseId formData int true "Course ID"
// @Param file formData file true "Media file"
// @Success 201 {object} util.Response
// @Router /api/uploads/lesson-media [post]
func (c *UploadController) UploadMedia(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID := util.MustParseUint(ctx.PostForm("courseId"))
	if courseID == 0 {
		util.BadRequest(ctx, "missing courseId")
		return
	}

	course, err := c.CourseService.GetOwnedCourse(courseID, principal.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}

	result, err := c.StorageService.UploadLessonMedia(ctx.Request.Context(), course, header)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, result)
}
