package controller

import (
	"errors"
	"strconv"

	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// pageParams reads limit/offset query parameters and clamps them to the
// allowed window.
func pageParams(ctx *gin.Context) (int, int) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(util.DefaultPageLimit)))
	if err != nil || limit <= 0 {
		limit = util.DefaultPageLimit
	}
	if limit > util.MaxPageLimit {
		limit = util.MaxPageLimit
	}

	offset, err := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// respondError maps service sentinels onto HTTP statuses. Anything not
// recognized is logged and answered with an opaque 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrEnrollmentNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrNotEnrolled):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrAlreadyEnrolled):
		util.Error(ctx, 409, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidRole),
		errors.Is(err, util.ErrInvalidEnrollCode):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
