package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewService *service.ReviewService
}

func NewReviewController(reviewService *service.ReviewService) *ReviewController {
	return &ReviewController{ReviewService: reviewService}
}

// @Summary List course reviews
// @Description Lists reviews of a published course; courses restricted to signed-in users need a session
// @Tags reviews
// @Produce json
// @Param id path int true "Course ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/reviews [get]
func (c *ReviewController) ListReviews(ctx *gin.Context) {
	signedIn := util.GetPrincipal(ctx) != nil
	limit, offset := pageParams(ctx)

	reviews, total, err := c.ReviewService.ListByCourse(util.MustParseUint(ctx.Param("id")), signedIn, limit, offset)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:   reviews,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

type submitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

// @Summary Submit review
// @Description Creates or replaces the learner's review of an enrolled course
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param review body submitReviewRequest true "Rating and comment"
// @Success 200 {object} util.Response
// @Success 201 {object} util.Response
// @Router /api/learner/courses/{id}/reviews [post]
func (c *ReviewController) SubmitReview(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	var req submitReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	review, created, err := c.ReviewService.Submit(util.MustParseUint(ctx.Param("id")), principal.UserID, service.SubmitReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	if created {
		util.Created(ctx, review)
		return
	}
	util.Success(ctx, review)
}
