package controller

import (
	"io"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// WebhookController receives identity-provider lifecycle events. The
// endpoint is unauthenticated; every request must carry a valid HMAC
// signature instead.
type WebhookController struct {
	WebhookService *service.WebhookService
}

func NewWebhookController(webhookService *service.WebhookService) *WebhookController {
	return &WebhookController{WebhookService: webhookService}
}

// @Summary Identity webhook
// @Description Receives user lifecycle events from the identity provider
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Webhook-Id header string true "Delivery ID"
// @Param X-Webhook-Timestamp header string true "Delivery timestamp"
// @Param X-Webhook-Signature header string true "Hex HMAC-SHA256 signature"
// @Success 200 {object} util.Response
// @Router /api/webhooks/identity [post]
func (c *WebhookController) HandleIdentityEvent(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		util.BadRequest(ctx, "unreadable body")
		return
	}

	id := ctx.GetHeader("X-Webhook-Id")
	timestamp := ctx.GetHeader("X-Webhook-Timestamp")
	signature := ctx.GetHeader("X-Webhook-Signature")

	if !c.WebhookService.VerifySignature(id, timestamp, signature, body) {
		util.BadRequest(ctx, util.ErrInvalidSignature.Error())
		return
	}

	event, err := c.WebhookService.ParseEvent(body)
	if err != nil {
		util.BadRequest(ctx, "malformed event payload")
		return
	}

	if err := c.WebhookService.HandleEvent(event); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"received": true})
}
