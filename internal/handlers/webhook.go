package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"status_monitor/internal/metrics"
	"status_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK       = "ok"
	runningMessage = "OpenAI status monitor is running"

	maxWebhookBody = 1 << 20 // 1 MB

	errReadBody = "failed to read body"
	errProcess  = "failed to process webhook"
)

// Webhook outcomes for metrics.
const (
	outcomeAccepted  = "accepted"
	outcomeMalformed = "malformed"
	outcomeError     = "error"
)

// @Summary      Liveness message
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": runningMessage})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Statuspage webhook
// @Description  Receives an incident update, classifies the affected product and logs it.
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        body  body      status_monitor.StatusPayload  true  "Statuspage incident payload"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Router       /webhooks/openai-status [post]
func (h *Handler) receiveWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		metrics.WebhookEvent(outcomeMalformed)
		c.JSON(http.StatusBadRequest, gin.H{"error": errReadBody})
		return
	}

	notice, err := h.services.Webhook.Process(c.Request.Context(), body)
	if err != nil {
		if errors.Is(err, service.ErrMalformedInput) {
			metrics.WebhookEvent(outcomeMalformed)
			if h.log != nil {
				h.log.Debugw("webhook_malformed", "err", err)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": strings.TrimPrefix(err.Error(), service.ErrMalformedInput.Error()+": ")})
			return
		}
		metrics.WebhookEvent(outcomeError)
		if h.log != nil {
			h.log.Errorw("webhook_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errProcess})
		return
	}

	if h.log != nil {
		h.log.Info(notice.Line)
		h.log.Debugw("webhook_classified", "delivery_id", notice.DeliveryID, "product", notice.Product, "incident", notice.IncidentName)
	}
	if h.hub != nil {
		h.hub.Publish(notice)
	}
	metrics.WebhookEvent(outcomeAccepted)
	metrics.Incident(metrics.SourceWebhook, notice.Product)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
