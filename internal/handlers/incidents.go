package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"status_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339, 'YYYY-MM-DD HH:MM:SS' or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339, 'YYYY-MM-DD HH:MM:SS' or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List detected incidents
// @Description  Incidents recorded by the feed poller. A date-only 'to' is treated as end of day inclusive.
// @Tags         incidents
// @Produce      json
// @Param        from     query     string  false  "Start of range"  example(2025-06-01)
// @Param        to       query     string  false  "End of range"    example(2025-06-30)
// @Param        product  query     string  false  "Exact product label"
// @Success      200      {object}  map[string]interface{}  "count, incidents"
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /api/v1/incidents [get]
// @Security     BearerAuth
func (h *Handler) listIncidents(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		from, to time.Time
		err      error
		product  = strings.TrimSpace(c.Query("product"))
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Second)
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must be <= 'to'"})
		return
	}

	records, err := h.services.IncidentLog.List(ctx, service.LogFilter{From: from, To: to, Product: product})
	if err != nil {
		if h.log != nil {
			h.log.Errorw("incidents_list_failed", "err", err, "from", from, "to", to, "product", product)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load incidents"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":     len(records),
		"incidents": records,
	})
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q", s)
}
