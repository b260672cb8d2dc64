package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/hillcosite/priceguide/internal/catalog/domain"
	pipelinedomain "github.com/hillcosite/priceguide/internal/pipeline/domain"
	ratedomain "github.com/hillcosite/priceguide/internal/rate/domain"
)

// RunInflation triggers one inflation pipeline run. Query parameters:
// dry_run ("true" previews without writing), year (defaults to the current
// calendar year). The response shape is consumed by the operator directly,
// not by the guide pages, so it bypasses the shared error envelope.
func (s *Server) RunInflation(c *gin.Context) {
	dryRun := strings.EqualFold(strings.TrimSpace(c.Query("dry_run")), "true")

	year := s.clock.Now().Year()
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_year",
				"details": "year must be a positive integer",
			})
			return
		}
		year = parsed
	}

	result, err := s.pipelineSvc.Run(c.Request.Context(), pipelinedomain.RunRequest{
		Year:   year,
		DryRun: dryRun,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   runErrorLabel(err),
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func runErrorLabel(err error) string {
	switch {
	case errors.Is(err, ratedomain.ErrRateUnavailable):
		return "rate_unavailable"
	case errors.Is(err, catalogdomain.ErrCatalogUnreadable):
		return "catalog_unreadable"
	case errors.Is(err, pipelinedomain.ErrCommitFailed):
		return "commit_failed"
	default:
		return "internal_error"
	}
}
