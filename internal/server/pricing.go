package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListPricingEntries(c *gin.Context) {
	groups, err := s.catalogSvc.ListGrouped(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": groups})
}
