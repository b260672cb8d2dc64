package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListRates(c *gin.Context) {
	rates, err := s.rateSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rates})
}
