package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func Hello(c *gin.Context) {
	log.Info().Msg("hello endpoint called")
	c.String(http.StatusOK, "Hello, World!")
}
