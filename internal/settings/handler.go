package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"troybbq/internal/pricing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	cfg, err := h.service.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *Handler) Update(c *gin.Context) {
	var cfg pricing.RuleConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Update(c.Request.Context(), cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  pricing.CodeOf(err),
		})
		return
	}

	c.JSON(http.StatusOK, cfg)
}
