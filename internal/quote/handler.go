package quote

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"troybbq/internal/pricing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type quoteRequest struct {
	EventDate *time.Time      `json:"event_date"`
	Pricing   pricing.Request `json:"pricing"`
}

// respondPricingError maps engine rejections to 422 with the stable
// code so the intake form can branch on it.
func respondPricingError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"code":    pricing.CodeOf(err),
		"message": err.Error(),
	})
}

// --------------------------------------------------
// Customer: price a draft without saving it
// --------------------------------------------------
func (h *Handler) Estimate(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	breakdown, err := h.service.Estimate(c.Request.Context(), &req.Pricing)
	if err != nil {
		respondPricingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"breakdown": breakdown,
		"display":   breakdown.DisplayLines(),
	})
}

// --------------------------------------------------
// Customer: live address-field validation
// --------------------------------------------------
func (h *Handler) CheckAddress(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	result, err := h.service.CheckAddress(c.Request.Context(), address)
	if err != nil {
		respondPricingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// Customer: submit a quote
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customerID := c.GetString("userID")
	email := c.GetString("userEmail")

	q, err := h.service.Create(c.Request.Context(), customerID, email, req.EventDate, &req.Pricing)
	if err != nil {
		respondPricingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, q)
}

// --------------------------------------------------
// Customer: my quotes
// --------------------------------------------------
func (h *Handler) ListMine(c *gin.Context) {
	quotes, err := h.service.ListMine(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch quotes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

func (h *Handler) Get(c *gin.Context) {
	isAdmin := c.GetString("userRole") == "ADMIN"

	q, err := h.service.Get(c.Request.Context(), c.Param("id"), c.GetString("userID"), isAdmin)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNotOwner) {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch quote"})
		return
	}

	c.JSON(http.StatusOK, q)
}

// --------------------------------------------------
// Admin: review queue
// --------------------------------------------------
func (h *Handler) ListPending(c *gin.Context) {
	quotes, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch quotes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pending_quotes": quotes})
}

func (h *Handler) Approve(c *gin.Context) {
	if err := h.service.Approve(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quote approved"})
}

func (h *Handler) Reject(c *gin.Context) {
	if err := h.service.Reject(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quote rejected"})
}
