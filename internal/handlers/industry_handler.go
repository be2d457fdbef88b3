package handler

import (
	"net/http"

	"biztime-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type IndustryHandler struct {
	repo *repository.IndustryRepository
}

func NewIndustryHandler(repo *repository.IndustryRepository) *IndustryHandler {
	return &IndustryHandler{repo: repo}
}

func (h *IndustryHandler) List(c *gin.Context) {
	industries, err := h.repo.List()
	if err != nil {
		respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"industries": industries})
}

func (h *IndustryHandler) Create(c *gin.Context) {
	var payload struct {
		Code     string `json:"code"`
		Industry string `json:"industry"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInternal(c, err)
		return
	}

	industry, err := h.repo.Create(payload.Code, payload.Industry)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"industry": industry})
}

func (h *IndustryHandler) Associate(c *gin.Context) {
	code := c.Param("code")

	var payload struct {
		CompanyCode string `json:"company_code"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInternal(c, err)
		return
	}

	if err := h.repo.Associate(code, payload.CompanyCode); err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "added"})
}
