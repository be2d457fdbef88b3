package handler

import (
	"errors"
	"fmt"
	"net/http"

	"biztime-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	repo *repository.CompanyRepository
}

func NewCompanyHandler(repo *repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{repo: repo}
}

func companyNotFound(c *gin.Context, code string) {
	respondError(c, http.StatusNotFound, fmt.Sprintf("Company with code '%s' cannot be found", code))
}

func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.repo.List()
	if err != nil {
		respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (h *CompanyHandler) Get(c *gin.Context) {
	code := c.Param("code")

	detail, err := h.repo.Get(code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			companyNotFound(c, code)
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": gin.H{
		"code":        detail.Code,
		"name":        detail.Name,
		"description": detail.Description,
		"invoices":    detail.InvoiceIDs,
		"industries":  detail.Industries,
	}})
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInternal(c, err)
		return
	}

	company, err := h.repo.Create(payload.Name, payload.Description)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"company": company})
}

func (h *CompanyHandler) Update(c *gin.Context) {
	code := c.Param("code")

	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInternal(c, err)
		return
	}

	company, err := h.repo.Update(code, payload.Name, payload.Description)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			companyNotFound(c, code)
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	code := c.Param("code")

	if err := h.repo.Delete(code); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			companyNotFound(c, code)
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
