package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"biztime-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	repo *repository.InvoiceRepository
}

func NewInvoiceHandler(repo *repository.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{repo: repo}
}

func invoiceNotFound(c *gin.Context, id string) {
	respondError(c, http.StatusNotFound, fmt.Sprintf("Invoice with id '%s' cannot be found", id))
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.repo.List()
	if err != nil {
		respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	rawID := c.Param("id")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		respondInternal(c, err)
		return
	}

	invoice, err := h.repo.Get(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			invoiceNotFound(c, rawID)
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": gin.H{
		"id":        invoice.ID,
		"amt":       invoice.Amt,
		"paid":      invoice.Paid,
		"add_date":  invoice.AddDate,
		"paid_date": invoice.PaidDate,
		"company": gin.H{
			"code":        invoice.Company.Code,
			"name":        invoice.Company.Name,
			"description": invoice.Company.Description,
		},
	}})
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload struct {
		CompCode string  `json:"comp_code"`
		Amt      float64 `json:"amt"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInternal(c, err)
		return
	}

	invoice, err := h.repo.Create(payload.CompCode, payload.Amt)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	rawID := c.Param("id")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		respondInternal(c, err)
		return
	}

	// amt and paid are both required; there is no partial update.
	var payload struct {
		Amt  *float64 `json:"amt"`
		Paid *bool    `json:"paid"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInternal(c, err)
		return
	}
	if payload.Amt == nil || payload.Paid == nil {
		respondError(c, http.StatusInternalServerError, "amt and paid are required")
		return
	}

	invoice, err := h.repo.Update(uint(id), *payload.Amt, *payload.Paid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			invoiceNotFound(c, rawID)
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	rawID := c.Param("id")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		respondInternal(c, err)
		return
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			invoiceNotFound(c, rawID)
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
