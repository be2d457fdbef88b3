package repository

import (
	"errors"
	"time"

	"biztime-backend/internal/models"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// InvoiceSummary is the list-view shape: id and owning company code.
type InvoiceSummary struct {
	ID       uint   `json:"id"`
	CompCode string `json:"comp_code"`
}

func (r *InvoiceRepository) List() ([]InvoiceSummary, error) {
	var invoices []InvoiceSummary
	err := r.db.Model(&models.Invoice{}).
		Select("id", "comp_code").
		Order("id").
		Find(&invoices).Error
	return invoices, err
}

// Get returns the invoice with its company populated. A missing invoice and
// a missing join target both come back as ErrNotFound.
func (r *InvoiceRepository) Get(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.InnerJoins("Company").First(&invoice, "invoices.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Create(compCode string, amt float64) (*models.Invoice, error) {
	invoice := &models.Invoice{
		CompCode: compCode,
		Amt:      amt,
		Paid:     false,
		AddDate:  time.Now(),
		PaidDate: nil,
	}
	if err := r.db.Create(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

// Update writes amt, paid and the resolved paid_date in one statement. The
// preceding read is a separate statement, so two concurrent updates of the
// same invoice can resolve paid_date from a stale paid value.
func (r *InvoiceRepository) Update(id uint, amt float64, paid bool) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	paidDate := resolvePaidDate(invoice.Paid, invoice.PaidDate, paid, time.Now())

	err := r.db.Model(&invoice).
		Updates(map[string]interface{}{"amt": amt, "paid": paid, "paid_date": paidDate}).Error
	if err != nil {
		return nil, err
	}

	invoice.Amt = amt
	invoice.Paid = paid
	invoice.PaidDate = paidDate
	return &invoice, nil
}

func (r *InvoiceRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Invoice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// resolvePaidDate applies the paid-date transition rule: flipping to paid
// stamps now, flipping to unpaid clears the date, an unchanged paid state
// keeps whatever is stored.
func resolvePaidDate(prevPaid bool, prevPaidDate *time.Time, paid bool, now time.Time) *time.Time {
	switch {
	case paid && !prevPaid:
		return &now
	case !paid && prevPaid:
		return nil
	default:
		return prevPaidDate
	}
}
