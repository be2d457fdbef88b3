package repository

import (
	"errors"
	"fmt"
	"time"

	"biztime-backend/internal/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// CompanySummary is the list-view shape: code and name only.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyDetail joins the company with its distinct invoice ids and distinct
// industry display names.
type CompanyDetail struct {
	models.Company
	InvoiceIDs []uint
	Industries []string
}

func (r *CompanyRepository) List() ([]CompanySummary, error) {
	var companies []CompanySummary
	err := r.db.Model(&models.Company{}).Select("code", "name").Find(&companies).Error
	return companies, err
}

func (r *CompanyRepository) Get(code string) (*CompanyDetail, error) {
	var company models.Company
	if err := r.db.First(&company, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	detail := &CompanyDetail{Company: company, InvoiceIDs: []uint{}, Industries: []string{}}

	err := r.db.Model(&models.Invoice{}).
		Where("comp_code = ?", code).
		Order("id").
		Distinct().
		Pluck("id", &detail.InvoiceIDs).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.CompanyIndustry{}).
		Joins("JOIN industries ON industries.code = company_industries.industry_code").
		Where("company_industries.company_code = ?", code).
		Distinct().
		Pluck("industries.industry", &detail.Industries).Error
	if err != nil {
		return nil, err
	}

	return detail, nil
}

func (r *CompanyRepository) Create(name, description string) (*models.Company, error) {
	company := &models.Company{
		Code:        GenerateCode(name, time.Now()),
		Name:        name,
		Description: description,
	}
	if err := r.db.Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

func (r *CompanyRepository) Update(code, name, description string) (*models.Company, error) {
	result := r.db.Model(&models.Company{}).
		Where("code = ?", code).
		Updates(map[string]interface{}{"name": name, "description": description})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &models.Company{Code: code, Name: name, Description: description}, nil
}

func (r *CompanyRepository) Delete(code string) error {
	result := r.db.Where("code = ?", code).Delete(&models.Company{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GenerateCode derives a company code from its name: the lower-cased slug
// with a millisecond timestamp suffix. Two creations in the same instant can
// collide; the primary key rejects the second one. A name that slugifies to
// nothing falls back to a uuid.
func GenerateCode(name string, now time.Time) string {
	s := slug.Make(name)
	if s == "" {
		return uuid.New().String()
	}
	return fmt.Sprintf("%s-%d", s, now.UnixMilli())
}
