package repository

import (
	"biztime-backend/internal/models"

	"gorm.io/gorm"
)

type IndustryRepository struct {
	db *gorm.DB
}

func NewIndustryRepository(db *gorm.DB) *IndustryRepository {
	return &IndustryRepository{db: db}
}

// IndustryWithCompanies carries an industry plus the codes of its associated
// companies. Companies stays nil when the industry has no associations.
type IndustryWithCompanies struct {
	models.Industry
	Companies []string `json:"companies"`
}

func (r *IndustryRepository) List() ([]IndustryWithCompanies, error) {
	var industries []models.Industry
	if err := r.db.Find(&industries).Error; err != nil {
		return nil, err
	}

	var links []models.CompanyIndustry
	if err := r.db.Find(&links).Error; err != nil {
		return nil, err
	}

	byIndustry := make(map[string][]string)
	for _, link := range links {
		byIndustry[link.IndustryCode] = append(byIndustry[link.IndustryCode], link.CompanyCode)
	}

	result := make([]IndustryWithCompanies, 0, len(industries))
	for _, ind := range industries {
		result = append(result, IndustryWithCompanies{
			Industry:  ind,
			Companies: byIndustry[ind.Code],
		})
	}
	return result, nil
}

func (r *IndustryRepository) Create(code, industry string) (*models.Industry, error) {
	ind := &models.Industry{Code: code, Industry: industry}
	if err := r.db.Create(ind).Error; err != nil {
		return nil, err
	}
	return ind, nil
}

// Associate inserts one join row. A nonexistent company or industry, or a
// repeated pair, fails on the table's constraints.
func (r *IndustryRepository) Associate(industryCode, companyCode string) error {
	link := &models.CompanyIndustry{
		IndustryCode: industryCode,
		CompanyCode:  companyCode,
	}
	return r.db.Create(link).Error
}
