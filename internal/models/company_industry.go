package models

// CompanyIndustry links one industry to one company. The composite primary
// key rejects duplicate associations, and both foreign keys cascade so the
// join rows die with either endpoint.
type CompanyIndustry struct {
	IndustryCode string   `gorm:"column:industry_code;primaryKey" json:"industry_code"`
	CompanyCode  string   `gorm:"column:company_code;primaryKey" json:"company_code"`
	Industry     Industry `gorm:"foreignKey:IndustryCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
	Company      Company  `gorm:"foreignKey:CompanyCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
}

func (CompanyIndustry) TableName() string {
	return "company_industries"
}
