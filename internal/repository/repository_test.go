package repository

import (
	"fmt"
	"testing"
	"time"

	"biztime-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Company{}, &models.Industry{}, &models.Invoice{}, &models.CompanyIndustry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedFixtures loads the apple/ibm data set: two companies, three invoices,
// two industries, three associations.
func seedFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()

	companies := []models.Company{
		{Code: "apple", Name: "Apple", Description: "Maker of OSX."},
		{Code: "ibm", Name: "IBM", Description: "Big blue."},
	}
	if err := db.Create(&companies).Error; err != nil {
		t.Fatalf("seed companies: %v", err)
	}

	paidAt := time.Date(2018, 2, 2, 0, 0, 0, 0, time.UTC)
	invoices := []models.Invoice{
		{CompCode: "apple", Amt: 100, Paid: false, AddDate: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)},
		{CompCode: "apple", Amt: 200, Paid: true, AddDate: time.Date(2018, 2, 1, 0, 0, 0, 0, time.UTC), PaidDate: &paidAt},
		{CompCode: "ibm", Amt: 300, Paid: false, AddDate: time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	if err := db.Create(&invoices).Error; err != nil {
		t.Fatalf("seed invoices: %v", err)
	}

	industries := []models.Industry{
		{Code: "tech", Industry: "Technology"},
		{Code: "finance", Industry: "Finance"},
	}
	if err := db.Create(&industries).Error; err != nil {
		t.Fatalf("seed industries: %v", err)
	}

	links := []models.CompanyIndustry{
		{IndustryCode: "tech", CompanyCode: "apple"},
		{IndustryCode: "tech", CompanyCode: "ibm"},
		{IndustryCode: "finance", CompanyCode: "ibm"},
	}
	if err := db.Create(&links).Error; err != nil {
		t.Fatalf("seed associations: %v", err)
	}
}
