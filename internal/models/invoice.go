package models

import (
	"time"
)

// Invoice rows keep the invariant paid=false => paid_date is NULL; paid_date
// is stamped only when paid flips from false to true.
type Invoice struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	CompCode string     `gorm:"column:comp_code;not null;index" json:"comp_code"`
	Amt      float64    `gorm:"not null" json:"amt"`
	Paid     bool       `gorm:"not null;default:false" json:"paid"`
	AddDate  time.Time  `gorm:"column:add_date;not null" json:"add_date"`
	PaidDate *time.Time `gorm:"column:paid_date" json:"paid_date"`
	Company  Company    `gorm:"foreignKey:CompCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
}
