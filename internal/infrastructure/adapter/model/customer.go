package model

import (
	"time"
)

// Customer represents the database model for customers
type Customer struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	FullName    string    `gorm:"size:255"`
	Email       string    `gorm:"uniqueIndex;not null;size:255"`
	PhoneNumber string    `gorm:"size:50"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
