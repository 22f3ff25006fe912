package model

import (
	"time"
)

// Payment represents the database model for payments. The unique index on
// TransactionID enforces the at-most-one-payment-per-transaction invariant.
type Payment struct {
	ID            uint64     `gorm:"primaryKey;autoIncrement"`
	TransactionID uint64     `gorm:"uniqueIndex;not null"`
	Method        string     `gorm:"size:50"`
	Status        string     `gorm:"not null;size:20"`
	ReferenceID   string     `gorm:"uniqueIndex;not null;size:64"`
	ProcessedAt   *time.Time

	Transaction Transaction `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
