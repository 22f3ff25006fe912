package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for transactions.
// Amount maps to a numeric column; it must never travel through a float.
type Transaction struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	CustomerID  uint64          `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	Currency    string          `gorm:"not null;size:8"`
	Category    string          `gorm:"size:255;index"`
	Status      string          `gorm:"not null;size:20;index"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	Description string          `gorm:"type:text"`

	Customer Customer `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
