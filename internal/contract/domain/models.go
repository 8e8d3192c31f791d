package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// ContractStatus reflects the lifecycle of a membership contract.
type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusExpired   ContractStatus = "EXPIRED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

// Contract is a locker-room membership contract. Amounts are minor units.
type Contract struct {
	ID              snowflake.ID   `gorm:"primaryKey" json:"id,string"`
	MemberName      string         `gorm:"not null" json:"member_name"`
	MemberPhone     string         `gorm:"not null" json:"member_phone"`
	MemberEmail     *string        `json:"member_email,omitempty"`
	PlanID          string         `gorm:"type:text;not null" json:"plan_id"`
	Status          ContractStatus `gorm:"type:text;not null;default:'ACTIVE'" json:"status"`
	StartDate       time.Time      `gorm:"not null" json:"start_date"`
	EndDate         time.Time      `gorm:"not null" json:"end_date"`
	KioskID         string         `gorm:"column:kiosk_id;not null" json:"kiosk_id"`
	LockerID        string         `gorm:"column:locker_id;not null" json:"locker_id"`
	RFIDCard        string         `gorm:"column:rfid_card;not null" json:"rfid_card"`
	BackupCard      *string        `gorm:"column:backup_card" json:"backup_card,omitempty"`
	PriceAmount     int64          `gorm:"not null" json:"price_amount"`
	TotalPaidAmount *int64         `gorm:"column:total_paid_amount" json:"total_paid_amount,omitempty"`
	CreatedAt       time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Contract) TableName() string { return "contracts" }

// Payment is one settled payment against a contract.
type Payment struct {
	ID         snowflake.ID      `gorm:"primaryKey" json:"id,string"`
	ContractID snowflake.ID      `gorm:"not null;index" json:"contract_id,string"`
	PaidAt     time.Time         `gorm:"not null" json:"paid_at"`
	Method     string            `gorm:"type:text;not null" json:"method"`
	Amount     int64             `gorm:"not null" json:"amount"`
	Reference  *string           `json:"reference,omitempty"`
	Metadata   datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata"`
	CreatedAt  time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Payment) TableName() string { return "contract_payments" }
