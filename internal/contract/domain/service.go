package domain

import (
	"context"
	"errors"
	"time"
)

type CreateContractRequest struct {
	MemberName  string    `json:"member_name"`
	MemberPhone string    `json:"member_phone"`
	MemberEmail *string   `json:"member_email,omitempty"`
	PlanID      string    `json:"plan_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	KioskID     string    `json:"kiosk_id"`
	LockerID    string    `json:"locker_id"`
	RFIDCard    string    `json:"rfid_card"`
	BackupCard  *string   `json:"backup_card,omitempty"`
	PriceAmount int64     `json:"price_amount"`
}

type RecordPaymentRequest struct {
	PaidAt    time.Time      `json:"paid_at"`
	Method    string         `json:"method"`
	Amount    int64          `json:"amount"`
	Reference *string        `json:"reference,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// RenderDocumentRequest carries the caller's document options. IncludeTerms
// is tri-state: nil keeps the terms section, explicit false drops it.
type RenderDocumentRequest struct {
	IncludePayments bool
	IncludeTerms    *bool
}

// Document is an encoded contract document plus its transport metadata.
type Document struct {
	Bytes       []byte
	ContentType string
	PageCount   int
}

type Service interface {
	Create(ctx context.Context, req CreateContractRequest) (Contract, error)
	GetByID(ctx context.Context, id string) (Contract, error)
	RecordPayment(ctx context.Context, contractID string, req RecordPaymentRequest) (Payment, error)
	RenderDocument(ctx context.Context, id string, req RenderDocumentRequest) (Document, error)
}

var (
	ErrInvalidContractID  = errors.New("invalid_contract_id")
	ErrContractNotFound   = errors.New("contract_not_found")
	ErrMissingMemberName  = errors.New("missing_member_name")
	ErrMissingMemberPhone = errors.New("missing_member_phone")
	ErrInvalidPeriod      = errors.New("invalid_contract_period")
	ErrInvalidAmount      = errors.New("invalid_amount")
)
