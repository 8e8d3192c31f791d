package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/smallbiznis/lockerdocs/internal/clock"
	"github.com/smallbiznis/lockerdocs/internal/config"
	"github.com/smallbiznis/lockerdocs/internal/contract/domain"
	"github.com/smallbiznis/lockerdocs/internal/document/codec"
	"github.com/smallbiznis/lockerdocs/internal/document/compose"
	"github.com/smallbiznis/lockerdocs/internal/document/layout"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
	Cfg   config.Config
	Clock clock.Clock
	Codec codec.Codec
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
	cfg   config.Config
	clock clock.Clock
	codec codec.Codec
}

func NewService(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("contract.service"),
		genID: p.GenID,
		repo:  p.Repo,
		cfg:   p.Cfg,
		clock: p.Clock,
		codec: p.Codec,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateContractRequest) (domain.Contract, error) {
	if strings.TrimSpace(req.MemberName) == "" {
		return domain.Contract{}, domain.ErrMissingMemberName
	}
	if strings.TrimSpace(req.MemberPhone) == "" {
		return domain.Contract{}, domain.ErrMissingMemberPhone
	}
	if !req.EndDate.After(req.StartDate) {
		return domain.Contract{}, domain.ErrInvalidPeriod
	}
	if req.PriceAmount <= 0 {
		return domain.Contract{}, domain.ErrInvalidAmount
	}

	now := s.clock.Now()
	contract := domain.Contract{
		ID:          s.genID.Generate(),
		MemberName:  strings.TrimSpace(req.MemberName),
		MemberPhone: strings.TrimSpace(req.MemberPhone),
		MemberEmail: req.MemberEmail,
		PlanID:      strings.TrimSpace(req.PlanID),
		Status:      domain.ContractStatusActive,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		KioskID:     strings.TrimSpace(req.KioskID),
		LockerID:    strings.TrimSpace(req.LockerID),
		RFIDCard:    strings.TrimSpace(req.RFIDCard),
		BackupCard:  req.BackupCard,
		PriceAmount: req.PriceAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, s.db, &contract); err != nil {
		return domain.Contract{}, err
	}

	s.log.Info("contract created",
		zap.String("contract_id", contract.ID.String()),
		zap.String("plan_id", contract.PlanID),
	)
	return contract, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Contract, error) {
	contractID, err := parseContractID(id)
	if err != nil {
		return domain.Contract{}, err
	}
	contract, err := s.repo.FindByID(ctx, s.db, contractID)
	if err != nil {
		return domain.Contract{}, err
	}
	return *contract, nil
}

func (s *Service) RecordPayment(ctx context.Context, contractID string, req domain.RecordPaymentRequest) (domain.Payment, error) {
	id, err := parseContractID(contractID)
	if err != nil {
		return domain.Payment{}, err
	}
	if req.Amount <= 0 {
		return domain.Payment{}, domain.ErrInvalidAmount
	}
	contract, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Payment{}, err
	}

	payment := domain.Payment{
		ID:         s.genID.Generate(),
		ContractID: contract.ID,
		PaidAt:     req.PaidAt,
		Method:     strings.TrimSpace(req.Method),
		Amount:     req.Amount,
		Reference:  req.Reference,
		Metadata:   datatypes.JSONMap(req.Metadata),
		CreatedAt:  s.clock.Now(),
	}
	if payment.Metadata == nil {
		payment.Metadata = datatypes.JSONMap{}
	}
	if err := s.repo.InsertPayment(ctx, s.db, &payment); err != nil {
		return domain.Payment{}, err
	}

	var total int64
	payments, err := s.repo.ListPayments(ctx, s.db, contract.ID)
	if err != nil {
		return domain.Payment{}, err
	}
	for _, p := range payments {
		total += p.Amount
	}
	contract.TotalPaidAmount = &total
	contract.UpdatedAt = s.clock.Now()
	if err := s.db.WithContext(ctx).Model(&domain.Contract{}).
		Where("id = ?", contract.ID).
		Updates(map[string]any{
			"total_paid_amount": total,
			"updated_at":        contract.UpdatedAt,
		}).Error; err != nil {
		return domain.Payment{}, err
	}

	return payment, nil
}

// RenderDocument loads the contract with its payment history, composes the
// paginated document and encodes it. Loading failures never leave a partial
// artifact; codec failures are surfaced verbatim.
func (s *Service) RenderDocument(ctx context.Context, id string, req domain.RenderDocumentRequest) (domain.Document, error) {
	contractID, err := parseContractID(id)
	if err != nil {
		return domain.Document{}, err
	}
	contract, err := s.repo.FindByID(ctx, s.db, contractID)
	if err != nil {
		return domain.Document{}, err
	}

	var payments []domain.Payment
	if req.IncludePayments {
		payments, err = s.repo.ListPayments(ctx, s.db, contract.ID)
		if err != nil {
			return domain.Document{}, err
		}
	}

	input := buildInput(contract, payments, req, s.cfg.Branding, s.clock)
	artifact, err := compose.New(layout.A4()).Compose(input)
	if err != nil {
		return domain.Document{}, fmt.Errorf("compose contract %s: %w", contract.ID, err)
	}

	bytes, err := s.codec.Encode(artifact.Pages)
	if err != nil {
		return domain.Document{}, err
	}

	s.log.Info("contract document rendered",
		zap.String("contract_id", contract.ID.String()),
		zap.Int("pages", artifact.PageCount),
		zap.Int("bytes", len(bytes)),
	)
	return domain.Document{
		Bytes:       bytes,
		ContentType: s.codec.ContentType(),
		PageCount:   artifact.PageCount,
	}, nil
}

func buildInput(contract *domain.Contract, payments []domain.Payment, req domain.RenderDocumentRequest, branding config.BrandingConfig, clk clock.Clock) compose.Input {
	view := compose.ContractView{
		ID:              contract.ID.String(),
		MemberName:      contract.MemberName,
		MemberPhone:     contract.MemberPhone,
		PlanID:          contract.PlanID,
		StartDate:       contract.StartDate,
		EndDate:         contract.EndDate,
		KioskID:         contract.KioskID,
		LockerID:        contract.LockerID,
		RFIDCard:        contract.RFIDCard,
		PriceAmount:     contract.PriceAmount,
		TotalPaidAmount: contract.TotalPaidAmount,
	}
	if contract.MemberEmail != nil {
		view.MemberEmail = *contract.MemberEmail
	}
	if contract.BackupCard != nil {
		view.BackupCard = *contract.BackupCard
	}

	views := make([]compose.PaymentView, 0, len(payments))
	for _, p := range payments {
		pv := compose.PaymentView{
			PaidAt: p.PaidAt,
			Method: p.Method,
			Amount: p.Amount,
		}
		if p.Reference != nil {
			pv.Reference = *p.Reference
		}
		views = append(views, pv)
	}

	return compose.Input{
		Contract: view,
		Payments: views,
		Options: compose.Options{
			IncludePayments: req.IncludePayments,
			IncludeTerms:    req.IncludeTerms,
			Branding: compose.BrandingView{
				Name:    branding.Name,
				Address: branding.Address,
				Phone:   branding.Phone,
				Email:   branding.Email,
				Website: branding.Website,
				LogoURL: branding.LogoURL,
			},
			CurrencySymbol: branding.CurrencySymbol,
			GeneratedAt:    clk.Now(),
		},
	}
}

func parseContractID(raw string) (snowflake.ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domain.ErrInvalidContractID
	}
	id, err := snowflake.ParseString(raw)
	if err != nil {
		return 0, domain.ErrInvalidContractID
	}
	return id, nil
}
