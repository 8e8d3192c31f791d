package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	contractdomain "github.com/smallbiznis/lockerdocs/internal/contract/domain"
)

type createContractRequest struct {
	MemberName  string  `json:"member_name"`
	MemberPhone string  `json:"member_phone"`
	MemberEmail *string `json:"member_email"`
	PlanID      string  `json:"plan_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	KioskID     string  `json:"kiosk_id"`
	LockerID    string  `json:"locker_id"`
	RFIDCard    string  `json:"rfid_card"`
	BackupCard  *string `json:"backup_card"`
	PriceAmount int64   `json:"price_amount"`
}

// @Summary      Create Contract
// @Description  Register a new membership contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        request body createContractRequest true "Create Contract Request"
// @Success      200  {object}  contractdomain.Contract
// @Router       /contracts [post]
func (s *Server) CreateContract(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		AbortWithError(c, newValidationError("start_date", "invalid_date", "start_date must be YYYY-MM-DD"))
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		AbortWithError(c, newValidationError("end_date", "invalid_date", "end_date must be YYYY-MM-DD"))
		return
	}

	contract, err := s.contractSvc.Create(c.Request.Context(), contractdomain.CreateContractRequest{
		MemberName:  strings.TrimSpace(req.MemberName),
		MemberPhone: strings.TrimSpace(req.MemberPhone),
		MemberEmail: req.MemberEmail,
		PlanID:      strings.TrimSpace(req.PlanID),
		StartDate:   start,
		EndDate:     end,
		KioskID:     strings.TrimSpace(req.KioskID),
		LockerID:    strings.TrimSpace(req.LockerID),
		RFIDCard:    strings.TrimSpace(req.RFIDCard),
		BackupCard:  req.BackupCard,
		PriceAmount: req.PriceAmount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": contract})
}

// @Summary      Get Contract
// @Description  Fetch one contract by id
// @Tags         contracts
// @Produce      json
// @Param        id path string true "Contract ID"
// @Success      200  {object}  contractdomain.Contract
// @Router       /contracts/{id} [get]
func (s *Server) GetContract(c *gin.Context) {
	contract, err := s.contractSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": contract})
}

type recordPaymentRequest struct {
	PaidAt    string         `json:"paid_at"`
	Method    string         `json:"method"`
	Amount    int64          `json:"amount"`
	Reference *string        `json:"reference"`
	Metadata  map[string]any `json:"metadata"`
}

// @Summary      Record Payment
// @Description  Record a settled payment against a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id path string true "Contract ID"
// @Param        request body recordPaymentRequest true "Record Payment Request"
// @Success      200  {object}  contractdomain.Payment
// @Router       /contracts/{id}/payments [post]
func (s *Server) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	paidAt := time.Now().UTC()
	if strings.TrimSpace(req.PaidAt) != "" {
		parsed, err := time.Parse(time.RFC3339, req.PaidAt)
		if err != nil {
			AbortWithError(c, newValidationError("paid_at", "invalid_timestamp", "paid_at must be RFC 3339"))
			return
		}
		paidAt = parsed
	}

	payment, err := s.contractSvc.RecordPayment(c.Request.Context(), c.Param("id"), contractdomain.RecordPaymentRequest{
		PaidAt:    paidAt,
		Method:    strings.TrimSpace(req.Method),
		Amount:    req.Amount,
		Reference: req.Reference,
		Metadata:  req.Metadata,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": payment})
}

// @Summary      Render Contract Document
// @Description  Compose and stream the contract as a paginated PDF
// @Tags         contracts
// @Produce      application/pdf
// @Param        id                path  string true  "Contract ID"
// @Param        include_payments  query bool   false "Render payment history table"
// @Param        include_terms     query bool   false "Render terms section (default true)"
// @Success      200 {file} binary
// @Router       /contracts/{id}/document [get]
func (s *Server) RenderContractDocument(c *gin.Context) {
	if !s.renderLimit.Allow(c.ClientIP()) {
		AbortWithError(c, apiError{
			Status:  http.StatusTooManyRequests,
			Code:    "rate_limited",
			Message: "too many document requests",
		})
		return
	}

	req := contractdomain.RenderDocumentRequest{}
	if raw := c.Query("include_payments"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			AbortWithError(c, newValidationError("include_payments", "invalid_bool", "include_payments must be a boolean"))
			return
		}
		req.IncludePayments = value
	}
	if raw := c.Query("include_terms"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			AbortWithError(c, newValidationError("include_terms", "invalid_bool", "include_terms must be a boolean"))
			return
		}
		req.IncludeTerms = &value
	}

	doc, err := s.contractSvc.RenderDocument(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("X-Page-Count", strconv.Itoa(doc.PageCount))
	c.Data(http.StatusOK, doc.ContentType, doc.Bytes)
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(raw))
}
