package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sustainability-portal-backend/internal/database/models"
	apperrors "sustainability-portal-backend/internal/errors"
	"sustainability-portal-backend/internal/logger"
	"sustainability-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgreementService handles the sign-off agreement lifecycle:
// draft -> sent -> signed | declined. The e-signature provider assigns the
// envelope ID when the document is sent; status callbacks are matched back by
// that envelope ID. Email notifications after a status change are
// fire-and-forget and never block the status update itself.
type AgreementService struct {
	agreementRepo  repository.AgreementRepositoryInterface
	contractorRepo repository.ContractorRepositoryInterface
	signing        SigningClient
	notifier       Notifier
	audit          *AuditRecorder
	validator      *validator.Validate
	log            *logger.Logger
}

// NewAgreementService creates a new agreement service
func NewAgreementService(
	agreementRepo repository.AgreementRepositoryInterface,
	contractorRepo repository.ContractorRepositoryInterface,
	signing SigningClient,
	notifier Notifier,
	audit *AuditRecorder,
	validate *validator.Validate,
) *AgreementService {
	return &AgreementService{
		agreementRepo:  agreementRepo,
		contractorRepo: contractorRepo,
		signing:        signing,
		notifier:       notifier,
		audit:          audit,
		validator:      validate,
		log:            logger.New(),
	}
}

// AgreementCreateRequest is the typed decode of an inbound create-agreement call
type AgreementCreateRequest struct {
	CMCode      string `json:"cm_code" validate:"required"`
	Period      string `json:"period" validate:"required"`
	DocumentURL string `json:"document_url"`
	CreatedBy   string `json:"created_by" validate:"required"`
}

// AgreementStatusRequest updates an agreement's status from a signing callback
type AgreementStatusRequest struct {
	EnvelopeID string                 `json:"envelope_id" validate:"required"`
	Status     models.AgreementStatus `json:"status" validate:"required"`
	Actor      string                 `json:"actor"`
}

// AgreementListResponse is a paginated agreement listing
type AgreementListResponse struct {
	Agreements []models.SignoffAgreement `json:"agreements"`
	Total      int64                     `json:"total"`
	Page       int                       `json:"page"`
	PageSize   int                       `json:"page_size"`
}

// CreateAgreement creates a draft agreement for one (cm_code, period)
func (s *AgreementService) CreateAgreement(req *AgreementCreateRequest) (*models.SignoffAgreement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.contractorRepo.GetByCMCode(req.CMCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContractorNotFound
		}
		return nil, fmt.Errorf("failed to resolve contractor: %w", err)
	}
	if _, err := s.agreementRepo.GetByCMAndPeriod(req.CMCode, req.Period); err == nil {
		return nil, apperrors.ErrAgreementExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check agreement existence: %w", err)
	}

	agreement := &models.SignoffAgreement{
		CMCode:      req.CMCode,
		Period:      req.Period,
		Status:      models.AgreementStatusDraft,
		DocumentURL: req.DocumentURL,
	}
	agreement.CreatedBy = req.CreatedBy
	if err := s.agreementRepo.Create(agreement); err != nil {
		return nil, fmt.Errorf("failed to create agreement: %w", err)
	}
	s.audit.Record(EntityAgreement, agreement.ID.String(), nil, agreement, models.ActionInsert, "agreement created", req.CreatedBy)

	return agreement, nil
}

// SendForSignature submits a draft agreement to the signing provider. The
// contractor's contacts become the envelope signers.
func (s *AgreementService) SendForSignature(ctx context.Context, id uuid.UUID) (*models.SignoffAgreement, error) {
	agreement, err := s.agreementRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgreementNotFound
		}
		return nil, fmt.Errorf("failed to load agreement: %w", err)
	}
	if agreement.Status != models.AgreementStatusDraft {
		return nil, apperrors.ErrAgreementNotDraft
	}

	contractor, err := s.contractorRepo.GetWithContacts(agreement.CMCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContractorNotFound
		}
		return nil, fmt.Errorf("failed to load contractor contacts: %w", err)
	}

	envelope := &EnvelopeRequest{
		CMCode:      agreement.CMCode,
		Period:      agreement.Period,
		DocumentURL: agreement.DocumentURL,
	}
	for _, contact := range contractor.Contacts {
		if !contact.IsActive {
			continue
		}
		envelope.Signers = append(envelope.Signers, EnvelopeSigner{Name: contact.Name, Email: contact.Email})
	}

	envelopeID, err := s.signing.CreateEnvelope(ctx, envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to create signing envelope: %w", err)
	}

	before := *agreement
	agreement.Status = models.AgreementStatusSent
	agreement.EnvelopeID = envelopeID
	if err := s.agreementRepo.Update(agreement); err != nil {
		return nil, fmt.Errorf("failed to mark agreement sent: %w", err)
	}
	s.audit.Record(EntityAgreement, agreement.ID.String(), before, agreement, models.ActionUpdate, "sent for signature", "")

	s.notifyContacts(contractor, agreement,
		fmt.Sprintf("Sign-off agreement for %s / %s sent for signature", agreement.CMCode, agreement.Period))

	return agreement, nil
}

// UpdateStatus applies a status change reported by the signing provider,
// matched by envelope ID. Only sent agreements can move to signed or declined.
func (s *AgreementService) UpdateStatus(req *AgreementStatusRequest) (*models.SignoffAgreement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Status != models.AgreementStatusSigned && req.Status != models.AgreementStatusDeclined {
		return nil, apperrors.ErrInvalidStatus
	}

	agreement, err := s.agreementRepo.GetByEnvelopeID(req.EnvelopeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgreementNotFound
		}
		return nil, fmt.Errorf("failed to load agreement by envelope: %w", err)
	}
	if agreement.Status != models.AgreementStatusSent {
		return nil, apperrors.ErrInvalidStatus
	}

	before := *agreement
	agreement.Status = req.Status
	if req.Status == models.AgreementStatusSigned {
		now := time.Now().UTC()
		agreement.SignedAt = &now
	}
	agreement.UpdatedBy = req.Actor
	if err := s.agreementRepo.Update(agreement); err != nil {
		return nil, fmt.Errorf("failed to update agreement status: %w", err)
	}
	s.audit.Record(EntityAgreement, agreement.ID.String(), before, agreement, models.ActionUpdate, "signing status callback", req.Actor)

	if contractor, err := s.contractorRepo.GetWithContacts(agreement.CMCode); err == nil {
		s.notifyContacts(contractor, agreement,
			fmt.Sprintf("Sign-off agreement for %s / %s is now %s", agreement.CMCode, agreement.Period, agreement.Status))
	}

	return agreement, nil
}

// ListAgreements returns a paginated agreement listing
func (s *AgreementService) ListAgreements(page, pageSize int) (*AgreementListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}
	agreements, total, err := s.agreementRepo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list agreements: %w", err)
	}
	return &AgreementListResponse{Agreements: agreements, Total: total, Page: page, PageSize: pageSize}, nil
}

// notifyContacts emails a contractor's active contacts. Delivery failures are
// logged and never propagate.
func (s *AgreementService) notifyContacts(contractor *models.Contractor, agreement *models.SignoffAgreement, subject string) {
	if s.notifier == nil {
		return
	}
	var recipients []string
	for _, contact := range contractor.Contacts {
		if contact.IsActive {
			recipients = append(recipients, contact.Email)
		}
	}
	if len(recipients) == 0 {
		return
	}
	body := fmt.Sprintf("Agreement %s for contract manufacturer %s, period %s: status %s.",
		agreement.ID, agreement.CMCode, agreement.Period, agreement.Status)
	if err := s.notifier.Notify(recipients, subject, body); err != nil {
		s.log.WithFields(map[string]interface{}{
			"cm_code": agreement.CMCode,
			"period":  agreement.Period,
		}).WithError(err).Warn("agreement notification failed; continuing")
	}
}
