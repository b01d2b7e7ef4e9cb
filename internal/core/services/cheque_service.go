package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/apperrors"
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	portsrepo "github.com/cashflowhq/cashflow_backend/internal/core/ports/repositories"
	portssvc "github.com/cashflowhq/cashflow_backend/internal/core/ports/services"
	"github.com/cashflowhq/cashflow_backend/internal/dto"
	"github.com/google/uuid"
)

const filterDateLayout = "2006-01-02"

// chequeServiceImpl implements the ChequeSvcFacade interface
type chequeServiceImpl struct {
	BaseService
	chequeRepo portsrepo.ChequeRepositoryFacade
}

// NewChequeService creates a new cheque service
func NewChequeService(repo portsrepo.ChequeRepositoryFacade) portssvc.ChequeSvcFacade {
	return &chequeServiceImpl{chequeRepo: repo}
}

var _ portssvc.ChequeSvcFacade = (*chequeServiceImpl)(nil)

func (s *chequeServiceImpl) CreateCheque(ctx context.Context, req dto.SaveChequeRequest, creatorUserID string) (*domain.Cheque, error) {
	cheque, fieldErrs := domain.ValidateChequeInput(req.ToChequeInput())
	if fieldErrs != nil {
		s.LogDebug(ctx, "Cheque validation failed", slog.Int("violations", len(fieldErrs)))
		return nil, fieldErrs
	}

	now := time.Now()
	cheque.ChequeID = uuid.NewString()
	cheque.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.chequeRepo.SaveCheque(ctx, *cheque); err != nil {
		s.LogError(ctx, err, "Failed to save cheque", slog.String("cheque_id", cheque.ChequeID))
		return nil, err
	}

	s.LogInfo(ctx, "Cheque created", slog.String("cheque_id", cheque.ChequeID))
	return cheque, nil
}

func (s *chequeServiceImpl) UpdateCheque(ctx context.Context, chequeID string, req dto.SaveChequeRequest, updaterUserID string) (*domain.Cheque, error) {
	existing, err := s.chequeRepo.FindChequeByID(ctx, chequeID)
	if err != nil {
		return nil, err
	}

	cheque, fieldErrs := domain.ValidateChequeInput(req.ToChequeInput())
	if fieldErrs != nil {
		s.LogDebug(ctx, "Cheque validation failed", slog.String("cheque_id", chequeID), slog.Int("violations", len(fieldErrs)))
		return nil, fieldErrs
	}

	cheque.ChequeID = existing.ChequeID
	cheque.AuditFields = domain.AuditFields{
		CreatedAt:     existing.CreatedAt,
		CreatedBy:     existing.CreatedBy,
		LastUpdatedAt: time.Now(),
		LastUpdatedBy: updaterUserID,
	}

	if err := s.chequeRepo.UpdateCheque(ctx, *cheque); err != nil {
		s.LogError(ctx, err, "Failed to update cheque", slog.String("cheque_id", chequeID))
		return nil, err
	}

	if cheque.Status != existing.Status {
		if err := s.recordStatusChange(ctx, existing.Status, cheque.Status, chequeID, "", updaterUserID); err != nil {
			return nil, err
		}
	}

	return cheque, nil
}

func (s *chequeServiceImpl) UpdateChequeStatus(ctx context.Context, chequeID string, req dto.UpdateChequeStatusRequest, updaterUserID string) (*domain.Cheque, error) {
	existing, err := s.chequeRepo.FindChequeByID(ctx, chequeID)
	if err != nil {
		return nil, err
	}

	newStatus := domain.ChequeStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if !domain.CanTransition(existing.Status, newStatus) {
		fieldErrs := apperrors.FieldErrors{}
		fieldErrs.Add("status", "Status must be one of pending, deposited, cleared, bounced, cancelled")
		return nil, fieldErrs
	}

	// Rebuild the raw field map from the stored record, apply the patch on
	// top and run the full validation pass so every invariant still holds.
	input := chequeToInput(existing)
	input.Status = string(newStatus)
	if req.DepositDate != "" {
		input.BankProcessing.DepositDate = req.DepositDate
	}
	if req.ClearanceDate != "" {
		input.BankProcessing.ClearanceDate = req.ClearanceDate
	}
	if req.BounceDate != "" {
		input.BankProcessing.BounceDate = req.BounceDate
	}
	if req.BounceReason != "" {
		input.BankProcessing.BounceReason = req.BounceReason
	}
	if req.BankCharges.String() != "" {
		input.BankProcessing.BankCharges = req.BankCharges.String()
	}

	cheque, fieldErrs := domain.ValidateChequeInput(input)
	if fieldErrs != nil {
		s.LogDebug(ctx, "Status change validation failed", slog.String("cheque_id", chequeID), slog.Int("violations", len(fieldErrs)))
		return nil, fieldErrs
	}

	cheque.ChequeID = existing.ChequeID
	cheque.AuditFields = domain.AuditFields{
		CreatedAt:     existing.CreatedAt,
		CreatedBy:     existing.CreatedBy,
		LastUpdatedAt: time.Now(),
		LastUpdatedBy: updaterUserID,
	}

	if err := s.chequeRepo.UpdateCheque(ctx, *cheque); err != nil {
		s.LogError(ctx, err, "Failed to update cheque status", slog.String("cheque_id", chequeID))
		return nil, err
	}

	if err := s.recordStatusChange(ctx, existing.Status, newStatus, chequeID, req.Notes, updaterUserID); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Cheque status changed",
		slog.String("cheque_id", chequeID),
		slog.String("from", string(existing.Status)),
		slog.String("to", string(newStatus)))
	return cheque, nil
}

func (s *chequeServiceImpl) recordStatusChange(ctx context.Context, from, to domain.ChequeStatus, chequeID, notes, userID string) error {
	change := domain.ChequeStatusChange{
		ChangeID:   uuid.NewString(),
		ChequeID:   chequeID,
		FromStatus: from,
		ToStatus:   to,
		Notes:      notes,
		ChangedAt:  time.Now(),
		ChangedBy:  userID,
	}
	if err := s.chequeRepo.SaveStatusChange(ctx, change); err != nil {
		s.LogError(ctx, err, "Failed to record status change", slog.String("cheque_id", chequeID))
		return err
	}
	return nil
}

func (s *chequeServiceImpl) DeleteCheque(ctx context.Context, chequeID string) error {
	if err := s.chequeRepo.DeleteCheque(ctx, chequeID); err != nil {
		s.LogError(ctx, err, "Failed to delete cheque", slog.String("cheque_id", chequeID))
		return err
	}
	s.LogInfo(ctx, "Cheque deleted", slog.String("cheque_id", chequeID))
	return nil
}

func (s *chequeServiceImpl) GetChequeByID(ctx context.Context, chequeID string) (*domain.Cheque, error) {
	return s.chequeRepo.FindChequeByID(ctx, chequeID)
}

func (s *chequeServiceImpl) ListCheques(ctx context.Context, req dto.ListChequesRequest) ([]domain.Cheque, int64, error) {
	filter, fieldErrs := buildListFilter(req)
	if fieldErrs != nil {
		return nil, 0, fieldErrs
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	return s.chequeRepo.ListCheques(ctx, filter, limit, offset)
}

func (s *chequeServiceImpl) GetStatusHistory(ctx context.Context, chequeID string) ([]domain.ChequeStatusChange, error) {
	if _, err := s.chequeRepo.FindChequeByID(ctx, chequeID); err != nil {
		return nil, err
	}
	return s.chequeRepo.FindStatusHistory(ctx, chequeID)
}

func buildListFilter(req dto.ListChequesRequest) (portsrepo.ChequeListFilter, apperrors.FieldErrors) {
	errs := apperrors.FieldErrors{}
	filter := portsrepo.ChequeListFilter{
		SupplierID: strings.TrimSpace(req.SupplierID),
		CustomerID: strings.TrimSpace(req.CustomerID),
	}

	if st := strings.ToLower(strings.TrimSpace(req.Status)); st != "" {
		status := domain.ChequeStatus(st)
		if !status.IsValid() {
			errs.Add("status", "Status must be one of pending, deposited, cleared, bounced, cancelled")
		} else {
			filter.Status = status
		}
	}

	if t := strings.ToLower(strings.TrimSpace(req.Type)); t != "" {
		if t != string(domain.ChequeIssued) && t != string(domain.ChequeReceived) {
			errs.Add("type", "Cheque type must be either issued or received")
		} else {
			filter.Type = domain.ChequeType(t)
		}
	}

	if from := strings.TrimSpace(req.DueDateFrom); from != "" {
		parsed, err := time.Parse(filterDateLayout, from)
		if err != nil {
			errs.Add("dueDateFrom", "Due date from must be a valid date (yyyy-mm-dd)")
		} else {
			filter.DueDateFrom = &parsed
		}
	}
	if to := strings.TrimSpace(req.DueDateTo); to != "" {
		parsed, err := time.Parse(filterDateLayout, to)
		if err != nil {
			errs.Add("dueDateTo", "Due date to must be a valid date (yyyy-mm-dd)")
		} else {
			filter.DueDateTo = &parsed
		}
	}

	if errs.HasErrors() {
		return portsrepo.ChequeListFilter{}, errs
	}
	return filter, nil
}

// chequeToInput formats a stored cheque back into the raw field map so a
// partial update can be validated as a whole record.
func chequeToInput(c *domain.Cheque) domain.ChequeInput {
	return domain.ChequeInput{
		ChequeNumber: c.ChequeNumber,
		Type:         string(c.Type),
		RelatedTransaction: domain.RelatedTransactionInput{
			TransactionID:   c.RelatedTransaction.TransactionID,
			TransactionType: string(c.RelatedTransaction.TransactionType),
			CustomerID:      c.RelatedTransaction.CustomerID,
			SupplierID:      c.RelatedTransaction.SupplierID,
		},
		ChequeDetails: domain.ChequeDetailsInput{
			Amount:        c.ChequeDetails.Amount.String(),
			ChequeDate:    c.ChequeDetails.ChequeDate.Format(filterDateLayout),
			BankName:      c.ChequeDetails.BankName,
			AccountNumber: c.ChequeDetails.AccountNumber,
			DrawerName:    c.ChequeDetails.DrawerName,
			PayeeName:     c.ChequeDetails.PayeeName,
			DepositDate:   formatOptionalDate(c.ChequeDetails.DepositDate),
			ClearanceDate: formatOptionalDate(c.ChequeDetails.ClearanceDate),
		},
		Status: string(c.Status),
		BankProcessing: domain.BankProcessingInput{
			DepositDate:   formatOptionalDate(c.BankProcessing.DepositDate),
			ClearanceDate: formatOptionalDate(c.BankProcessing.ClearanceDate),
			BounceDate:    formatOptionalDate(c.BankProcessing.BounceDate),
			BounceReason:  c.BankProcessing.BounceReason,
			BankCharges:   c.BankProcessing.BankCharges.String(),
		},
	}
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(filterDateLayout)
}
