package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/app/repositories"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/helpers"
	"github.com/kaan/studenthub/internal/pkg/logger"
	"github.com/kaan/studenthub/internal/pkg/validation"
)

// FeeStore is the fee persistence surface.
type FeeStore interface {
	Create(ctx context.Context, fee *models.Fee) error
	GetByID(ctx context.Context, id int64) (*models.Fee, error)
	GetAll(ctx context.Context, filter repositories.FeeFilter) ([]*models.Fee, int64, error)
	Summarize(ctx context.Context, filter repositories.FeeFilter) (*models.Fee, int64, error)
	Update(ctx context.Context, fee *models.Fee) error
	RecordPayment(ctx context.Context, id int64, apply func(fee *models.Fee) error) (*models.Fee, error)
	Delete(ctx context.Context, id int64) error
}

// FeeService handles business logic for fee records
type FeeService struct {
	fees FeeStore
}

// NewFeeService creates a new fee service
func NewFeeService(fees FeeStore) *FeeService {
	return &FeeService{fees: fees}
}

// Create creates a fee record with a derived initial status
func (s *FeeService) Create(ctx context.Context, req *dto.CreateFeeRequest) (*dto.FeeResponse, error) {
	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		verrs := dto.NewValidationErrors()
		verrs.Add("dueDate", "must be a date in YYYY-MM-DD form")
		return nil, verrs
	}
	if !validation.IsValidAcademicYear(req.AcademicYear) {
		verrs := dto.NewValidationErrors()
		verrs.Add("academicYear", "must look like 2026-2027")
		return nil, verrs
	}

	fee := &models.Fee{
		StudentID:    req.StudentID,
		FeeType:      models.FeeType(req.FeeType),
		Amount:       req.Amount,
		DueDate:      dueDate,
		Status:       models.DeriveFeeStatus(req.Amount, 0, dueDate, "", time.Now()),
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		Remarks:      req.Remarks,
	}

	if err := s.fees.Create(ctx, fee); err != nil {
		return nil, err
	}

	logger.Info().Int64("feeId", fee.ID).Int64("studentId", fee.StudentID).Msg("Fee created")
	return s.GetByID(ctx, fee.ID)
}

// GetByID retrieves a fee record
func (s *FeeService) GetByID(ctx context.Context, id int64) (*dto.FeeResponse, error) {
	fee, err := s.fees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toFeeResponse(fee), nil
}

// GetAll lists fee records with filtering, pagination and totals
func (s *FeeService) GetAll(ctx context.Context, filter *dto.FeeFilterRequest) (*dto.FeeListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)

	repoFilter := repositories.FeeFilter{
		Status:       filter.Status,
		FeeType:      filter.FeeType,
		Search:       filter.Query,
		StudentID:    filter.StudentID,
		AcademicYear: filter.AcademicYear,
		Limit:        limit,
		Offset:       offset,
	}

	fees, total, err := s.fees.GetAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	totals, pendingCount, err := s.fees.Summarize(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	response := &dto.FeeListResponse{
		Fees: make([]dto.FeeResponse, 0, len(fees)),
		Summary: dto.FeeSummary{
			TotalAmount:      totals.Amount,
			TotalPaid:        totals.AmountPaid,
			TotalOutstanding: totals.Amount - totals.AmountPaid,
			PendingCount:     pendingCount,
		},
		Pagination: helpers.NewPaginationInfo(total, filter.Page, limit),
	}
	for _, fee := range fees {
		response.Fees = append(response.Fees, *toFeeResponse(fee))
	}
	return response, nil
}

// Update updates a fee's chargeable fields. Setting Waived freezes the
// status; otherwise the status is rederived.
func (s *FeeService) Update(ctx context.Context, id int64, req *dto.UpdateFeeRequest) (*dto.FeeResponse, error) {
	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		verrs := dto.NewValidationErrors()
		verrs.Add("dueDate", "must be a date in YYYY-MM-DD form")
		return nil, verrs
	}
	if !validation.IsValidAcademicYear(req.AcademicYear) {
		verrs := dto.NewValidationErrors()
		verrs.Add("academicYear", "must look like 2026-2027")
		return nil, verrs
	}

	fee, err := s.fees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount < fee.AmountPaid {
		verrs := dto.NewValidationErrors()
		verrs.Add("amount", "cannot be reduced below the amount already paid")
		return nil, verrs
	}

	fee.FeeType = models.FeeType(req.FeeType)
	fee.Amount = req.Amount
	fee.DueDate = dueDate
	fee.Semester = req.Semester
	fee.AcademicYear = req.AcademicYear
	fee.Remarks = req.Remarks

	if req.Waived {
		fee.Status = models.FeeWaived
	} else {
		current := fee.Status
		if current == models.FeeWaived {
			current = models.FeePending
		}
		fee.Status = models.DeriveFeeStatus(fee.Amount, fee.AmountPaid, fee.DueDate, current, time.Now())
	}

	if err := s.fees.Update(ctx, fee); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// RecordPayment applies a payment to a fee. Payments may not exceed the
// outstanding balance and settled fees accept no further payments.
func (s *FeeService) RecordPayment(ctx context.Context, id int64, req *dto.RecordPaymentRequest) (*dto.FeeResponse, error) {
	fee, err := s.fees.RecordPayment(ctx, id, func(fee *models.Fee) error {
		if fee.Status == models.FeePaid || fee.Status == models.FeeWaived {
			return apperrors.ErrFeeAlreadySettled
		}
		if req.Amount > fee.Outstanding() {
			return apperrors.ErrFeeOverpayment
		}

		now := time.Now()
		mode := models.PaymentMode(req.PaymentMode)
		ref := uuid.NewString()

		fee.AmountPaid += req.Amount
		fee.PaidDate = &now
		fee.PaymentMode = &mode
		fee.TransactionRef = &ref
		fee.Status = models.DeriveFeeStatus(fee.Amount, fee.AmountPaid, fee.DueDate, fee.Status, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("feeId", fee.ID).
		Float64("amount", req.Amount).
		Str("status", string(fee.Status)).
		Msg("Payment recorded")

	return toFeeResponse(fee), nil
}

// Delete deletes a fee record
func (s *FeeService) Delete(ctx context.Context, id int64) error {
	if err := s.fees.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("feeId", id).Msg("Fee deleted")
	return nil
}

func toFeeResponse(fee *models.Fee) *dto.FeeResponse {
	response := &dto.FeeResponse{
		ID:             fee.ID,
		StudentID:      fee.StudentID,
		StudentName:    fee.StudentName,
		StudentNumber:  fee.StudentNumber,
		FeeType:        string(fee.FeeType),
		Amount:         fee.Amount,
		AmountPaid:     fee.AmountPaid,
		Outstanding:    fee.Outstanding(),
		DueDate:        fee.DueDate.Format(helpers.DateFormat),
		TransactionRef: fee.TransactionRef,
		Status:         string(fee.Status),
		Semester:       fee.Semester,
		AcademicYear:   fee.AcademicYear,
		Remarks:        fee.Remarks,
		CreatedAt:      fee.CreatedAt,
		UpdatedAt:      fee.UpdatedAt,
	}
	if fee.PaidDate != nil {
		paid := fee.PaidDate.Format(helpers.DateFormat)
		response.PaidDate = &paid
	}
	if fee.PaymentMode != nil {
		mode := string(*fee.PaymentMode)
		response.PaymentMode = &mode
	}
	return response
}
