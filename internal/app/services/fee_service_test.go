package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/app/repositories"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
)

type fakeFeeStore struct {
	fees   map[int64]*models.Fee
	nextID int64
}

func newFakeFeeStore() *fakeFeeStore {
	return &fakeFeeStore{fees: make(map[int64]*models.Fee), nextID: 1}
}

func (s *fakeFeeStore) Create(_ context.Context, fee *models.Fee) error {
	fee.ID = s.nextID
	s.nextID++
	s.fees[fee.ID] = fee
	return nil
}

func (s *fakeFeeStore) GetByID(_ context.Context, id int64) (*models.Fee, error) {
	fee, ok := s.fees[id]
	if !ok {
		return nil, apperrors.ErrFeeNotFound
	}
	copied := *fee
	return &copied, nil
}

func (s *fakeFeeStore) GetAll(_ context.Context, _ repositories.FeeFilter) ([]*models.Fee, int64, error) {
	out := make([]*models.Fee, 0, len(s.fees))
	for _, fee := range s.fees {
		out = append(out, fee)
	}
	return out, int64(len(out)), nil
}

func (s *fakeFeeStore) Summarize(_ context.Context, _ repositories.FeeFilter) (*models.Fee, int64, error) {
	totals := &models.Fee{}
	var pending int64
	for _, fee := range s.fees {
		totals.Amount += fee.Amount
		totals.AmountPaid += fee.AmountPaid
		if fee.Status == models.FeePending || fee.Status == models.FeeOverdue {
			pending++
		}
	}
	return totals, pending, nil
}

func (s *fakeFeeStore) Update(_ context.Context, fee *models.Fee) error {
	if _, ok := s.fees[fee.ID]; !ok {
		return apperrors.ErrFeeNotFound
	}
	s.fees[fee.ID] = fee
	return nil
}

func (s *fakeFeeStore) RecordPayment(_ context.Context, id int64, apply func(fee *models.Fee) error) (*models.Fee, error) {
	fee, ok := s.fees[id]
	if !ok {
		return nil, apperrors.ErrFeeNotFound
	}
	if err := apply(fee); err != nil {
		return nil, err
	}
	copied := *fee
	return &copied, nil
}

func (s *fakeFeeStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.fees[id]; !ok {
		return apperrors.ErrFeeNotFound
	}
	delete(s.fees, id)
	return nil
}

func seedFee(t *testing.T, store *fakeFeeStore, amount float64, status models.FeeStatus) *models.Fee {
	t.Helper()
	fee := &models.Fee{
		StudentID:    1,
		FeeType:      models.FeeTuition,
		Amount:       amount,
		DueDate:      time.Now().AddDate(0, 1, 0),
		Status:       status,
		Semester:     1,
		AcademicYear: "2026-2027",
	}
	require.NoError(t, store.Create(context.Background(), fee))
	return fee
}

func TestFeeServiceCreateDerivesInitialStatus(t *testing.T) {
	store := newFakeFeeStore()
	service := NewFeeService(store)

	t.Run("future due date is pending", func(t *testing.T) {
		resp, err := service.Create(context.Background(), &dto.CreateFeeRequest{
			StudentID:    1,
			FeeType:      "TUI",
			Amount:       2500,
			DueDate:      time.Now().AddDate(0, 2, 0).Format("2006-01-02"),
			Semester:     1,
			AcademicYear: "2026-2027",
		})
		require.NoError(t, err)
		assert.Equal(t, "PEN", resp.Status)
		assert.Equal(t, 2500.0, resp.Outstanding)
	})

	t.Run("past due date is overdue", func(t *testing.T) {
		resp, err := service.Create(context.Background(), &dto.CreateFeeRequest{
			StudentID:    1,
			FeeType:      "LAB",
			Amount:       500,
			DueDate:      "2020-01-01",
			Semester:     1,
			AcademicYear: "2026-2027",
		})
		require.NoError(t, err)
		assert.Equal(t, "OVD", resp.Status)
	})

	t.Run("malformed academic year rejected", func(t *testing.T) {
		_, err := service.Create(context.Background(), &dto.CreateFeeRequest{
			StudentID:    1,
			FeeType:      "TUI",
			Amount:       100,
			DueDate:      "2026-09-30",
			Semester:     1,
			AcademicYear: "2026",
		})
		var verrs *dto.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.Fields, "academicYear")
	})
}

func TestFeeServiceRecordPayment(t *testing.T) {
	store := newFakeFeeStore()
	service := NewFeeService(store)
	fee := seedFee(t, store, 1000, models.FeePending)

	t.Run("partial payment", func(t *testing.T) {
		resp, err := service.RecordPayment(context.Background(), fee.ID, &dto.RecordPaymentRequest{
			Amount:      400,
			PaymentMode: "UPI",
		})
		require.NoError(t, err)
		assert.Equal(t, "PAR", resp.Status)
		assert.Equal(t, 400.0, resp.AmountPaid)
		assert.Equal(t, 600.0, resp.Outstanding)
		require.NotNil(t, resp.TransactionRef)
		assert.NotEmpty(t, *resp.TransactionRef)
	})

	t.Run("overpayment rejected", func(t *testing.T) {
		_, err := service.RecordPayment(context.Background(), fee.ID, &dto.RecordPaymentRequest{
			Amount:      601,
			PaymentMode: "CASH",
		})
		assert.ErrorIs(t, err, apperrors.ErrFeeOverpayment)
	})

	t.Run("settling payment", func(t *testing.T) {
		resp, err := service.RecordPayment(context.Background(), fee.ID, &dto.RecordPaymentRequest{
			Amount:      600,
			PaymentMode: "BANK",
		})
		require.NoError(t, err)
		assert.Equal(t, "PAI", resp.Status)
		assert.Equal(t, 0.0, resp.Outstanding)
	})

	t.Run("paid fee accepts no further payments", func(t *testing.T) {
		_, err := service.RecordPayment(context.Background(), fee.ID, &dto.RecordPaymentRequest{
			Amount:      1,
			PaymentMode: "CASH",
		})
		assert.ErrorIs(t, err, apperrors.ErrFeeAlreadySettled)
	})

	t.Run("waived fee accepts no payments", func(t *testing.T) {
		waived := seedFee(t, store, 300, models.FeeWaived)
		_, err := service.RecordPayment(context.Background(), waived.ID, &dto.RecordPaymentRequest{
			Amount:      300,
			PaymentMode: "CASH",
		})
		assert.ErrorIs(t, err, apperrors.ErrFeeAlreadySettled)
	})

	t.Run("unknown fee", func(t *testing.T) {
		_, err := service.RecordPayment(context.Background(), 9999, &dto.RecordPaymentRequest{
			Amount:      1,
			PaymentMode: "CASH",
		})
		assert.ErrorIs(t, err, apperrors.ErrFeeNotFound)
	})
}

func TestFeeServiceUpdate(t *testing.T) {
	dueDate := time.Now().AddDate(0, 1, 0).Format("2006-01-02")

	t.Run("waiving freezes the status", func(t *testing.T) {
		store := newFakeFeeStore()
		service := NewFeeService(store)
		fee := seedFee(t, store, 1000, models.FeePending)

		resp, err := service.Update(context.Background(), fee.ID, &dto.UpdateFeeRequest{
			FeeType:      "TUI",
			Amount:       1000,
			DueDate:      dueDate,
			Semester:     1,
			AcademicYear: "2026-2027",
			Waived:       true,
		})
		require.NoError(t, err)
		assert.Equal(t, "WAI", resp.Status)
	})

	t.Run("un-waiving rederives the status", func(t *testing.T) {
		store := newFakeFeeStore()
		service := NewFeeService(store)
		fee := seedFee(t, store, 1000, models.FeeWaived)

		resp, err := service.Update(context.Background(), fee.ID, &dto.UpdateFeeRequest{
			FeeType:      "TUI",
			Amount:       1000,
			DueDate:      dueDate,
			Semester:     1,
			AcademicYear: "2026-2027",
		})
		require.NoError(t, err)
		assert.Equal(t, "PEN", resp.Status)
	})

	t.Run("amount cannot drop below amount paid", func(t *testing.T) {
		store := newFakeFeeStore()
		service := NewFeeService(store)
		fee := seedFee(t, store, 1000, models.FeePartial)
		store.fees[fee.ID].AmountPaid = 700

		_, err := service.Update(context.Background(), fee.ID, &dto.UpdateFeeRequest{
			FeeType:      "TUI",
			Amount:       500,
			DueDate:      dueDate,
			Semester:     1,
			AcademicYear: "2026-2027",
		})
		var verrs *dto.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.Fields, "amount")
	})
}
