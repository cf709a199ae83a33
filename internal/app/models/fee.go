package models

import "time"

// FeeType classifies what a fee is charged for.
type FeeType string

const (
	FeeTuition FeeType = "TUI"
	FeeLab     FeeType = "LAB"
	FeeLibrary FeeType = "LIB"
	FeeExam    FeeType = "EXM"
	FeeHostel  FeeType = "HOS"
	FeeOther   FeeType = "OTH"
)

// IsValid checks if the fee type is a known value.
func (t FeeType) IsValid() bool {
	switch t {
	case FeeTuition, FeeLab, FeeLibrary, FeeExam, FeeHostel, FeeOther:
		return true
	}
	return false
}

// PaymentMode records how a payment was made.
type PaymentMode string

const (
	PaymentCash   PaymentMode = "CASH"
	PaymentCard   PaymentMode = "CARD"
	PaymentUPI    PaymentMode = "UPI"
	PaymentBank   PaymentMode = "BANK"
	PaymentCheque PaymentMode = "CHEQUE"
	PaymentOnline PaymentMode = "ONLINE"
)

// IsValid checks if the payment mode is a known value.
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI, PaymentBank, PaymentCheque, PaymentOnline:
		return true
	}
	return false
}

// FeeStatus is derived from amounts and the due date, except for waivers.
type FeeStatus string

const (
	FeePending FeeStatus = "PEN"
	FeePartial FeeStatus = "PAR"
	FeePaid    FeeStatus = "PAI"
	FeeOverdue FeeStatus = "OVD"
	FeeWaived  FeeStatus = "WAI"
)

// IsValid checks if the status is a known value.
func (s FeeStatus) IsValid() bool {
	switch s {
	case FeePending, FeePartial, FeePaid, FeeOverdue, FeeWaived:
		return true
	}
	return false
}

// Fee represents a charge against a student.
type Fee struct {
	ID             int64
	StudentID      int64
	FeeType        FeeType
	Amount         float64
	AmountPaid     float64
	DueDate        time.Time
	PaidDate       *time.Time
	PaymentMode    *PaymentMode
	TransactionRef *string
	Status         FeeStatus
	Semester       int
	AcademicYear   string
	Remarks        *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Populated by joins.
	StudentName   string
	StudentNumber string
}

// Outstanding returns the unpaid balance.
func (f *Fee) Outstanding() float64 {
	return f.Amount - f.AmountPaid
}

// DeriveFeeStatus recomputes the status from amounts and the due date.
// A waived fee keeps its status.
func DeriveFeeStatus(amount, amountPaid float64, dueDate time.Time, current FeeStatus, now time.Time) FeeStatus {
	if current == FeeWaived {
		return FeeWaived
	}
	switch {
	case amountPaid >= amount:
		return FeePaid
	case amountPaid > 0:
		return FeePartial
	case now.After(dueDate):
		return FeeOverdue
	default:
		return FeePending
	}
}
