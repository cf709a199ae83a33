package dto

import "time"

// CreateFeeRequest creates a charge against a student.
type CreateFeeRequest struct {
	StudentID    int64   `json:"studentId" binding:"required,gt=0" example:"1"`
	FeeType      string  `json:"feeType" binding:"required,oneof=TUI LAB LIB EXM HOS OTH" example:"TUI"`
	Amount       float64 `json:"amount" binding:"required,gte=0" example:"2500.00"`
	DueDate      string  `json:"dueDate" binding:"required" example:"2026-09-30"`
	Semester     int     `json:"semester" binding:"required,min=1" example:"1"`
	AcademicYear string  `json:"academicYear" binding:"required,academicyear" example:"2026-2027"`
	Remarks      *string `json:"remarks" binding:"omitempty,max=500"`
}

// UpdateFeeRequest updates a fee record. Payment amounts change only
// through the payment endpoint, except for waiving.
type UpdateFeeRequest struct {
	FeeType      string  `json:"feeType" binding:"required,oneof=TUI LAB LIB EXM HOS OTH"`
	Amount       float64 `json:"amount" binding:"required,gte=0"`
	DueDate      string  `json:"dueDate" binding:"required"`
	Semester     int     `json:"semester" binding:"required,min=1"`
	AcademicYear string  `json:"academicYear" binding:"required,academicyear"`
	Remarks      *string `json:"remarks" binding:"omitempty,max=500"`
	Waived       bool    `json:"waived"`
}

// RecordPaymentRequest records a payment against a fee.
type RecordPaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"1000.00"`
	PaymentMode string  `json:"paymentMode" binding:"required,oneof=CASH CARD UPI BANK CHEQUE ONLINE" example:"UPI"`
}

// FeeFilterRequest filters the fee list.
type FeeFilterRequest struct {
	Status       string `form:"status" binding:"omitempty,oneof=PEN PAR PAI OVD WAI"`
	FeeType      string `form:"feeType" binding:"omitempty,oneof=TUI LAB LIB EXM HOS OTH"`
	Query        string `form:"q" binding:"omitempty,max=100"`
	StudentID    int64  `form:"studentId" binding:"omitempty,gt=0"`
	AcademicYear string `form:"academicYear" binding:"omitempty,academicyear"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	Size         int    `form:"size" binding:"omitempty,min=1,max=100"`
}

// FeeResponse is the public view of a fee record.
type FeeResponse struct {
	ID             int64   `json:"id" example:"1"`
	StudentID      int64   `json:"studentId" example:"1"`
	StudentName    string  `json:"studentName,omitempty"`
	StudentNumber  string  `json:"studentNumber,omitempty"`
	FeeType        string  `json:"feeType" example:"TUI"`
	Amount         float64 `json:"amount" example:"2500.00"`
	AmountPaid     float64 `json:"amountPaid" example:"1000.00"`
	Outstanding    float64 `json:"outstanding" example:"1500.00"`
	DueDate        string  `json:"dueDate" example:"2026-09-30"`
	PaidDate       *string `json:"paidDate,omitempty"`
	PaymentMode    *string `json:"paymentMode,omitempty"`
	TransactionRef *string `json:"transactionRef,omitempty"`
	Status         string  `json:"status" example:"PAR"`
	Semester       int     `json:"semester" example:"1"`
	AcademicYear   string  `json:"academicYear" example:"2026-2027"`
	Remarks        *string `json:"remarks,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FeeSummary totals a set of fee records.
type FeeSummary struct {
	TotalAmount      float64 `json:"totalAmount" example:"5000.00"`
	TotalPaid        float64 `json:"totalPaid" example:"3500.00"`
	TotalOutstanding float64 `json:"totalOutstanding" example:"1500.00"`
	PendingCount     int64   `json:"pendingCount" example:"2"`
}

// FeeListResponse is a paginated fee list with totals.
type FeeListResponse struct {
	Fees       []FeeResponse  `json:"fees"`
	Summary    FeeSummary     `json:"summary"`
	Pagination PaginationInfo `json:"pagination"`
}
