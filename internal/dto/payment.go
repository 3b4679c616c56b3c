package dto

import (
	"time"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// TogglePaymentRequest identifies the (member, cycle) pair to flip.
type TogglePaymentRequest struct {
	MemberID string `json:"memberID" binding:"required"`
	CycleID  string `json:"cycleID" binding:"required"`
}

// TogglePaymentResponse reports the state after the flip.
type TogglePaymentResponse struct {
	MemberID string `json:"memberID"`
	CycleID  string `json:"cycleID"`
	Paid     bool   `json:"paid"`
}

// PaymentRecordResponse is the API representation of one payment record.
type PaymentRecordResponse struct {
	MemberID string    `json:"memberID"`
	CycleID  string    `json:"cycleID"`
	Status   string    `json:"status"`
	DatePaid time.Time `json:"datePaid"`
}

// ListPaymentsResponse wraps the payment record list.
type ListPaymentsResponse struct {
	Payments []PaymentRecordResponse `json:"payments"`
}

// ToListPaymentsResponse converts payment records to the list DTO.
func ToListPaymentsResponse(payments []domain.PaymentRecord) ListPaymentsResponse {
	responses := make([]PaymentRecordResponse, len(payments))
	for i, p := range payments {
		responses[i] = PaymentRecordResponse{
			MemberID: p.MemberID,
			CycleID:  p.CycleID,
			Status:   string(p.Status),
			DatePaid: p.DatePaid,
		}
	}
	return ListPaymentsResponse{Payments: responses}
}
