package dto

import (
	"github.com/shopspring/decimal"

	"github.com/umarali/qisst_management_app/internal/core/domain"
	"github.com/umarali/qisst_management_app/internal/utils/committee"
)

// UpdateSettingsRequest replaces the settings singleton wholesale.
type UpdateSettingsRequest struct {
	CommitteeName     string          `json:"committeeName" binding:"required"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount" binding:"required"`
	Currency          string          `json:"currency" binding:"required"`
	Frequency         string          `json:"frequency" binding:"required,oneof=DAILY WEEKLY MONTHLY"`
}

// SettingsResponse is the API representation of the committee settings, with
// the derived monthly-equivalent amount included as a calculation preview.
type SettingsResponse struct {
	CommitteeName     string          `json:"committeeName"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
	Currency          string          `json:"currency"`
	Frequency         string          `json:"frequency"`
	PerPersonMonthly  decimal.Decimal `json:"perPersonMonthly"`
}

// ToSettingsResponse converts domain settings to the response DTO.
func ToSettingsResponse(s domain.CommitteeSettings) SettingsResponse {
	return SettingsResponse{
		CommitteeName:     s.CommitteeName,
		InstallmentAmount: s.InstallmentAmount,
		Currency:          s.Currency,
		Frequency:         string(s.Frequency),
		PerPersonMonthly:  committee.PerPersonMonthly(s),
	}
}
