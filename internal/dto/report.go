package dto

import (
	"fmt"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// GenerateReportRequest asks for an asynchronous transaction report. All
// fields are optional; when both dates are present start_date must not be
// after end_date.
type GenerateReportRequest struct {
	Type      string `json:"type" binding:"omitempty,oneof=income expense"`
	StartDate string `json:"start_date,omitempty" binding:"omitempty,dateformat"`
	EndDate   string `json:"end_date,omitempty" binding:"omitempty,dateformat"`
}

// ToReportFilter validates the request and produces the at-rest job filter.
func (r GenerateReportRequest) ToReportFilter() (domain.ReportFilter, error) {
	filter := domain.ReportFilter{
		Type: domain.TransactionType(r.Type),
	}

	var err error
	if filter.StartDate, err = parseDate(r.StartDate, "start_date"); err != nil {
		return filter, err
	}
	if filter.EndDate, err = parseDate(r.EndDate, "end_date"); err != nil {
		return filter, err
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return filter, fmt.Errorf("%w: start_date must not be after end_date", apperrors.ErrValidation)
	}

	return filter, nil
}

// DashboardParams are the optional date bounds for the advanced summary.
type DashboardParams struct {
	DateFrom string `form:"date_from" binding:"omitempty,dateformat"`
	DateTo   string `form:"date_to" binding:"omitempty,dateformat"`
}
