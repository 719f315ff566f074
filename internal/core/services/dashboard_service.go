package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
)

const topCategoryLimit = 5

type DashboardService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

func NewDashboardService(reportingRepo portsrepo.ReportingRepository) *DashboardService {
	return &DashboardService{reportingRepo: reportingRepo}
}

var _ portssvc.DashboardSvcFacade = (*DashboardService)(nil)

func (s *DashboardService) Summary(ctx context.Context, userID string) (*domain.DashboardSummary, error) {
	byCategory, err := s.reportingRepo.TotalsByCategory(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category totals: %w", err)
	}
	byType, err := s.reportingRepo.TotalsByType(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate type totals: %w", err)
	}
	byMonth, err := s.reportingRepo.TotalsByMonth(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate month totals: %w", err)
	}

	return &domain.DashboardSummary{
		ByCategory: byCategory,
		ByType:     byType,
		ByMonth:    byMonth,
	}, nil
}

func (s *DashboardService) AdvancedSummary(ctx context.Context, userID string, from, to *time.Time) (*domain.AdvancedSummary, error) {
	byType, err := s.reportingRepo.TotalsByType(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate type totals: %w", err)
	}
	topCategories, err := s.reportingRepo.TopCategories(ctx, userID, from, to, topCategoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top categories: %w", err)
	}
	byMonth, err := s.reportingRepo.TotalsByMonth(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate month totals: %w", err)
	}

	return &domain.AdvancedSummary{
		TotalsByType:  byType,
		TopCategories: topCategories,
		TotalsByMonth: byMonth,
	}, nil
}
