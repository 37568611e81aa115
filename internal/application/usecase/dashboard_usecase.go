package usecase

import (
	"time"

	"github.com/gestaoplug/erp-api/internal/application/dto"
	"github.com/gestaoplug/erp-api/internal/domain/finance"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
	"github.com/gestaoplug/erp-api/pkg/money"
)

// DashboardUseCase agregados do painel inicial.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Totals agregados de hoje, com valores formatados em R$.
func (uc *DashboardUseCase) Totals() (*dto.DashboardResponse, error) {
	totals, err := uc.repo.Totals(finance.DateOnly(time.Now().UTC()))
	if err != nil {
		return nil, err
	}
	return dto.ToDashboardResponse(totals, money.BRL), nil
}
