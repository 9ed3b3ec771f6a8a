package service

import (
	"context"

	memberSvc "grahafitness_backend/internals/features/members/service"
	"grahafitness_backend/internals/helpers/dbtime"
)

// Source membaca Snapshot; implementasi GORM ada di repository.
type Source interface {
	Load(ctx context.Context, today, month string) (*Snapshot, error)
}

type DashboardService struct {
	Source Source
	Clock  dbtime.Clock
}

func NewDashboardService(src Source, clock dbtime.Clock) *DashboardService {
	return &DashboardService{Source: src, Clock: clock}
}

func (s *DashboardService) Get(ctx context.Context) (Dashboard, error) {
	today := s.Clock.Today()
	month := s.Clock.Month()
	snap, err := s.Source.Load(ctx, today, month)
	if err != nil {
		return Dashboard{}, err
	}
	return Build(*snap, today, s.Clock.AddDays(memberSvc.ExpiringWindowDays), month), nil
}
