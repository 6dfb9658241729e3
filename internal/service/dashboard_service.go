package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"renta-autos/internal/repository"
)

type DashboardStats struct {
	FleetSize        int64   `json:"fleet_size"`
	AvailableCars    int64   `json:"available_cars"`
	ActiveRentals    int64   `json:"active_rentals"`
	OpenRepairs      int64   `json:"open_repairs"`
	UnresolvedAlerts int64   `json:"unresolved_alerts"`
	ActiveClients    int64   `json:"active_clients"`
	MonthRevenue     float64 `json:"month_revenue"`
}

type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	carRepo    repository.CarRepository
	rentalRepo repository.RentalRepository
	repairRepo repository.RepairRepository
	alertRepo  repository.AlertRepository
	clientRepo repository.ClientRepository
	redis      *redis.Client
}

func NewDashboardService(
	carRepo repository.CarRepository,
	rentalRepo repository.RentalRepository,
	repairRepo repository.RepairRepository,
	alertRepo repository.AlertRepository,
	clientRepo repository.ClientRepository,
	redis *redis.Client,
) DashboardService {
	return &dashboardService{
		carRepo:    carRepo,
		rentalRepo: rentalRepo,
		repairRepo: repairRepo,
		alertRepo:  alertRepo,
		clientRepo: clientRepo,
		redis:      redis,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	cacheKey := "dashboard:stats"

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats DashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	fleetSize, err := s.carRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	availableCars, err := s.carRepo.CountAvailable(ctx)
	if err != nil {
		return nil, err
	}

	activeRentals, err := s.rentalRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	openRepairs, err := s.repairRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}

	unresolvedAlerts, err := s.alertRepo.CountUnresolved(ctx)
	if err != nil {
		return nil, err
	}

	activeClients, err := s.clientRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthRevenue, err := s.rentalRepo.SumRevenueSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		FleetSize:        fleetSize,
		AvailableCars:    availableCars,
		ActiveRentals:    activeRentals,
		OpenRepairs:      openRepairs,
		UnresolvedAlerts: unresolvedAlerts,
		ActiveClients:    activeClients,
		MonthRevenue:     monthRevenue,
	}

	if s.redis != nil {
		if statsJSON, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, cacheKey, statsJSON, 5*time.Minute).Err()
		}
	}

	return stats, nil
}
