// Package inflation fetches external inflation data, caches the computed
// month-over-month rates, and fans out recalculation triggers to every
// affected user.
package inflation

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/moneta-app/moneta/pkg/cache"
	"github.com/moneta-app/moneta/pkg/domain"
	"github.com/moneta-app/moneta/pkg/domain/events"
	"github.com/moneta-app/moneta/pkg/eventbus"
	"github.com/moneta-app/moneta/pkg/provider"
	"github.com/moneta-app/moneta/pkg/repository"
)

// fanOutPageSize is the number of users loaded per page during the scan
// fan-out.
const fanOutPageSize = 100

type Service struct {
	source   provider.InflationSource
	store    cache.Store
	users    repository.UserRepository
	bus      eventbus.Bus
	logger   *slog.Logger
	now      func() time.Time
	scanning atomic.Bool
}

func New(
	source provider.InflationSource,
	store cache.Store,
	users repository.UserRepository,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	return &Service{
		source: source,
		store:  store,
		users:  users,
		bus:    bus,
		logger: logger.With("service", "inflation"),
		now:    time.Now,
	}
}

// LatestMonthlyRate looks up the cached inflation rate for a country: the
// current month's key first, then the previous month's. It returns (nil, nil)
// when neither is present and never calls the external source; only the
// scheduled scan does that.
func (s *Service) LatestMonthlyRate(ctx context.Context, country domain.Country) (*domain.InflationRate, error) {
	now := s.now()
	rate, err := s.getCached(ctx, domain.InflationRateKeyForDate(country, now))
	if err != nil || rate != nil {
		return rate, err
	}
	return s.getCached(ctx, domain.InflationRateKeyForDate(country, now.AddDate(0, -1, 0)))
}

func (s *Service) getCached(ctx context.Context, key string) (*domain.InflationRate, error) {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var rate domain.InflationRate
	if err := json.Unmarshal(data, &rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

// Scan fetches the monthly price-index series for every supported country,
// caches the computed rate, and emits one recalculation trigger per user of
// that country. Countries are independent: a fetch failure or empty series
// skips that country only. Overlapping invocations are serialized by
// skipping: if a scan is already running the call logs and returns.
func (s *Service) Scan(ctx context.Context) {
	if !s.scanning.CompareAndSwap(false, true) {
		s.logger.Warn("scan already in progress, skipping")
		return
	}
	defer s.scanning.Store(false)

	s.logger.Info("starting inflation scan")
	now := s.now()
	startYear := now.AddDate(0, -1, 0).Year()

	for _, country := range domain.Countries() {
		series, err := s.source.FetchMonthlySeries(ctx, country, startYear, now.Year())
		if err != nil {
			s.logger.Error("failed to fetch inflation series", "country", country, "error", err)
			continue
		}
		if series == nil {
			s.logger.Error("no inflation series found for country", "country", country)
			continue
		}

		observation, err := series.LatestMonthlyRate()
		if err != nil {
			s.logger.Error("failed to compute inflation rate", "country", country, "error", err)
			continue
		}

		rate := &domain.InflationRate{
			PercentageRate: observation.Value,
			Period:         observation.Period,
			Country:        country,
			Indicator:      domain.IndicatorPCPIIX,
		}
		if err := s.cacheRate(ctx, rate); err != nil {
			s.logger.Error("failed to cache inflation rate", "country", country, "error", err)
			continue
		}
		s.logger.Info("inflation rate cached",
			"country", country, "period", rate.Period, "rate", rate.PercentageRate)

		s.fanOutRecalculation(ctx, country)
	}
}

func (s *Service) cacheRate(ctx context.Context, rate *domain.InflationRate) error {
	data, err := json.Marshal(rate)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, rate.Key(), data, cache.NoExpiry)
}

// fanOutRecalculation pages through all users of a country and emits one
// net-worth recalculation trigger per user. One user's failure never blocks
// the triggers for the rest.
func (s *Service) fanOutRecalculation(ctx context.Context, country domain.Country) {
	offset := 0
	for {
		users, hasMore, err := s.users.ListByCountry(ctx, country, fanOutPageSize, offset)
		if err != nil {
			s.logger.Error("failed to page users for recalculation", "country", country, "offset", offset, "error", err)
			return
		}
		for _, u := range users {
			err := s.bus.Emit(ctx, events.NetWorthRecalculationRequested{
				UserID: u.ID,
				Source: events.SourceScan,
			})
			if err != nil {
				s.logger.Error("failed to emit recalculation trigger", "user_id", u.ID, "error", err)
			}
		}
		if !hasMore {
			return
		}
		offset += fanOutPageSize
	}
}
