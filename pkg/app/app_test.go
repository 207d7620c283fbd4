package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infracache "github.com/moneta-app/moneta/infra/cache"
	"github.com/moneta-app/moneta/internal/fixtures"
	"github.com/moneta-app/moneta/pkg/cache"
	"github.com/moneta-app/moneta/pkg/config"
	"github.com/moneta-app/moneta/pkg/domain"
	"github.com/moneta-app/moneta/pkg/dto"
)

func newTestApp(t *testing.T) (*App, *fixtures.UnitOfWork, *fixtures.Bus, *infracache.MemoryStore) {
	t.Helper()
	bus := fixtures.NewBus()
	uow := fixtures.NewUnitOfWork(bus)
	inflationStore := infracache.NewMemoryStore()
	a := New(&Deps{
		Uow:             uow,
		EventBus:        bus,
		InflationStore:  inflationStore,
		GoalStore:       infracache.NewMemoryStore(),
		InflationSource: fixtures.NewInflationSource(),
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, &config.App{})
	return a, uow, bus, inflationStore
}

func seedRate(t *testing.T, store cache.Store, country domain.Country, rate string) {
	t.Helper()
	r := &domain.InflationRate{
		PercentageRate: decimal.RequireFromString(rate),
		Period:         time.Now().Format(domain.PeriodLayout),
		Country:        country,
		Indicator:      domain.IndicatorPCPIIX,
	}
	data, err := json.Marshal(r)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), r.Key(), data, cache.NoExpiry))
}

// The full causal chain: a deposit commits, triggers the net-worth
// recalculation, which in turn triggers the goal recalculation.
func TestDepositDrivesGoalRecalculation(t *testing.T) {
	a, _, _, inflationStore := newTestApp(t)
	ctx := context.Background()

	seedRate(t, inflationStore, domain.CountryES, "1")

	user, err := a.UserService.Create(ctx, dto.UserCreate{Username: "frodo", Country: domain.CountryES})
	require.NoError(t, err)

	_, err = a.RetirementService.Create(ctx, dto.RetirementDetailCreate{
		Username:              "frodo",
		IncomePerMonthDesired: decimal.RequireFromString("2000"),
		RetirementDate:        time.Date(2040, time.January, 1, 0, 0, 0, 0, time.UTC),
		LifeExpectation:       time.Date(2070, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	account, err := a.AccountService.Create(ctx, dto.AccountCreate{
		Username: "frodo",
		Type:     domain.AccountTypeSavings,
	})
	require.NoError(t, err)

	// 151515.152 gross at 1% inflation nets ~150000; needed is 720000
	_, err = a.AccountService.Deposit(ctx, account.ID, decimal.NullDecimal{
		Decimal: decimal.RequireFromString("151515.152"),
		Valid:   true,
	})
	require.NoError(t, err)

	goal, err := a.GoalService.GetGoal(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, goal.GoalPercentage.Equal(decimal.RequireFromString("20.83")),
		"got %s", goal.GoalPercentage)

	updated, err := a.AccountService.Get(ctx, account.ID)
	require.NoError(t, err)
	require.True(t, updated.AmountNet.Valid)
	assert.True(t, updated.AmountNet.Decimal.Equal(decimal.RequireFromString("150000.00048")),
		"got %s", updated.AmountNet.Decimal)
}

// A retirement-detail edit recalculates the goal without waiting for a fresh
// net-worth pass, falling back to gross amounts where no net amount exists.
func TestRetirementUpdateDrivesGoalRecalculation(t *testing.T) {
	a, _, _, _ := newTestApp(t)
	ctx := context.Background()

	user, err := a.UserService.Create(ctx, dto.UserCreate{Username: "sam", Country: domain.CountryBR})
	require.NoError(t, err)

	detail, err := a.RetirementService.Create(ctx, dto.RetirementDetailCreate{
		Username:              "sam",
		IncomePerMonthDesired: decimal.RequireFromString("2000"),
		RetirementDate:        time.Date(2040, time.January, 1, 0, 0, 0, 0, time.UTC),
		LifeExpectation:       time.Date(2070, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// No inflation rate cached for BR, so the account keeps a gross amount only
	_, err = a.AccountService.Create(ctx, dto.AccountCreate{
		Username: "sam",
		Amount:   decimal.NullDecimal{Decimal: decimal.RequireFromString("150000"), Valid: true},
		Type:     domain.AccountTypeSavings,
	})
	require.NoError(t, err)

	_, err = a.RetirementService.Update(ctx, detail.ID, dto.RetirementDetailUpdate{
		IncomePerMonthDesired: decimal.RequireFromString("2000"),
		RetirementDate:        time.Date(2040, time.January, 1, 0, 0, 0, 0, time.UTC),
		LifeExpectation:       time.Date(2070, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	goal, err := a.GoalService.GetGoal(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, goal.GoalPercentage.Equal(decimal.RequireFromString("20.83")),
		"got %s", goal.GoalPercentage)
}

// A deposit for a user with no cached inflation rate leaves net amounts unset
// and produces no goal.
func TestDepositWithoutRateStopsTheChain(t *testing.T) {
	a, _, _, _ := newTestApp(t)
	ctx := context.Background()

	user, err := a.UserService.Create(ctx, dto.UserCreate{Username: "merry", Country: domain.CountryUS})
	require.NoError(t, err)

	account, err := a.AccountService.Create(ctx, dto.AccountCreate{
		Username: "merry",
		Type:     domain.AccountTypeSavings,
	})
	require.NoError(t, err)

	_, err = a.AccountService.Deposit(ctx, account.ID, decimal.NullDecimal{
		Decimal: decimal.RequireFromString("100"),
		Valid:   true,
	})
	require.NoError(t, err)

	_, err = a.GoalService.GetGoal(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := a.AccountService.Get(ctx, account.ID)
	require.NoError(t, err)
	assert.False(t, updated.AmountNet.Valid)
}
