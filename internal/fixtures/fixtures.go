// Package fixtures provides in-memory fakes of the persistence and event
// contracts for service tests.
package fixtures

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/moneta-app/moneta/pkg/domain"
	"github.com/moneta-app/moneta/pkg/domain/events"
	"github.com/moneta-app/moneta/pkg/eventbus"
	"github.com/moneta-app/moneta/pkg/provider"
	"github.com/moneta-app/moneta/pkg/repository"
)

// Bus records emitted events and dispatches them to registered handlers.
type Bus struct {
	mu        sync.Mutex
	handlers  map[string][]eventbus.HandlerFunc
	published []events.Event
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]eventbus.HandlerFunc)}
}

func (b *Bus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

func (b *Bus) Emit(ctx context.Context, e events.Event) error {
	b.mu.Lock()
	b.published = append(b.published, e)
	handlers := append([]eventbus.HandlerFunc{}, b.handlers[e.Type()]...)
	b.mu.Unlock()
	for _, handler := range handlers {
		if err := handler(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Published returns the events emitted so far.
func (b *Bus) Published() []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]events.Event{}, b.published...)
}

// AccountRepo is an in-memory repository.AccountRepository.
type AccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*domain.Account
	Err      error // when set, every call fails with it
}

func NewAccountRepo(accounts ...*domain.Account) *AccountRepo {
	r := &AccountRepo{accounts: make(map[uuid.UUID]*domain.Account)}
	for _, a := range accounts {
		r.accounts[a.ID] = a
	}
	return r
}

func (r *AccountRepo) Get(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", domain.ErrNotFound, id)
	}
	copied := *a
	return &copied, nil
}

func (r *AccountRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Account
	for _, a := range r.accounts {
		if a.UserID == userID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *AccountRepo) Create(_ context.Context, account *domain.Account) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *AccountRepo) Update(_ context.Context, account *domain.Account) error {
	return r.Create(context.Background(), account)
}

func (r *AccountRepo) SaveAll(_ context.Context, accounts []*domain.Account) error {
	if r.Err != nil {
		return r.Err
	}
	for _, a := range accounts {
		if err := r.Create(context.Background(), a); err != nil {
			return err
		}
	}
	return nil
}

func (r *AccountRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	if r.Err != nil {
		return false, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.accounts[id]
	return ok, nil
}

func (r *AccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, id)
	return nil
}

// HistoryRepo records created account history snapshots.
type HistoryRepo struct {
	mu      sync.Mutex
	Created []*domain.AccountHistory
	Err     error
}

func NewHistoryRepo() *HistoryRepo { return &HistoryRepo{} }

func (r *HistoryRepo) Create(_ context.Context, history *domain.AccountHistory) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Created = append(r.Created, history)
	return nil
}

// RetirementRepo is an in-memory repository.RetirementRepository.
type RetirementRepo struct {
	mu      sync.Mutex
	details map[uuid.UUID]*domain.RetirementDetail
	Err     error
}

func NewRetirementRepo(details ...*domain.RetirementDetail) *RetirementRepo {
	r := &RetirementRepo{details: make(map[uuid.UUID]*domain.RetirementDetail)}
	for _, d := range details {
		r.details[d.ID] = d
	}
	return r
}

func (r *RetirementRepo) Get(_ context.Context, id uuid.UUID) (*domain.RetirementDetail, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.details[id]
	if !ok {
		return nil, fmt.Errorf("%w: retirement detail %s", domain.ErrNotFound, id)
	}
	copied := *d
	return &copied, nil
}

func (r *RetirementRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.RetirementDetail, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.details {
		if d.UserID == userID {
			copied := *d
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: retirement detail for user %s", domain.ErrNotFound, userID)
}

func (r *RetirementRepo) Create(_ context.Context, detail *domain.RetirementDetail) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *detail
	r.details[detail.ID] = &copied
	return nil
}

func (r *RetirementRepo) Update(_ context.Context, detail *domain.RetirementDetail) error {
	return r.Create(context.Background(), detail)
}

func (r *RetirementRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	if r.Err != nil {
		return false, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.details[id]
	return ok, nil
}

func (r *RetirementRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.details, id)
	return nil
}

// UserRepo is an in-memory repository.UserRepository. ListByCountry pages in
// insertion order.
type UserRepo struct {
	mu    sync.Mutex
	users []*domain.User
	Err   error
}

func NewUserRepo(users ...*domain.User) *UserRepo {
	return &UserRepo{users: users}
}

func (r *UserRepo) Get(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: user %q", domain.ErrNotFound, username)
}

func (r *UserRepo) Create(_ context.Context, user *domain.User) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *UserRepo) Update(_ context.Context, user *domain.User) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == user.ID {
			copied := *user
			r.users[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("%w: user %s", domain.ErrNotFound, user.ID)
}

func (r *UserRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	if r.Err != nil {
		return false, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *UserRepo) ListByCountry(
	_ context.Context,
	country domain.Country,
	limit, offset int,
) ([]*domain.User, bool, error) {
	if r.Err != nil {
		return nil, false, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.User
	for _, u := range r.users {
		if u.Country == country {
			copied := *u
			matched = append(matched, &copied)
		}
	}
	if offset >= len(matched) {
		return nil, false, nil
	}
	end := offset + limit
	hasMore := end < len(matched)
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], hasMore, nil
}

// UnitOfWork is a fake repository.UnitOfWork over the in-memory repositories.
// Events queued with Publish inside Do are emitted on Bus only when fn returns
// nil, mirroring after-commit delivery; a failing fn drops them.
type UnitOfWork struct {
	Accounts    *AccountRepo
	Histories   *HistoryRepo
	Retirements *RetirementRepo
	Users       *UserRepo
	Bus         *Bus
	DoErr       error // when set, Do fails without running fn

	pending []events.Event
}

func NewUnitOfWork(bus *Bus) *UnitOfWork {
	return &UnitOfWork{
		Accounts:    NewAccountRepo(),
		Histories:   NewHistoryRepo(),
		Retirements: NewRetirementRepo(),
		Users:       NewUserRepo(),
		Bus:         bus,
	}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.DoErr != nil {
		return u.DoErr
	}
	u.pending = nil
	if err := fn(u); err != nil {
		u.pending = nil
		return err
	}
	pending := u.pending
	u.pending = nil
	if u.Bus != nil {
		for _, e := range pending {
			_ = u.Bus.Emit(ctx, e)
		}
	}
	return nil
}

func (u *UnitOfWork) Publish(e events.Event) {
	u.pending = append(u.pending, e)
}

func (u *UnitOfWork) AccountRepository() repository.AccountRepository { return u.Accounts }
func (u *UnitOfWork) AccountHistoryRepository() repository.AccountHistoryRepository {
	return u.Histories
}
func (u *UnitOfWork) RetirementRepository() repository.RetirementRepository { return u.Retirements }
func (u *UnitOfWork) UserRepository() repository.UserRepository             { return u.Users }

// InflationSource returns scripted series per country.
type InflationSource struct {
	Series map[domain.Country]*provider.Series
	Errs   map[domain.Country]error
	Calls  []domain.Country
}

func NewInflationSource() *InflationSource {
	return &InflationSource{
		Series: make(map[domain.Country]*provider.Series),
		Errs:   make(map[domain.Country]error),
	}
}

func (s *InflationSource) FetchMonthlySeries(
	_ context.Context,
	country domain.Country,
	_, _ int,
) (*provider.Series, error) {
	s.Calls = append(s.Calls, country)
	if err := s.Errs[country]; err != nil {
		return nil, err
	}
	return s.Series[country], nil
}

var (
	_ eventbus.Bus                    = (*Bus)(nil)
	_ repository.UnitOfWork           = (*UnitOfWork)(nil)
	_ provider.InflationSource        = (*InflationSource)(nil)
	_ repository.AccountRepository    = (*AccountRepo)(nil)
	_ repository.UserRepository       = (*UserRepo)(nil)
	_ repository.RetirementRepository = (*RetirementRepo)(nil)
)
