package balance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"group-manager-bot/internal/common"
)

// fakeStore — стор в памяти с той же семантикой, что у Repository:
// атомарный upsert счёта + запись в журнал под одним замком.
type fakeStore struct {
	mu       sync.Mutex
	accounts map[int64]*UserAccount
	txs      []*Transaction
	failing  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{accounts: make(map[int64]*UserAccount)}
}

var errStorage = errors.New("storage down")

func (f *fakeStore) GetBalance(_ context.Context, userID int64) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return 0, errStorage
	}
	a, ok := f.accounts[userID]
	if !ok {
		return 0, nil
	}
	return a.Balance, nil
}

func (f *fakeStore) AddBalance(_ context.Context, userID int64, username string, amount float64, adminID int64) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return 0, errStorage
	}

	prev := 0.0
	if a, ok := f.accounts[userID]; ok {
		prev = a.Balance
	}
	newBalance := prev + amount

	f.accounts[userID] = &UserAccount{
		UserID:      userID,
		Username:    username,
		Balance:     newBalance,
		LastUpdated: time.Now(),
	}
	f.txs = append([]*Transaction{{
		UserID:          userID,
		Username:        username,
		Amount:          amount,
		TransactionType: TxTypeAddBalance,
		AdminID:         adminID,
		PreviousBalance: prev,
		NewBalance:      newBalance,
		CreatedAt:       time.Now(),
	}}, f.txs...)

	return newBalance, nil
}

func (f *fakeStore) GetUserInfo(_ context.Context, userID int64) (*UserAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[userID]
	if !ok {
		return nil, common.ErrUserNotFound
	}
	return a, nil
}

func (f *fakeStore) GetByUsername(_ context.Context, username string) (*UserAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, common.ErrUserNotFound
}

func (f *fakeStore) GetTransactionHistory(_ context.Context, userID int64, limit int) ([]*Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*Transaction
	for _, t := range f.txs {
		if t.UserID == userID {
			out = append(out, t)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) ListWithBalance(_ context.Context) ([]*UserAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*UserAccount
	for _, a := range f.accounts {
		if a.Balance > 0 {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestAddBalanceScenario(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	s := NewService(store)

	nb, err := s.AddBalance(ctx, 1, "bob", 100, 9)
	require.NoError(t, err)
	assert.Equal(t, 100.0, nb)

	nb, err = s.AddBalance(ctx, 1, "bob", 50, 9)
	require.NoError(t, err)
	assert.Equal(t, 150.0, nb)

	bal, err := s.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 150.0, bal)

	txs, err := s.GetTransactionHistory(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	// Самая свежая первой
	assert.Equal(t, 50.0, txs[0].Amount)
	assert.Equal(t, 100.0, txs[0].PreviousBalance)
	assert.Equal(t, 150.0, txs[0].NewBalance)
	assert.Equal(t, int64(9), txs[0].AdminID)
}

func TestAddBalanceRoundTrip(t *testing.T) {
	// Каждое успешное начисление добавляет ровно одну транзакцию,
	// чей new_balance равен текущему балансу
	ctx := context.Background()
	store := newFakeStore()
	s := NewService(store)

	amounts := []float64{10, 25.5, 3, 100}
	for _, a := range amounts {
		_, err := s.AddBalance(ctx, 7, "carol", a, 9)
		require.NoError(t, err)

		bal, err := s.GetBalance(ctx, 7)
		require.NoError(t, err)

		txs, err := s.GetTransactionHistory(ctx, 7, 100)
		require.NoError(t, err)
		assert.Equal(t, bal, txs[0].NewBalance)
	}

	txs, _ := s.GetTransactionHistory(ctx, 7, 100)
	assert.Len(t, txs, len(amounts))
}

func TestAddBalanceSumIdempotence(t *testing.T) {
	// Баланс после N начислений равен точной сумме N сумм
	ctx := context.Background()
	s := NewService(newFakeStore())

	total := 0.0
	for i := 1; i <= 20; i++ {
		amt := float64(i)
		_, err := s.AddBalance(ctx, 3, "dave", amt, 9)
		require.NoError(t, err)
		total += amt
	}

	bal, err := s.GetBalance(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, total, bal)
}

func TestAddBalanceRejectsNonPositive(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	s := NewService(store)

	_, err := s.AddBalance(ctx, 1, "bob", 0, 9)
	assert.ErrorIs(t, err, common.ErrInvalidAmount)

	_, err = s.AddBalance(ctx, 1, "bob", -5, 9)
	assert.ErrorIs(t, err, common.ErrInvalidAmount)

	// Леджер не тронут
	bal, _ := s.GetBalance(ctx, 1)
	assert.Equal(t, 0.0, bal)
	assert.Empty(t, store.txs)
}

func TestAddBalanceStorageFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.failing = true
	s := NewService(store)

	_, err := s.AddBalance(ctx, 1, "bob", 100, 9)
	assert.ErrorIs(t, err, errStorage)
}

func TestGetBalanceUnknownUser(t *testing.T) {
	ctx := context.Background()
	s := NewService(newFakeStore())

	bal, err := s.GetBalance(ctx, 404)
	require.NoError(t, err)
	assert.Equal(t, 0.0, bal)
}

func TestListWithBalanceSorted(t *testing.T) {
	ctx := context.Background()
	s := NewService(newFakeStore())

	s.AddBalance(ctx, 1, "low", 10, 9)
	s.AddBalance(ctx, 2, "high", 500, 9)
	s.AddBalance(ctx, 3, "mid", 100, 9)

	accounts, err := s.ListWithBalance(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "high", accounts[0].Username)
	assert.Equal(t, "mid", accounts[1].Username)
	assert.Equal(t, "low", accounts[2].Username)
}
