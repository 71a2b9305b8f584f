package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	users       int64
	withBalance int64
	total       float64
	txs         int64
	err         error
}

func (f *fakeCounter) CountUsers(context.Context) (int64, error)            { return f.users, f.err }
func (f *fakeCounter) CountUsersWithBalance(context.Context) (int64, error) { return f.withBalance, f.err }
func (f *fakeCounter) TotalBalance(context.Context) (float64, error)        { return f.total, f.err }
func (f *fakeCounter) CountTransactions(context.Context) (int64, error)     { return f.txs, f.err }

type fakeGames struct{ n int }

func (f *fakeGames) ActiveCount() int { return f.n }

func TestBuildReport(t *testing.T) {
	s := NewService(&fakeCounter{users: 1234, withBalance: 56, total: 7890.5, txs: 4321}, &fakeGames{n: 3})

	r, err := s.BuildReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1234), r.TotalUsers)
	assert.Equal(t, int64(56), r.UsersWithBalance)
	assert.Equal(t, 7890.5, r.TotalBalance)
	assert.Equal(t, int64(4321), r.TotalTransactions)
	assert.Equal(t, 3, r.ActiveGames)
	assert.False(t, r.GeneratedAt.IsZero())
}

func TestBuildReportStorageError(t *testing.T) {
	errDown := errors.New("db down")
	s := NewService(&fakeCounter{err: errDown}, &fakeGames{})

	_, err := s.BuildReport(context.Background())
	assert.ErrorIs(t, err, errDown)
}

func TestFormatReport(t *testing.T) {
	r := &Report{
		TotalUsers:        1234,
		UsersWithBalance:  56,
		TotalBalance:      7890.5,
		TotalTransactions: 4321,
		ActiveGames:       2,
	}

	out := FormatReport(r)
	assert.Contains(t, out, "📊 **Bot Statistics**")
	assert.Contains(t, out, "• Total Users: 1,234")
	assert.Contains(t, out, "• Users with Balance: 56")
	assert.Contains(t, out, "• Total Balance: 7,890.50")
	assert.Contains(t, out, "• Total Transactions: 4,321")
	assert.Contains(t, out, "• Active Games: 2")
}
