package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/taskfarm/internal/domain"
)

func TestNewWallet(t *testing.T) {
	w, err := NewWallet(DefaultStartingBalance)
	require.NoError(t, err)
	assert.Equal(t, 50, w.Balance())

	_, err = NewWallet(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestDebit(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		amount      int
		wantErr     error
		wantBalance int
	}{
		{"normal debit", 50, 2, nil, 48},
		{"exact balance", 5, 5, nil, 0},
		{"zero amount", 5, 0, nil, 5},
		{"insufficient", 3, 4, domain.ErrInsufficientFunds, 3},
		{"negative", 3, -1, domain.ErrInvalidAmount, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWallet(tt.start)
			require.NoError(t, err)

			err = w.Debit(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantBalance, w.Balance())
		})
	}
}

func TestCredit(t *testing.T) {
	w, _ := NewWallet(0)

	require.NoError(t, w.Credit(5))
	require.NoError(t, w.Credit(0))
	assert.Equal(t, 5, w.Balance())

	err := w.Credit(-3)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Equal(t, 5, w.Balance())
}

func TestCanAfford(t *testing.T) {
	w, _ := NewWallet(10)
	assert.True(t, w.CanAfford(10))
	assert.False(t, w.CanAfford(11))
	assert.False(t, w.CanAfford(-1))
}

func TestBalanceNeverNegative(t *testing.T) {
	w, _ := NewWallet(3)
	for i := 0; i < 10; i++ {
		_ = w.Debit(2)
		assert.GreaterOrEqual(t, w.Balance(), 0)
	}
	assert.Equal(t, 1, w.Balance())
}
