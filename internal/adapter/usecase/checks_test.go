package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundraiser/internal/core/domain"
)

func TestNotExpired(t *testing.T) {
	const start = int64(1_700_000_000)
	tests := []struct {
		name string
		now  int64
		days uint8
		want bool
	}{
		{"at start", start, 3, true},
		{"one day in", start + domain.SecondsPerDay, 3, true},
		{"last second", start + 3*domain.SecondsPerDay - 1, 3, true},
		{"closing instant", start + 3*domain.SecondsPerDay, 3, false},
		{"four days in", start + 4*domain.SecondsPerDay, 3, false},
		{"zero duration", start, 0, false},
		{"max duration", start + 255*domain.SecondsPerDay - 1, 255, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notExpired(start, tt.days, tt.now))
		})
	}
}

func TestSufficientBalance(t *testing.T) {
	assert.True(t, sufficientBalance(101, 100))
	assert.False(t, sufficientBalance(100, 100), "entire balance may not be contributed")
	assert.False(t, sufficientBalance(99, 100))

	err := requireSufficientBalance(100, 100)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestCheckedAdd(t *testing.T) {
	sum, err := checkedAdd(50_000_000, 50_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000_000), sum)

	_, err = checkedAdd(math.MaxUint64, 1)
	require.ErrorIs(t, err, domain.ErrArithmeticOverflow)
}

func TestRequireEmptyAndInitialized(t *testing.T) {
	a := &domain.Account{}
	require.NoError(t, requireEmpty(a, "campaign"))
	require.ErrorIs(t, requireInitialized(a, "campaign"), domain.ErrUninitializedAccount)

	a.Data = make([]byte, domain.CampaignLen)
	require.ErrorIs(t, requireEmpty(a, "campaign"), domain.ErrAccountAlreadyInitialized)
	require.NoError(t, requireInitialized(a, "campaign"))
}
