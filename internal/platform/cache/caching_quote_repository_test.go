package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchlist_backend/internal/feature/watchlist/usecase"
)

// mockQuoteRepository is a function-field mock of the inner provider client.
type mockQuoteRepository struct {
	getQuoteFn func(ctx context.Context, symbol string) (float64, error)
	calls      int
}

func (m *mockQuoteRepository) GetQuote(ctx context.Context, symbol string) (float64, error) {
	m.calls++
	if m.getQuoteFn != nil {
		return m.getQuoteFn(ctx, symbol)
	}
	return 0, nil
}

// TestNewCachingQuoteRepository_Defaults verifies TTL and namespace defaults.
func TestNewCachingQuoteRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       time.Minute,
			expectedNamespace: "quotes",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -time.Minute,
			namespace:         "",
			expectedTTL:       time.Minute,
			expectedNamespace: "quotes",
		},
		{
			name:              "explicit values kept",
			ttl:               30 * time.Second,
			namespace:         "q",
			expectedTTL:       30 * time.Second,
			expectedNamespace: "q",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingQuoteRepository(nil, tt.ttl, &mockQuoteRepository{}, tt.namespace)

			assert.Equal(t, tt.expectedTTL, repo.ttl)
			assert.Equal(t, tt.expectedNamespace, repo.namespace)
		})
	}
}

// TestCachingQuoteRepository_NilRedisBypass verifies the decorator is a pure
// pass-through when Redis is not configured.
func TestCachingQuoteRepository_NilRedisBypass(t *testing.T) {
	t.Parallel()

	inner := &mockQuoteRepository{
		getQuoteFn: func(ctx context.Context, symbol string) (float64, error) {
			return 1520.5, nil
		},
	}
	repo := NewCachingQuoteRepository(nil, time.Minute, inner, "quotes")

	price, err := repo.GetQuote(context.Background(), "INFY")

	require.NoError(t, err)
	assert.Equal(t, 1520.5, price)
	assert.Equal(t, 1, inner.calls)
}

// TestCachingQuoteRepository_CacheHit verifies a hit never reaches the provider.
func TestCachingQuoteRepository_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("quotes:INFY").SetVal("1520.5")

	inner := &mockQuoteRepository{}
	repo := NewCachingQuoteRepository(rdb, time.Minute, inner, "quotes")

	price, err := repo.GetQuote(context.Background(), "INFY")

	require.NoError(t, err)
	assert.Equal(t, 1520.5, price)
	assert.Zero(t, inner.calls, "cache hit must not call the provider")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingQuoteRepository_CacheMiss verifies the fallback and best-effort
// cache write.
func TestCachingQuoteRepository_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("quotes:INFY").RedisNil()
	mock.ExpectSet("quotes:INFY", "1520.5", time.Minute).SetVal("OK")

	inner := &mockQuoteRepository{
		getQuoteFn: func(ctx context.Context, symbol string) (float64, error) {
			return 1520.5, nil
		},
	}
	repo := NewCachingQuoteRepository(rdb, time.Minute, inner, "quotes")

	price, err := repo.GetQuote(context.Background(), "INFY")

	require.NoError(t, err)
	assert.Equal(t, 1520.5, price)
	assert.Equal(t, 1, inner.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingQuoteRepository_CorruptEntry verifies a corrupted value is
// deleted and refetched.
func TestCachingQuoteRepository_CorruptEntry(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("quotes:INFY").SetVal("not-a-number")
	mock.ExpectDel("quotes:INFY").SetVal(1)
	mock.ExpectSet("quotes:INFY", "1530", time.Minute).SetVal("OK")

	inner := &mockQuoteRepository{
		getQuoteFn: func(ctx context.Context, symbol string) (float64, error) {
			return 1530, nil
		},
	}
	repo := NewCachingQuoteRepository(rdb, time.Minute, inner, "quotes")

	price, err := repo.GetQuote(context.Background(), "INFY")

	require.NoError(t, err)
	assert.Equal(t, 1530.0, price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingQuoteRepository_ErrorsNotCached verifies not-found and provider
// failures pass through without a cache write.
func TestCachingQuoteRepository_ErrorsNotCached(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		innerErr error
	}{
		{name: "not found passes through", innerErr: usecase.ErrQuoteNotFound},
		{name: "provider failure passes through", innerErr: errors.New("dial tcp: i/o timeout")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rdb, mock := redismock.NewClientMock()
			mock.ExpectGet("quotes:ZZZZZ").RedisNil()
			// No Set expectation: a write would fail ExpectationsWereMet

			inner := &mockQuoteRepository{
				getQuoteFn: func(ctx context.Context, symbol string) (float64, error) {
					return 0, tt.innerErr
				},
			}
			repo := NewCachingQuoteRepository(rdb, time.Minute, inner, "quotes")

			_, err := repo.GetQuote(context.Background(), "ZZZZZ")

			assert.ErrorIs(t, err, tt.innerErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// TestCachingQuoteRepository_RedisErrorFallsBack verifies a failing Redis is
// treated as a miss.
func TestCachingQuoteRepository_RedisErrorFallsBack(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("quotes:INFY").SetErr(errors.New("redis down"))
	mock.ExpectSet("quotes:INFY", "1520.5", time.Minute).SetErr(errors.New("redis down"))

	inner := &mockQuoteRepository{
		getQuoteFn: func(ctx context.Context, symbol string) (float64, error) {
			return 1520.5, nil
		},
	}
	repo := NewCachingQuoteRepository(rdb, time.Minute, inner, "quotes")

	price, err := repo.GetQuote(context.Background(), "INFY")

	require.NoError(t, err, "cache failures must not fail the lookup")
	assert.Equal(t, 1520.5, price)
}
