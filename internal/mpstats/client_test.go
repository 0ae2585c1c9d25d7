package mpstats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esolll/reviewlens/internal/platform/config"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(&config.Config{
		MpstatsBaseURL: srv.URL,
		MpstatsAPIKey:  "test-key",
		MaxReviews:     3,
		ProductTimeout: 5 * time.Second,
		ReviewsTimeout: 5 * time.Second,
		RateLimitRPS:   100,
	}, zerolog.Nop())
}

func TestProduct(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wb/get/item/123456", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Mpstats-TOKEN"))

		_, _ = w.Write([]byte(`{"item":{"name":"Сушилка для овощей","brand":"Home","rating":4.2,"comments":340,"final_price":1290,"price":1590}}`))
	}))

	p, err := client.Product(context.Background(), "123456")
	require.NoError(t, err)

	assert.Equal(t, "123456", p.ID)
	assert.Equal(t, "Сушилка для овощей", p.Name)
	assert.Equal(t, "Home", p.Brand)
	assert.InDelta(t, 4.2, p.Rating, 0.001)
	assert.Equal(t, 340, p.ReviewCount)
	assert.InDelta(t, 1290.0, p.Price, 0.001)
}

func TestProductFallbacks(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"item":{"price":990}}`))
	}))

	p, err := client.Product(context.Background(), "777777")
	require.NoError(t, err)

	assert.Equal(t, "Товар WB 777777", p.Name)
	assert.InDelta(t, 990.0, p.Price, 0.001)
}

func TestProductNotFound(t *testing.T) {
	t.Run("empty item", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"item":null}`))
		}))

		_, err := client.Product(context.Background(), "123456")
		require.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("http 404", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.Product(context.Background(), "123456")
		require.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestReviews(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wb/get/item/123456/comments", r.URL.Path)

		_, _ = w.Write([]byte(`{"comments":[
			{"text":"Товар пришел вовремя, качество отличное","valuation":5,"date":"2026-03-01","answer":"Спасибо за отзыв!"},
			{"text":"ок","valuation":4},
			{"text":"Совсем не работает, очень разочарован покупкой"},
			{"text":"Запах ужасный, пришлось долго проветривать","valuation":2,"date":"01.03.2026"},
			{"text":"Лишний отзыв за пределами лимита выборки","valuation":1}
		]}`))
	}))

	reviews, err := client.Reviews(context.Background(), "123456")
	require.NoError(t, err)

	// The cap keeps the first three comments; of those the two-rune body
	// is dropped.
	require.Len(t, reviews, 2)

	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "Спасибо за отзыв!", reviews[0].SellerReply)
	assert.Equal(t, "2026-03-01", reviews[0].RawDate)
	assert.Equal(t, 2026, reviews[0].Date.Year())

	// Missing valuation defaults to five stars.
	assert.Equal(t, 5, reviews[1].Rating)
	assert.True(t, reviews[1].Date.IsZero())
}

func TestReviewsUnavailable(t *testing.T) {
	t.Run("empty feed", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"comments":[]}`))
		}))

		_, err := client.Reviews(context.Background(), "123456")
		require.ErrorIs(t, err, ErrReviewsUnavailable)
	})

	t.Run("http 500", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.Reviews(context.Background(), "123456")
		require.ErrorIs(t, err, ErrReviewsUnavailable)
	})

	t.Run("only short bodies", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"comments":[{"text":"ок","valuation":5}]}`))
		}))

		_, err := client.Reviews(context.Background(), "123456")
		require.ErrorIs(t, err, ErrReviewsUnavailable)
	})
}
