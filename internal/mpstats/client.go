package mpstats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/esolll/reviewlens/internal/core/domain"
	"github.com/esolll/reviewlens/internal/platform/config"
)

const (
	tokenHeader     = "X-Mpstats-TOKEN" //nolint:gosec
	minBodyRunes    = 15
	defaultRating   = 5
	limiterBurst    = 2
	productPathFmt  = "%s/api/wb/get/item/%s"
	commentsPathFmt = "%s/api/wb/get/item/%s/comments"
)

var (
	// ErrProductNotFound is returned when the catalog has no item for the
	// article, including the API answering 200 with an empty item.
	ErrProductNotFound = errors.New("product not found")
	// ErrReviewsUnavailable is returned when the comments feed is missing
	// or empty for an existing product.
	ErrReviewsUnavailable = errors.New("reviews unavailable")

	errUnexpectedStatus = errors.New("unexpected mpstats status")
)

// Client talks to the mpstats.io Wildberries endpoints.
type Client struct {
	baseURL    string
	apiKey     string
	maxReviews int
	limiter    *rate.Limiter

	productClient *http.Client
	reviewsClient *http.Client

	logger zerolog.Logger
}

func New(cfg *config.Config, logger zerolog.Logger) *Client {
	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = 1
	}

	return &Client{
		baseURL:       strings.TrimRight(cfg.MpstatsBaseURL, "/"),
		apiKey:        cfg.MpstatsAPIKey,
		maxReviews:    cfg.MaxReviews,
		limiter:       rate.NewLimiter(rate.Limit(rps), limiterBurst),
		productClient: &http.Client{Timeout: cfg.ProductTimeout},
		reviewsClient: &http.Client{Timeout: cfg.ReviewsTimeout},
		logger:        logger.With().Str("component", "mpstats").Logger(),
	}
}

// Product fetches the catalog card for one article.
func (c *Client) Product(ctx context.Context, articleID string) (*domain.Product, error) {
	var payload struct {
		Item *struct {
			Name       string  `json:"name"`
			Brand      string  `json:"brand"`
			Rating     float64 `json:"rating"`
			Comments   int     `json:"comments"`
			FinalPrice float64 `json:"final_price"` //nolint:tagliatelle
			Price      float64 `json:"price"`
		} `json:"item"`
	}

	url := fmt.Sprintf(productPathFmt, c.baseURL, articleID)

	if err := c.get(ctx, c.productClient, url, &payload); err != nil {
		if errors.Is(err, errUnexpectedStatus) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, articleID)
		}

		return nil, err
	}

	if payload.Item == nil {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, articleID)
	}

	item := payload.Item

	name := item.Name
	if name == "" {
		name = "Товар WB " + articleID
	}

	price := item.FinalPrice
	if price == 0 {
		price = item.Price
	}

	return &domain.Product{
		ID:          articleID,
		Name:        name,
		Brand:       item.Brand,
		Rating:      item.Rating,
		ReviewCount: item.Comments,
		Price:       price,
	}, nil
}

// Reviews fetches up to maxReviews comments for one article, keeping only
// bodies of at least fifteen characters. A missing rating counts as five
// stars; mpstats omits it on old reviews.
func (c *Client) Reviews(ctx context.Context, articleID string) ([]domain.Review, error) {
	var payload struct {
		Comments []struct {
			Text      string `json:"text"`
			Valuation *int   `json:"valuation"`
			Date      string `json:"date"`
			Answer    string `json:"answer"`
		} `json:"comments"`
	}

	url := fmt.Sprintf(commentsPathFmt, c.baseURL, articleID)

	if err := c.get(ctx, c.reviewsClient, url, &payload); err != nil {
		if errors.Is(err, errUnexpectedStatus) {
			return nil, fmt.Errorf("%w: %s", ErrReviewsUnavailable, articleID)
		}

		return nil, err
	}

	if len(payload.Comments) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrReviewsUnavailable, articleID)
	}

	comments := payload.Comments
	if len(comments) > c.maxReviews {
		comments = comments[:c.maxReviews]
	}

	reviews := make([]domain.Review, 0, len(comments))

	for _, comment := range comments {
		if utf8.RuneCountInString(strings.TrimSpace(comment.Text)) < minBodyRunes {
			continue
		}

		rating := defaultRating
		if comment.Valuation != nil {
			rating = *comment.Valuation
		}

		review := domain.Review{
			Body:        comment.Text,
			Rating:      rating,
			RawDate:     comment.Date,
			SellerReply: comment.Answer,
		}

		if comment.Date != "" {
			if parsed, err := dateparse.ParseAny(comment.Date); err == nil {
				review.Date = parsed
			}
		}

		reviews = append(reviews, review)
	}

	if len(reviews) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrReviewsUnavailable, articleID)
	}

	c.logger.Debug().Str("article", articleID).Int("reviews", len(reviews)).Msg("fetched reviews")

	return reviews, nil
}

func (c *Client) get(ctx context.Context, client *http.Client, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("mpstats rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set(tokenHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("mpstats request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("mpstats response")

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode mpstats response: %w", err)
	}

	return nil
}
