package reportservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/pkg/cache"
)

//go:generate mockgen -source=reportservice.go -destination=mock_reportservice.go -package=reportservice

type Repo interface {
	TopProfession(ctx context.Context, start, end time.Time) (*domain.ProfessionEarning, error)
	TopClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientPayment, error)
}

const DefaultClientsLimit = 2

var ErrInvalidRange = fmt.Errorf("invalid date range: %w", domain.ErrConflict)

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

type Service struct {
	repo  Repo
	cache cache.Cache
	group singleflight.Group
}

// New builds the reporter. A nil cache disables caching.
func New(repo Repo, c cache.Cache) *Service {
	return &Service{
		repo:  repo,
		cache: c,
	}
}

func parseTime(value string) (t time.Time, dateOnly bool, err error) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		t, err = time.Parse(layout, value)
		if err == nil {
			return t, layout == time.DateOnly, nil
		}
	}
	return time.Time{}, false, err
}

// ParseRange parses an inclusive reporting window. A date-only end covers the whole day.
// A start after the end is not an error; the window is simply empty.
func ParseRange(start, end string) (time.Time, time.Time, error) {
	from, _, err := parseTime(start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start %q: %w", start, ErrInvalidRange)
	}
	to, dateOnly, err := parseTime(end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end %q: %w", end, ErrInvalidRange)
	}
	if dateOnly {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

// NormalizeLimit falls back to DefaultClientsLimit when limit is missing or not positive.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultClientsLimit
	}
	return limit
}

func cacheKey(report string, start, end time.Time, extra ...int) string {
	key := fmt.Sprintf("gigpay:report:%s:%d:%d", report, start.UnixNano(), end.UnixNano())
	for _, v := range extra {
		key += fmt.Sprintf(":%d", v)
	}
	return key
}

// BestProfession returns the profession that earned the most in the window, or "" if nothing was paid.
func (s *Service) BestProfession(ctx context.Context, start, end string) (string, error) {
	from, to, err := ParseRange(start, end)
	if err != nil {
		return "", err
	}
	if from.After(to) {
		return "", nil
	}

	return cache.Remember(ctx, s.cache, &s.group, cacheKey("best-profession", from, to), func(ctx context.Context) (string, error) {
		earning, err := s.repo.TopProfession(ctx, from, to)
		if err != nil {
			zap.L().Error("failed to compute best profession", zap.Error(err))
			return "", domain.Classify(ctx, "best profession", err)
		}
		if earning == nil {
			return "", nil
		}
		return earning.Profession, nil
	})
}

// BestClients returns the clients that paid the most in the window, highest first.
func (s *Service) BestClients(ctx context.Context, start, end string, limit int) ([]domain.ClientPayment, error) {
	from, to, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return []domain.ClientPayment{}, nil
	}
	limit = NormalizeLimit(limit)

	return cache.Remember(ctx, s.cache, &s.group, cacheKey("best-clients", from, to, limit), func(ctx context.Context) ([]domain.ClientPayment, error) {
		clients, err := s.repo.TopClients(ctx, from, to, limit)
		if err != nil {
			zap.L().Error("failed to compute best clients", zap.Error(err))
			return nil, domain.Classify(ctx, "best clients", err)
		}
		return clients, nil
	})
}
