package reportservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/pkg/cache"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo, nil), repo
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name          string
		start, end    string
		expectedStart time.Time
		expectedEnd   time.Time
		expectedError error
	}{
		{
			name:          "RFC3339",
			start:         "2020-08-10T00:00:00Z",
			end:           "2020-08-20T12:30:00Z",
			expectedStart: time.Date(2020, 8, 10, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2020, 8, 20, 12, 30, 0, 0, time.UTC),
		},
		{
			name:          "Date only end covers the whole day",
			start:         "2020-08-10",
			end:           "2020-08-20",
			expectedStart: time.Date(2020, 8, 10, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2020, 8, 20, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:          "Space separated",
			start:         "2020-08-10 10:00:00",
			end:           "2020-08-10 10:00:00",
			expectedStart: time.Date(2020, 8, 10, 10, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2020, 8, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			name:          "Unparsable start",
			start:         "not-a-date",
			end:           "2020-08-20",
			expectedError: ErrInvalidRange,
		},
		{
			name:          "Empty end",
			start:         "2020-08-10",
			end:           "",
			expectedError: ErrInvalidRange,
		},
		{
			name:          "Start after end is accepted",
			start:         "2020-08-21",
			end:           "2020-08-20",
			expectedStart: time.Date(2020, 8, 21, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2020, 8, 20, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseRange(tt.start, tt.end)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.ErrorIs(t, err, domain.ErrConflict)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expectedStart.Equal(start), "start %v", start)
			assert.True(t, tt.expectedEnd.Equal(end), "end %v", end)
		})
	}
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, 2, NormalizeLimit(0))
	assert.Equal(t, 2, NormalizeLimit(-3))
	assert.Equal(t, 3, NormalizeLimit(3))
	assert.Equal(t, 250, NormalizeLimit(250))
	assert.Equal(t, 1000, NormalizeLimit(1000))
}

func TestBestProfession(t *testing.T) {
	tests := []struct {
		name          string
		start         string
		prepareMock   func(repo *MockRepo)
		expected      string
		expectedError error
	}{
		{
			name:  "Highest earning profession",
			start: "2020-08-01",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().TopProfession(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.ProfessionEarning{Profession: "designer", MoneyEarned: 1200}, nil)
			},
			expected: "designer",
		},
		{
			name:  "Nothing paid in window",
			start: "2020-08-01",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().TopProfession(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expected: "",
		},
		{
			name:          "Invalid start",
			start:         "not-a-date",
			prepareMock:   func(repo *MockRepo) {},
			expectedError: ErrInvalidRange,
		},
		{
			name:  "Query fails",
			start: "2020-08-01",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().TopProfession(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedError: domain.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			got, err := service.BestProfession(context.Background(), tt.start, "2020-08-31")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBestClients(t *testing.T) {
	ranked := []domain.ClientPayment{
		{ID: 3, FullName: "Ash Kethcum", Paid: 900},
		{ID: 1, FullName: "Harry Potter", Paid: 500},
	}

	tests := []struct {
		name          string
		limit         int
		prepareMock   func(repo *MockRepo)
		expected      []domain.ClientPayment
		expectedError error
	}{
		{
			name:  "Top two clients",
			limit: 2,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().TopClients(gomock.Any(), gomock.Any(), gomock.Any(), 2).Return(ranked, nil)
			},
			expected: ranked,
		},
		{
			name:  "Missing limit uses default",
			limit: 0,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().TopClients(gomock.Any(), gomock.Any(), gomock.Any(), DefaultClientsLimit).Return(ranked, nil)
			},
			expected: ranked,
		},
		{
			name:  "Large limit is passed through",
			limit: 250,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().TopClients(gomock.Any(), gomock.Any(), gomock.Any(), 250).Return(ranked, nil)
			},
			expected: ranked,
		},
		{
			name:  "No payments",
			limit: 5,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().TopClients(gomock.Any(), gomock.Any(), gomock.Any(), 5).Return([]domain.ClientPayment{}, nil)
			},
			expected: []domain.ClientPayment{},
		},
		{
			name:  "Query fails",
			limit: 2,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().TopClients(gomock.Any(), gomock.Any(), gomock.Any(), 2).Return(nil, errors.New("db down"))
			},
			expectedError: domain.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			got, err := service.BestClients(context.Background(), "2020-08-01", "2020-08-31", tt.limit)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBestClients_InvalidRangeCheckedBeforeQuery(t *testing.T) {
	service, _ := NewMock(t)
	_, err := service.BestClients(context.Background(), "2020-09-01", "yesterday", 2)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestReports_ReversedWindowIsEmpty(t *testing.T) {
	service, _ := NewMock(t)

	profession, err := service.BestProfession(context.Background(), "2021-01-01", "2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, "", profession)

	clients, err := service.BestClients(context.Background(), "2021-01-01", "2020-01-01", 2)
	require.NoError(t, err)
	assert.Empty(t, clients)
	assert.NotNil(t, clients)
}

func TestBestProfession_ServedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	c := cache.NewMockCache(ctrl)
	service := New(repo, c)

	gomock.InOrder(
		c.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, cache.ErrMiss),
		repo.EXPECT().TopProfession(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.ProfessionEarning{Profession: "Programmer", MoneyEarned: 2683}, nil),
		c.EXPECT().Set(gomock.Any(), gomock.Any(), []byte(`"Programmer"`)).Return(nil),
		c.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte(`"Programmer"`), nil),
	)

	for i := 0; i < 2; i++ {
		got, err := service.BestProfession(context.Background(), "2020-08-01", "2020-08-31")
		require.NoError(t, err)
		assert.Equal(t, "Programmer", got)
	}
}
