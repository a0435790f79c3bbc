package profileservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gigpay/internal/domain"
)

func TestGetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)

	profile := &domain.Profile{ID: 1, FirstName: "Harry", LastName: "Potter", Role: domain.RoleClient}
	repo.EXPECT().FindByID(gomock.Any(), 1).Return(profile, nil)
	repo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
	repo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, errors.New("db error"))

	got, err := service.GetProfile(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, profile, got)

	_, err = service.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.GetProfile(context.Background(), 2)
	assert.EqualError(t, err, "db error")
}
