package contractservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gigpay/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestGetContract(t *testing.T) {
	contract := &domain.Contract{ID: 1, Terms: "bla bla bla", Status: domain.ContractTerminated, ClientID: 1, ContractorID: 5}

	tests := []struct {
		name             string
		callerID         int
		prepareMock      func(repo *MockRepo)
		expectedContract *domain.Contract
		expectedError    error
	}{
		{
			name:     "Client reads own contract",
			callerID: 1,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(contract, nil)
			},
			expectedContract: contract,
		},
		{
			name:     "Contractor reads own contract",
			callerID: 5,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(contract, nil)
			},
			expectedContract: contract,
		},
		{
			name:     "Stranger is forbidden",
			callerID: 3,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(contract, nil)
			},
			expectedError: ErrNotContractParty,
		},
		{
			name:     "Contract does not exist",
			callerID: 1,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrContractNotFound,
		},
		{
			name:     "Repository error",
			callerID: 1,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			got, err := service.GetContract(context.Background(), 1, tt.callerID)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedContract, got)
		})
	}
}

func TestListContracts(t *testing.T) {
	service, repo := NewMock(t)
	contracts := []domain.Contract{{ID: 2, Status: domain.ContractInProgress, ClientID: 1, ContractorID: 6}}
	repo.EXPECT().Find(gomock.Any(), domain.ContractFilter{PartyID: 1, StatusNot: domain.ContractTerminated}).Return(contracts, nil)

	got, err := service.ListContracts(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, contracts, got)

	repo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
	_, err = service.ListContracts(context.Background(), 1)
	assert.Error(t, err)
}
