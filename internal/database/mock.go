package database

import (
	"github.com/stretchr/testify/mock"
)

type MockFinderRepository struct {
	mock.Mock
}

func (m *MockFinderRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockFinderRepository) CreateAccount(params CreateAccountParams) (int64, error) {
	args := m.Called(params)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockFinderRepository) GetAllAccounts() ([]Account, error) {
	args := m.Called()
	return args.Get(0).([]Account), args.Error(1)
}
func (m *MockFinderRepository) GetAccountById(id int64) (*Account, error) {
	args := m.Called(id)
	if account, ok := args.Get(0).(*Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockFinderRepository) GetAccountByUsername(username string) (*Account, error) {
	args := m.Called(username)
	if account, ok := args.Get(0).(*Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockFinderRepository) CreateActivity(params ActivityParams) (int64, error) {
	args := m.Called(params)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockFinderRepository) GetAllActivities() ([]Activity, error) {
	args := m.Called()
	return args.Get(0).([]Activity), args.Error(1)
}
func (m *MockFinderRepository) GetActivitiesByAccountId(accountId int64) ([]Activity, error) {
	args := m.Called(accountId)
	return args.Get(0).([]Activity), args.Error(1)
}
func (m *MockFinderRepository) GetActivityById(id int64) (*Activity, error) {
	args := m.Called(id)
	if activity, ok := args.Get(0).(*Activity); ok {
		return activity, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockFinderRepository) UpdateActivityById(id int64, params ActivityParams) (bool, error) {
	args := m.Called(id, params)
	return args.Bool(0), args.Error(1)
}
func (m *MockFinderRepository) DeleteActivityById(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}
