package eventlog

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRepository records calls for tests in this and the handler package
type MockRepository struct {
	mock.Mock
}

var _ Repository = (*MockRepository)(nil)

func (m *MockRepository) Append(ctx context.Context, entry Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockRepository) Query(ctx context.Context, filter EventFilter) ([]Event, error) {
	args := m.Called(ctx, filter)
	events, _ := args.Get(0).([]Event)
	return events, args.Error(1)
}

func (m *MockRepository) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}
