package portal_test

import (
	"context"
	"testing"

	"flexzone/internal/api"
	"flexzone/internal/models"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBackend mocks the backend calls the views make
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) HandleLogin(ctx context.Context, email string) (*models.LoginResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoginResult), args.Error(1)
}

func (m *MockBackend) Register(ctx context.Context, form models.RegistrationForm) (*models.RegistrationResult, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegistrationResult), args.Error(1)
}

func (m *MockBackend) GetProfile(ctx context.Context) (*models.MemberProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MemberProfile), args.Error(1)
}

func (m *MockBackend) GetBarcode(ctx context.Context, memberID string) (*models.Barcode, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Barcode), args.Error(1)
}

func (m *MockBackend) GetAssignedTrainer(ctx context.Context, memberID string) (*models.Trainer, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trainer), args.Error(1)
}

func (m *MockBackend) GetPaymentDetails(ctx context.Context, memberID string) (*models.PaymentRecord, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentRecord), args.Error(1)
}

func (m *MockBackend) GetPlans(ctx context.Context) (*models.PlanCatalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlanCatalog), args.Error(1)
}

func (m *MockBackend) CreateOrder(ctx context.Context, memberID string, plan models.Plan) (*models.OrderResponse, error) {
	args := m.Called(ctx, memberID, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderResponse), args.Error(1)
}

// newSession returns a store in a temp dir holding the given token and member ID
func newSession(t *testing.T, token, memberID string) *models.SessionStore {
	t.Helper()
	store := models.NewSessionStore(t.TempDir())
	if token != "" {
		require.NoError(t, store.SetSession(token, memberID))
	} else if memberID != "" {
		require.NoError(t, store.SetMemberID(memberID))
	}
	return store
}

func httpError(status int, body string) error {
	return &api.HTTPError{Method: "GET", Path: "/test", Status: status, Body: []byte(body)}
}
