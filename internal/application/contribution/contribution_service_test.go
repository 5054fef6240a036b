package contribution

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/contribution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockContributionRepository is a mock implementation of the contribution
// Repository
type MockContributionRepository struct {
	mock.Mock
}

func (m *MockContributionRepository) ListForPeriod(ctx context.Context, organizationID uuid.UUID, period contribution.Period) ([]contribution.Record, error) {
	args := m.Called(ctx, organizationID, period)
	return args.Get(0).([]contribution.Record), args.Error(1)
}

func (m *MockContributionRepository) FindLatestByMember(ctx context.Context, memberID uuid.UUID) (*contribution.Contribution, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contribution.Contribution), args.Error(1)
}

func (m *MockContributionRepository) Upsert(ctx context.Context, params contribution.UpsertParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockContributionRepository) InsertIfAbsent(ctx context.Context, c *contribution.Contribution) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func (m *MockContributionRepository) AvailablePeriods(ctx context.Context, organizationID uuid.UUID) ([]contribution.Period, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).([]contribution.Period), args.Error(1)
}

// MockMemberSource is a mock implementation of MemberSource
type MockMemberSource struct {
	mock.Mock
}

func (m *MockMemberSource) ActiveMemberIDs(ctx context.Context, organizationID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func newTestService(repo *MockContributionRepository, members *MockMemberSource) *ContributionService {
	return NewContributionService(repo, contribution.NewReconciler(members, repo))
}

func stringPtr(s string) *string { return &s }

func TestContributionService_Upsert(t *testing.T) {
	t.Run("passes validated params through", func(t *testing.T) {
		repo := new(MockContributionRepository)
		service := newTestService(repo, new(MockMemberSource))

		memberID := uuid.New()
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(p contribution.UpsertParams) bool {
			return p.MemberID == memberID &&
				p.Period == contribution.Period{Year: 2025, Month: 12} &&
				p.EmployeeBasic != nil && *p.EmployeeBasic == "94.38" &&
				p.EmployerBasic == nil
		})).Return(nil)

		err := service.Upsert(context.Background(), UpsertContributionRequest{
			MemberID:      memberID,
			Year:          2025,
			Month:         12,
			EmployeeBasic: stringPtr("94.38"),
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a negative amount before touching storage", func(t *testing.T) {
		repo := new(MockContributionRepository)
		service := newTestService(repo, new(MockMemberSource))

		err := service.Upsert(context.Background(), UpsertContributionRequest{
			MemberID:      uuid.New(),
			Year:          2025,
			Month:         12,
			EmployeeBasic: stringPtr("-1.00"),
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown flag value", func(t *testing.T) {
		repo := new(MockContributionRepository)
		service := newTestService(repo, new(MockMemberSource))

		err := service.Upsert(context.Background(), UpsertContributionRequest{
			MemberID:         uuid.New(),
			Year:             2025,
			Month:            12,
			ReducedBasicFlag: stringPtr("X"),
		})

		assert.Error(t, err)
	})
}

func TestContributionService_Prefill(t *testing.T) {
	t.Run("reports the number of inserted rows", func(t *testing.T) {
		repo := new(MockContributionRepository)
		members := new(MockMemberSource)
		service := newTestService(repo, members)

		orgID := uuid.New()
		memberID := uuid.New()
		members.On("ActiveMemberIDs", mock.Anything, orgID).Return([]uuid.UUID{memberID}, nil)
		repo.On("FindLatestByMember", mock.Anything, memberID).Return(
			contribution.NewPrefilled(memberID, contribution.Period{Year: 2025, Month: 11},
				"94.38", "0.00", "70.79", "0.00", contribution.FlagNotSet), nil)
		repo.On("InsertIfAbsent", mock.Anything, mock.AnythingOfType("*contribution.Contribution")).Return(true, nil)

		resp, err := service.Prefill(context.Background(), orgID, PrefillRequest{Year: 2025, Month: 12})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Inserted)
	})

	t.Run("rejects an invalid period", func(t *testing.T) {
		service := newTestService(new(MockContributionRepository), new(MockMemberSource))

		_, err := service.Prefill(context.Background(), uuid.New(), PrefillRequest{Year: 2025, Month: 13})

		assert.Error(t, err)
	})
}

func TestContributionService_ListForPeriod(t *testing.T) {
	t.Run("rejects an invalid period", func(t *testing.T) {
		repo := new(MockContributionRepository)
		service := newTestService(repo, new(MockMemberSource))

		_, err := service.ListForPeriod(context.Background(), uuid.New(), 2025, 0)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "ListForPeriod", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("returns the joined records", func(t *testing.T) {
		repo := new(MockContributionRepository)
		service := newTestService(repo, new(MockMemberSource))

		orgID := uuid.New()
		period := contribution.Period{Year: 2025, Month: 12}
		repo.On("ListForPeriod", mock.Anything, orgID, period).Return([]contribution.Record{
			{PESEL: "85032212342", LastName: "Kowalska"},
		}, nil)

		records, err := service.ListForPeriod(context.Background(), orgID, 2025, 12)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Kowalska", records[0].LastName)
	})
}
