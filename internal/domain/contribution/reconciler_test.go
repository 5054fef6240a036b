package contribution

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMemberSource is a mock implementation of MemberSource
type MockMemberSource struct {
	mock.Mock
}

func (m *MockMemberSource) ActiveMemberIDs(ctx context.Context, organizationID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockContributionRepository is a mock implementation of Repository
type MockContributionRepository struct {
	mock.Mock
}

func (m *MockContributionRepository) ListForPeriod(ctx context.Context, organizationID uuid.UUID, period Period) ([]Record, error) {
	args := m.Called(ctx, organizationID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Record), args.Error(1)
}

func (m *MockContributionRepository) FindLatestByMember(ctx context.Context, memberID uuid.UUID) (*Contribution, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Contribution), args.Error(1)
}

func (m *MockContributionRepository) Upsert(ctx context.Context, params UpsertParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockContributionRepository) InsertIfAbsent(ctx context.Context, c *Contribution) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func (m *MockContributionRepository) AvailablePeriods(ctx context.Context, organizationID uuid.UUID) ([]Period, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Period), args.Error(1)
}

func TestReconcilerPrefill(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	target := Period{Year: 2025, Month: 12}

	t.Run("copies the most recent prior record", func(t *testing.T) {
		memberID := uuid.New()
		members := new(MockMemberSource)
		repo := new(MockContributionRepository)
		members.On("ActiveMemberIDs", ctx, orgID).Return([]uuid.UUID{memberID}, nil)

		latest := &Contribution{
			MemberID:           memberID,
			Period:             Period{Year: 2025, Month: 11},
			EmployeeBasic:      "94.38",
			EmployeeAdditional: "10.00",
			EmployerBasic:      "70.79",
			EmployerAdditional: "0.00",
			ReducedBasicFlag:   FlagNotSet,
		}
		repo.On("FindLatestByMember", ctx, memberID).Return(latest, nil)
		repo.On("InsertIfAbsent", ctx, mock.MatchedBy(func(c *Contribution) bool {
			return c.MemberID == memberID &&
				c.Period == target &&
				c.EmployeeBasic == "94.38" &&
				c.EmployerBasic == "70.79" &&
				c.Source == SourcePrefilled
		})).Return(true, nil)

		created, err := NewReconciler(members, repo).Prefill(ctx, orgID, target)
		require.NoError(t, err)
		assert.Equal(t, 1, created)
		repo.AssertExpectations(t)
	})

	t.Run("zero record for member with no history", func(t *testing.T) {
		memberID := uuid.New()
		members := new(MockMemberSource)
		repo := new(MockContributionRepository)
		members.On("ActiveMemberIDs", ctx, orgID).Return([]uuid.UUID{memberID}, nil)
		repo.On("FindLatestByMember", ctx, memberID).Return(nil, shared.ErrNotFound)
		repo.On("InsertIfAbsent", ctx, mock.MatchedBy(func(c *Contribution) bool {
			return c.EmployeeBasic == ZeroAmount &&
				c.EmployerAdditional == ZeroAmount &&
				c.ReducedBasicFlag == FlagNotSet &&
				c.Source == SourcePrefilled
		})).Return(true, nil)

		created, err := NewReconciler(members, repo).Prefill(ctx, orgID, target)
		require.NoError(t, err)
		assert.Equal(t, 1, created)
	})

	t.Run("existing period rows count as zero inserts", func(t *testing.T) {
		memberID := uuid.New()
		members := new(MockMemberSource)
		repo := new(MockContributionRepository)
		members.On("ActiveMemberIDs", ctx, orgID).Return([]uuid.UUID{memberID}, nil)
		repo.On("FindLatestByMember", ctx, memberID).Return(&Contribution{
			MemberID: memberID,
			Period:   target,
		}, nil)
		// The storage layer refuses the duplicate; the reconciler just counts.
		repo.On("InsertIfAbsent", ctx, mock.Anything).Return(false, nil)

		created, err := NewReconciler(members, repo).Prefill(ctx, orgID, target)
		require.NoError(t, err)
		assert.Equal(t, 0, created)
	})

	t.Run("rejects invalid period", func(t *testing.T) {
		members := new(MockMemberSource)
		repo := new(MockContributionRepository)
		_, err := NewReconciler(members, repo).Prefill(ctx, orgID, Period{Year: 2025, Month: 13})
		assert.Error(t, err)
	})
}
