package employer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/employer"
	"github.com/ppkgen/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrganizationRepository is a mock implementation of OrganizationRepository
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*employer.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employer.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindAll(ctx context.Context) ([]employer.Organization, error) {
	args := m.Called(ctx)
	return args.Get(0).([]employer.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) Save(ctx context.Context, org *employer.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMemberRepository is a mock implementation of MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*employer.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employer.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]employer.Member, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).([]employer.Member), args.Error(1)
}

func (m *MockMemberRepository) ActiveMemberIDs(ctx context.Context, organizationID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockMemberRepository) Save(ctx context.Context, member *employer.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testOrganization(t *testing.T) *employer.Organization {
	t.Helper()
	org, err := employer.NewOrganization("Test Sp. z o.o.", "5261040828", "123456785", "Jan Nowak")
	require.NoError(t, err)
	return org
}

func TestMemberService_Create(t *testing.T) {
	t.Run("derives birth date and sex from identifier", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		orgRepo := new(MockOrganizationRepository)
		service := NewMemberService(memberRepo, orgRepo)

		org := testOrganization(t)
		orgRepo.On("FindByID", mock.Anything, org.ID).Return(org, nil)
		memberRepo.On("Save", mock.Anything, mock.AnythingOfType("*employer.Member")).Return(nil)

		resp, err := service.Create(context.Background(), org.ID, CreateMemberRequest{
			PESEL:     "85032212342",
			FirstName: "Anna",
			LastName:  "Kowalska",
		})

		require.NoError(t, err)
		assert.Equal(t, "1985-03-22", resp.BirthDate)
		assert.Equal(t, "K", resp.Sex)
		assert.Equal(t, "PL", resp.Citizenship)
		assert.Equal(t, "active", resp.Status)
		memberRepo.AssertExpectations(t)
	})

	t.Run("rejects invalid identifier without saving", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		orgRepo := new(MockOrganizationRepository)
		service := NewMemberService(memberRepo, orgRepo)

		org := testOrganization(t)
		orgRepo.On("FindByID", mock.Anything, org.ID).Return(org, nil)

		_, err := service.Create(context.Background(), org.ID, CreateMemberRequest{
			PESEL:     "85032212349",
			FirstName: "Anna",
			LastName:  "Kowalska",
		})

		assert.Error(t, err)
		memberRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("fails when the organization does not exist", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		orgRepo := new(MockOrganizationRepository)
		service := NewMemberService(memberRepo, orgRepo)

		orgID := uuid.New()
		orgRepo.On("FindByID", mock.Anything, orgID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(context.Background(), orgID, CreateMemberRequest{
			PESEL:     "85032212342",
			FirstName: "Anna",
			LastName:  "Kowalska",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("applies optional fields", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		orgRepo := new(MockOrganizationRepository)
		service := NewMemberService(memberRepo, orgRepo)

		org := testOrganization(t)
		orgRepo.On("FindByID", mock.Anything, org.ID).Return(org, nil)
		memberRepo.On("Save", mock.Anything, mock.AnythingOfType("*employer.Member")).Return(nil)

		resp, err := service.Create(context.Background(), org.ID, CreateMemberRequest{
			PESEL:       "85032212342",
			FirstName:   "Anna",
			LastName:    "Kowalska",
			SecondName:  "Maria",
			Citizenship: "DE",
			DocType:     "passport",
			DocNumber:   "AA1234567",
		})

		require.NoError(t, err)
		assert.Equal(t, "Maria", resp.SecondName)
		assert.Equal(t, "DE", resp.Citizenship)
		assert.Equal(t, "passport", resp.DocType)
	})
}

func TestMemberService_Update(t *testing.T) {
	t.Run("keeps identifier-derived fields", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		orgRepo := new(MockOrganizationRepository)
		service := NewMemberService(memberRepo, orgRepo)

		member, err := employer.NewMember(uuid.New(), "85032212342", "Anna", "Kowalska")
		require.NoError(t, err)

		memberRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)
		memberRepo.On("Save", mock.Anything, member).Return(nil)

		resp, err := service.Update(context.Background(), member.ID, UpdateMemberRequest{
			FirstName: "Anna",
			LastName:  "Nowak",
			Status:    "inactive",
		})

		require.NoError(t, err)
		assert.Equal(t, "Nowak", resp.LastName)
		assert.Equal(t, "inactive", resp.Status)
		assert.Equal(t, "1985-03-22", resp.BirthDate)
		assert.Equal(t, "K", resp.Sex)
	})
}

func TestMemberService_ValidatePESEL(t *testing.T) {
	service := NewMemberService(new(MockMemberRepository), new(MockOrganizationRepository))

	t.Run("valid identifier", func(t *testing.T) {
		resp := service.ValidatePESEL(ValidatePESELRequest{PESEL: "85032212342"})
		assert.True(t, resp.Valid)
		assert.Equal(t, "1985-03-22", resp.BirthDate)
		assert.Equal(t, "K", resp.Sex)
		assert.Empty(t, resp.Error)
	})

	t.Run("invalid identifier reports the reason", func(t *testing.T) {
		resp := service.ValidatePESEL(ValidatePESELRequest{PESEL: "85032212349"})
		assert.False(t, resp.Valid)
		assert.NotEmpty(t, resp.Error)
		assert.Empty(t, resp.BirthDate)
	})
}

func TestOrganizationService_Create(t *testing.T) {
	t.Run("registers a valid employer", func(t *testing.T) {
		orgRepo := new(MockOrganizationRepository)
		service := NewOrganizationService(orgRepo)

		orgRepo.On("Save", mock.Anything, mock.AnythingOfType("*employer.Organization")).Return(nil)

		resp, err := service.Create(context.Background(), CreateOrganizationRequest{
			Name:  "Test Sp. z o.o.",
			NIP:   "5261040828",
			REGON: "123456785",
		})

		require.NoError(t, err)
		assert.Equal(t, "Test Sp. z o.o.", resp.Name)
		orgRepo.AssertExpectations(t)
	})

	t.Run("rejects a bad registration number", func(t *testing.T) {
		orgRepo := new(MockOrganizationRepository)
		service := NewOrganizationService(orgRepo)

		_, err := service.Create(context.Background(), CreateOrganizationRequest{
			Name:  "Test Sp. z o.o.",
			NIP:   "1234567890",
			REGON: "123456785",
		})

		assert.Error(t, err)
		orgRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
