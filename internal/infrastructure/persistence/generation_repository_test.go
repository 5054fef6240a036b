package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/contribution"
	"github.com/ppkgen/backend/internal/domain/filing"
	"github.com/ppkgen/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeneration(t *testing.T, organizationID uuid.UUID, generatedAt time.Time) *filing.Generation {
	t.Helper()
	dataset := &filing.Dataset{
		Employer: filing.Employer{
			Name:  "Test Sp. z o.o.",
			NIP:   "5261040828",
			REGON: "123456785",
		},
		Period:      contribution.Period{Year: 2025, Month: 12},
		GeneratedAt: generatedAt,
		Records: []contribution.Record{
			{
				PESEL:              "85032212342",
				FirstName:          "Anna",
				LastName:           "Kowalska",
				EmployeeBasic:      "94.38",
				EmployeeAdditional: "0.00",
				EmployerBasic:      "70.79",
				EmployerAdditional: "0.00",
				ReducedBasicFlag:   "N",
			},
		},
	}

	snapshot, err := filing.NewSnapshot(dataset).Encode()
	require.NoError(t, err)

	archive, err := filing.BuildArchive(filing.RenderDocument(dataset), filing.RenderTable(dataset), generatedAt)
	require.NoError(t, err)

	return filing.NewGeneration(organizationID, dataset, archive.ArchiveName, snapshot)
}

func TestGormGenerationRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("find by id returns the snapshot", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormGenerationRepository(db)
		org := createTestOrganization(t, db)

		generation := testGeneration(t, org.ID, time.Date(2025, 12, 10, 14, 30, 5, 0, time.Local))
		require.NoError(t, repo.Save(ctx, generation))

		found, err := repo.FindByID(ctx, generation.ID)
		require.NoError(t, err)
		assert.Equal(t, generation.ArchiveName, found.ArchiveName)
		assert.Equal(t, "94.38", found.TotalEmployeeBasic)
		assert.Equal(t, "70.79", found.TotalEmployerBasic)
		assert.Equal(t, 1, found.MemberCount)
		require.NotEmpty(t, found.Snapshot)

		// the stored snapshot still decodes into a renderable dataset
		snapshot, err := filing.DecodeSnapshot(found.Snapshot)
		require.NoError(t, err)
		assert.Len(t, snapshot.Records, 1)
	})

	t.Run("find by organization omits snapshots and orders newest first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormGenerationRepository(db)
		org := createTestOrganization(t, db)

		older := testGeneration(t, org.ID, time.Date(2025, 11, 10, 9, 0, 0, 0, time.Local))
		newer := testGeneration(t, org.ID, time.Date(2025, 12, 10, 14, 30, 5, 0, time.Local))
		require.NoError(t, repo.Save(ctx, older))
		require.NoError(t, repo.Save(ctx, newer))

		generations, err := repo.FindByOrganization(ctx, org.ID)
		require.NoError(t, err)
		require.Len(t, generations, 2)

		assert.Equal(t, newer.ID, generations[0].ID)
		assert.Equal(t, older.ID, generations[1].ID)
		assert.Empty(t, generations[0].Snapshot)
		assert.Empty(t, generations[1].Snapshot)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormGenerationRepository(db)

		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
