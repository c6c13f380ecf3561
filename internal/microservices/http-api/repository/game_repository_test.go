package repository

import (
	"context"
	"testing"

	"gamerental/internal/microservices/http-api/models"
	"gamerental/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedConsoles(t *testing.T, db *gorm.DB, names ...string) []uint {
	t.Helper()
	ids := make([]uint, 0, len(names))
	for _, n := range names {
		c := &models.Console{Name: n, Price: 100}
		require.NoError(t, db.Create(c).Error)
		ids = append(ids, c.ID)
	}
	return ids
}

func TestGameRepository_LinkPlatforms(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewGameRepository(db)
	consoles := seedConsoles(t, db, "PS5", "Xbox")

	g := &models.Game{Name: "X", Genre: "Y", ESRB: "T", Price: 10}
	require.NoError(t, repo.Create(ctx, g))

	failed := repo.LinkPlatforms(ctx, g.ID, []uint{consoles[1], consoles[0], consoles[0]})
	assert.Empty(t, failed)

	ids, err := repo.PlatformIDs(ctx, g.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, consoles, ids)

	// relinking an existing pair is not a failure
	assert.Empty(t, repo.LinkPlatforms(ctx, g.ID, []uint{consoles[0]}))

	games, err := repo.GamesForConsole(ctx, consoles[0])
	require.NoError(t, err)
	assert.Equal(t, []uint{g.ID}, games)
}

func TestGameRepository_LinkPlatformsReportsMissingConsoles(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewGameRepository(db)
	consoles := seedConsoles(t, db, "PS5")

	g := &models.Game{Name: "X", Genre: "Y", ESRB: "T", Price: 10}
	require.NoError(t, repo.Create(ctx, g))

	failed := repo.LinkPlatforms(ctx, g.ID, []uint{consoles[0], 999})
	assert.Equal(t, []uint{999}, failed)

	ids, err := repo.PlatformIDs(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, consoles, ids)
}

func TestGameRepository_ReplacePlatforms(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewGameRepository(db)
	consoles := seedConsoles(t, db, "PS5", "Xbox", "Switch")

	g := &models.Game{Name: "X", Genre: "Y", ESRB: "T", Price: 10}
	require.NoError(t, repo.Create(ctx, g))
	require.Empty(t, repo.LinkPlatforms(ctx, g.ID, consoles[:2]))

	failed, err := repo.ReplacePlatforms(ctx, g.ID, consoles[2:])
	require.NoError(t, err)
	assert.Empty(t, failed)

	ids, err := repo.PlatformIDs(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, consoles[2:], ids)
}

func TestGameRepository_DeleteCascadesToPlatforms(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewGameRepository(db)
	consoles := seedConsoles(t, db, "PS5")

	g := &models.Game{Name: "X", Genre: "Y", ESRB: "T", Price: 10}
	require.NoError(t, repo.Create(ctx, g))
	require.Empty(t, repo.LinkPlatforms(ctx, g.ID, consoles))

	ok, err := repo.Delete(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	games, err := repo.GamesForConsole(ctx, consoles[0])
	require.NoError(t, err)
	assert.Empty(t, games)
}
