//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/annuyadav31/CRUDExample/internal/pkg/config"
	"github.com/annuyadav31/CRUDExample/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_InsertsOnce(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	logger := testutil.SetupTestLogger(t)

	result, err := Seed(context.Background(), ctx.DB, logger)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Countries)
	assert.Equal(t, 8, result.Persons)

	again, err := Seed(context.Background(), ctx.DB, logger)
	require.NoError(t, err)
	assert.Zero(t, again.Countries)
	assert.Zero(t, again.Persons)

	list, err := ctx.PersonRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 8)
	for _, p := range list {
		require.NotNil(t, p.Country, p.Name)
		require.NoError(t, p.Validate(), p.Name)
	}
}
