//go:build integration
// +build integration

package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/pkg/config"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"
	"github.com/annuyadav31/CRUDExample/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDatabaseAndServices(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	ctx := context.Background()

	db, err := OpenDatabase(ctx, config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"}, true, log)
	require.NoError(t, err)

	services, err := NewServices(db, log)
	require.NoError(t, err)

	countryList, err := services.Countries.GetCountryList(ctx)
	require.NoError(t, err)
	assert.Len(t, countryList, 5)

	all, err := services.Persons.GetAllPersons(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 8)

	for _, format := range persons.ExportFormats {
		var buf bytes.Buffer
		require.NoError(t, services.PersonExport.Export(ctx, format, &buf), format)
		assert.NotZero(t, buf.Len(), format)
	}
}

type collectingLogger struct {
	mu    *sync.Mutex
	lines *[]string
}

func newCollectingLogger() collectingLogger {
	return collectingLogger{mu: &sync.Mutex{}, lines: &[]string{}}
}

func (l collectingLogger) add(args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.lines = append(*l.lines, fmt.Sprint(args...))
}

func (l collectingLogger) count(prefix string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, line := range *l.lines {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func (l collectingLogger) Debug(args ...interface{})           { l.add(args...) }
func (l collectingLogger) Info(args ...interface{})            { l.add(args...) }
func (l collectingLogger) Warn(args ...interface{})            { l.add(args...) }
func (l collectingLogger) Error(args ...interface{})           { l.add(args...) }
func (l collectingLogger) Fatal(args ...interface{})           { l.add(args...) }
func (l collectingLogger) Panic(args ...interface{})           { l.add(args...) }
func (l collectingLogger) With(_ ...interface{}) logger.Logger { return l }

func TestOpenDatabase_ReportsSeedOnce(t *testing.T) {
	log := newCollectingLogger()

	_, err := OpenDatabase(context.Background(), config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"}, true, log)
	require.NoError(t, err)

	assert.Equal(t, 1, log.count("Seeded 5 countries and 8 persons"))
	assert.Equal(t, 1, log.count("Database migrations completed"))
}
