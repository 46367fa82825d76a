package testutil

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// CreateCountriesWorkbook builds an .xlsx file whose sheet holds a header row
// followed by one country name per row in column A.
func CreateCountriesWorkbook(t *testing.T, sheet string, names ...string) []byte {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}

	require.NoError(t, f.SetCellValue(sheet, "A1", "CountryName"))
	for i, name := range names {
		require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), name))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}
