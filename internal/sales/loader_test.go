package sales

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader(nil)

	t.Run("parses well-formed rows", func(t *testing.T) {
		path := writeTempCSV(t,
			"date,item_name,category,quantity,unit_price\n"+
				"2025-06-02,Sarma,Mains,10,5.0\n"+
				"2025-06-03,Baklava,Desserts,4,3.5\n")

		ds, stats := loader.Load(path)

		require.Len(t, ds, 2)
		assert.Equal(t, 2, stats.RowsRead)
		assert.Equal(t, 0, stats.RowsDropped)
		assert.Empty(t, stats.MissingColumns)

		assert.Equal(t, "Sarma", ds[0].ItemName)
		assert.Equal(t, "Mains", ds[0].Category)
		assert.Equal(t, 10, ds[0].Quantity)
		assert.InDelta(t, 50.0, ds[0].Revenue, 1e-9)
		assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), ds[0].Date)
	})

	t.Run("recomputes revenue instead of trusting input", func(t *testing.T) {
		path := writeTempCSV(t,
			"date,item_name,category,quantity,unit_price,revenue\n"+
				"2025-06-02,Cevapi,Mains,3,8.0,9999\n")

		ds, _ := loader.Load(path)

		require.Len(t, ds, 1)
		assert.InDelta(t, 24.0, ds[0].Revenue, 1e-9)
	})

	t.Run("drops rows with unparseable dates", func(t *testing.T) {
		path := writeTempCSV(t,
			"date,item_name,category,quantity,unit_price\n"+
				"not-a-date,Sarma,Mains,10,5.0\n"+
				"2025-06-02,Cevapi,Mains,3,8.0\n"+
				",Rakija,Drinks,1,4.0\n")

		ds, stats := loader.Load(path)

		require.Len(t, ds, 1)
		assert.Equal(t, 3, stats.RowsRead)
		assert.Equal(t, 2, stats.RowsDropped)
		assert.Equal(t, "Cevapi", ds[0].ItemName)
	})

	t.Run("defaults malformed numeric fields", func(t *testing.T) {
		path := writeTempCSV(t,
			"date,item_name,category,quantity,unit_price\n"+
				"2025-06-02,Sarma,Mains,many,cheap\n")

		ds, _ := loader.Load(path)

		require.Len(t, ds, 1)
		assert.Equal(t, 0, ds[0].Quantity)
		assert.Equal(t, 0.0, ds[0].UnitPrice)
		assert.Equal(t, 0.0, ds[0].Revenue)
	})

	t.Run("reports missing columns and fills them empty", func(t *testing.T) {
		path := writeTempCSV(t,
			"date,item_name,quantity\n"+
				"2025-06-02,Sarma,10\n")

		ds, stats := loader.Load(path)

		require.Len(t, ds, 1)
		assert.ElementsMatch(t, []string{"category", "unit_price"}, stats.MissingColumns)
		assert.Equal(t, "", ds[0].Category)
		assert.Equal(t, 0.0, ds[0].UnitPrice)
	})

	t.Run("unreadable file yields empty dataset, not an error", func(t *testing.T) {
		ds, stats := loader.Load(filepath.Join(t.TempDir(), "missing.csv"))

		assert.True(t, ds.IsEmpty())
		assert.Equal(t, 0, stats.RowsRead)
	})

	t.Run("strips UTF-8 BOM from header", func(t *testing.T) {
		path := writeTempCSV(t,
			"\xEF\xBB\xBFdate,item_name,category,quantity,unit_price\n"+
				"2025-06-02,Sarma,Mains,10,5.0\n")

		ds, stats := loader.Load(path)

		require.Len(t, ds, 1)
		assert.Empty(t, stats.MissingColumns)
	})

	t.Run("accepts alternative header spellings", func(t *testing.T) {
		path := writeTempCSV(t,
			"Date,Item,Category,Qty,Price\n"+
				"2025-06-02,Sarma,Mains,10,5.0\n")

		ds, stats := loader.Load(path)

		require.Len(t, ds, 1)
		assert.Empty(t, stats.MissingColumns)
		assert.Equal(t, 10, ds[0].Quantity)
	})
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"iso date", "2025-06-02", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), true},
		{"iso datetime truncates to date", "2025-06-02 18:30:00", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), true},
		{"slash date", "2025/06/02", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), true},
		{"us date", "06/02/2025", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), true},
		{"garbage", "soon", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 12, parseQuantity("12"))
	assert.Equal(t, 12, parseQuantity("12.0"))
	assert.Equal(t, 0, parseQuantity("a dozen"))
	assert.Equal(t, 0, parseQuantity(""))
}
