package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"auroramart/internal/taxonomy"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `SKU code,Product name,Product description,Product category,Quantity on hand,Reorder Quantity,Unit price,Product rating
ELEC-001,Noise Cancelling Headphones,Over-ear,Electronics & Gadgets,25,5,"$1,299.50",4.6
HOME-010,Cast Iron Pan,,Home and Kitchen,0,,24.90,-1
,Orphan row,,Books,3,1,9.90,4
BOOK-100,,Paperback,literature,7.0,0,oops,9
GARD-001,Hose,Garden hose,Garden,4,2,15,3.5
`

func TestParse_HeaderLookupIsCaseInsensitive(t *testing.T) {
	ds, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, 5, ds.Len())

	col, ok := ds.Column("sku", "sku code")
	assert.True(t, ok)
	assert.Equal(t, 0, col)

	_, ok = ds.Column("model_id", "product_id")
	assert.False(t, ok)

	assert.Equal(t, "", ds.Value([]string{"a"}, 5))
	assert.Equal(t, "", ds.Value([]string{"a"}, -1))
}

func TestParse_Latin1Fallback(t *testing.T) {
	// "Café" encoded as ISO-8859-1
	content := []byte("sku,name\nC-1,Caf\xe9 Beans\n")

	ds, err := Parse(content)
	require.NoError(t, err)
	assert.Equal(t, "Café Beans", ds.Rows[0][1])
}

func TestParse_StripsBOMAndRejectsEmpty(t *testing.T) {
	ds, err := Parse([]byte("\xef\xbb\xbfSKU,Name\nA,B\n"))
	require.NoError(t, err)
	_, ok := ds.Column("sku")
	assert.True(t, ok)

	_, err = Parse([]byte(""))
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	ds, err := Read(strings.NewReader("sku\nA\nB\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())

	var nilDS *Dataset
	assert.Equal(t, 0, nilDS.Len())
}

func TestProductRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0644))

	ds, err := ReadFile(path)
	require.NoError(t, err)

	records, skipped, err := ProductRecords(ds, taxonomy.NewResolver(nil))
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, records, 4)

	headphones := records[0]
	assert.Equal(t, "ELEC-001", headphones.SKU)
	assert.Equal(t, taxonomy.SlugElectronics, headphones.Category)
	assert.Equal(t, "Electronics & Gadgets", headphones.RawCategory)
	assert.True(t, decimal.RequireFromString("1299.50").Equal(headphones.Price))
	assert.Equal(t, 25, headphones.Stock)
	assert.Equal(t, 5, headphones.ReorderThreshold)
	assert.InDelta(t, 4.6, headphones.Rating, 0.0001)

	pan := records[1]
	assert.Equal(t, taxonomy.SlugHomeKitchen, pan.Category)
	assert.Equal(t, 0, pan.Stock)
	assert.Equal(t, 10, pan.ReorderThreshold)
	assert.Equal(t, 0.0, pan.Rating)

	book := records[2]
	assert.Equal(t, "BOOK-100", book.Name)
	assert.Equal(t, taxonomy.SlugBooks, book.Category)
	assert.Equal(t, 7, book.Stock)
	assert.True(t, book.Price.IsZero())
	assert.Equal(t, 5.0, book.Rating)

	assert.Equal(t, taxonomy.SlugOther, records[3].Category)

	model := headphones.ToModel()
	assert.Equal(t, "ELEC-001", model.SKU)
	assert.NoError(t, model.Validate())
}

func TestProductRecords_MissingColumns(t *testing.T) {
	ds, err := Parse([]byte("name,price\nA,1\n"))
	require.NoError(t, err)

	_, _, err = ProductRecords(ds, taxonomy.NewResolver(nil))
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, SKUColumns, missing.Candidates)
	assert.Contains(t, err.Error(), "sku code")
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, 0, ParseCount("-4"))
	assert.Equal(t, 3, ParseCount("3.9"))
	assert.Equal(t, 0, ParseCount("NaN"))
	assert.Equal(t, 0, ParseCount("many"))
	assert.True(t, ParsePrice("-5").IsZero())
	assert.True(t, decimal.NewFromFloat(12.35).Equal(ParsePrice(" 12.345 ")))
}
