package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	csvMIME  = "text/csv"
	xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func testCategories() map[string]primitive.ObjectID {
	return map[string]primitive.ObjectID{
		"switchgear": primitive.NewObjectID(),
		"cables":     primitive.NewObjectID(),
	}
}

func TestCheckUpload_RejectsUnknownMIME(t *testing.T) {
	err := CheckUpload(100, "application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)
}

func TestCheckUpload_RejectsOversizedFile(t *testing.T) {
	err := CheckUpload(MaxUploadSize+1, csvMIME)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestCheckUpload_AcceptsAllowedTypes(t *testing.T) {
	for _, mime := range []string{csvMIME, "application/vnd.ms-excel", xlsxMIME} {
		assert.NoError(t, CheckUpload(1024, mime))
	}
}

func TestParseRows_CSVHeaderKeysAndRowNumbers(t *testing.T) {
	csv := "name,slug,category_id\n" +
		"Circuit Breaker,circuit-breaker,switchgear\n" +
		"Power Cable,power-cable,cables\n"

	rows, err := ParseRows(strings.NewReader(csv), csvMIME)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Baris header adalah baris 1, baris data pertama adalah baris 2
	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, 3, rows[1].Number)
	assert.Equal(t, "Circuit Breaker", rows[0].Fields["name"])
	assert.Equal(t, "cables", rows[1].Fields["category_id"])
}

func TestParseRows_SkipsEmptyRowsKeepsNumbering(t *testing.T) {
	csv := "name,category_id\n" +
		"First,switchgear\n" +
		",\n" +
		"Second,cables\n"

	rows, err := ParseRows(strings.NewReader(csv), csvMIME)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, 4, rows[1].Number)
}

func TestParseRows_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"name", "slug", "category_id"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Busbar", "busbar", "switchgear"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := ParseRows(bytes.NewReader(buf.Bytes()), xlsxMIME)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, "Busbar", rows[0].Fields["name"])
	assert.Equal(t, "switchgear", rows[0].Fields["category_id"])
}

func TestParseRows_InvalidExcel(t *testing.T) {
	_, err := ParseRows(strings.NewReader("definitely not a zip"), xlsxMIME)
	assert.Error(t, err)
}

func TestBuildProduct_ValidRow(t *testing.T) {
	categories := testCategories()
	row := Row{Number: 2, Fields: map[string]string{
		"name":         "Circuit Breaker MCB-32",
		"category_id":  "switchgear",
		"price":        "125.50",
		"parameters":   "Voltage: 220V | 380V; Mounting: DIN rail",
		"applications": "Residential | Industrial",
		"images":       "https://cdn.polygen.co/mcb-32.jpg?w=800&h=600",
		"metadata":     `{"warranty_years": 2}`,
	}}

	product, issues := BuildProduct(row, categories)
	require.Empty(t, issues)
	require.NotNil(t, product)

	assert.Equal(t, "circuit-breaker-mcb-32", product.Slug)
	assert.Equal(t, categories["switchgear"], product.CategoryID)
	require.NotNil(t, product.Price)
	assert.Equal(t, 125.50, *product.Price)

	require.Len(t, product.Parameters, 2)
	assert.Equal(t, "Voltage", product.Parameters[0].Label)
	assert.Equal(t, []string{"220V", "380V"}, product.Parameters[0].Values)
	assert.Equal(t, "Mounting", product.Parameters[1].Label)

	assert.Equal(t, []string{"Residential", "Industrial"}, product.Applications)
	// URL gambar tetap utuh, termasuk query string
	assert.Equal(t, []string{"https://cdn.polygen.co/mcb-32.jpg?w=800&h=600"}, product.Images)
	assert.Equal(t, float64(2), product.Metadata["warranty_years"])
}

func TestBuildProduct_MissingName(t *testing.T) {
	row := Row{Number: 3, Fields: map[string]string{"category_id": "switchgear"}}

	product, issues := BuildProduct(row, testCategories())
	assert.Nil(t, product)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "name is required")
}

func TestBuildProduct_MissingCategory(t *testing.T) {
	row := Row{Number: 2, Fields: map[string]string{"name": "Cable"}}

	product, issues := BuildProduct(row, testCategories())
	assert.Nil(t, product)
	assert.Contains(t, issues, "category_id is required")
}

func TestBuildProduct_UnknownCategory(t *testing.T) {
	row := Row{Number: 2, Fields: map[string]string{"name": "Cable", "category_id": "nonexistent"}}

	product, issues := BuildProduct(row, testCategories())
	assert.Nil(t, product)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "unknown category")
}

func TestBuildProduct_CollectsMultipleIssues(t *testing.T) {
	row := Row{Number: 2, Fields: map[string]string{
		"price":    "not-a-number",
		"metadata": "{broken",
	}}

	product, issues := BuildProduct(row, testCategories())
	assert.Nil(t, product)
	assert.Contains(t, issues, "name is required")
	assert.Contains(t, issues, "category_id is required")
	assert.Contains(t, issues, "price must be numeric")
	assert.Contains(t, issues, "metadata must be a JSON object")
}

func TestBuildProduct_NegativePrice(t *testing.T) {
	row := Row{Number: 2, Fields: map[string]string{
		"name":        "Cable",
		"category_id": "cables",
		"price":       "-5",
	}}

	_, issues := BuildProduct(row, testCategories())
	assert.Contains(t, issues, "price must not be negative")
}

func TestBuildProduct_InvalidSlug(t *testing.T) {
	row := Row{Number: 2, Fields: map[string]string{
		"name":        "Cable",
		"slug":        "not a slug!",
		"category_id": "cables",
	}}

	_, issues := BuildProduct(row, testCategories())
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "slug")
}

func TestBuildProduct_EscapesUntrustedText(t *testing.T) {
	row := Row{Number: 2, Fields: map[string]string{
		"name":        `<script>alert("x")</script>`,
		"slug":        "safe-slug",
		"category_id": "cables",
		"description": `a & b <i>c</i>`,
	}}

	product, issues := BuildProduct(row, testCategories())
	require.Empty(t, issues)
	assert.NotContains(t, product.Name, "<script>")
	assert.Contains(t, product.Name, "&lt;script&gt;")
	assert.Equal(t, "a &amp; b &lt;i&gt;c&lt;/i&gt;", product.Description)
}

func TestBuildProduct_MetadataNotEscaped(t *testing.T) {
	row := Row{Number: 2, Fields: map[string]string{
		"name":        "Cable",
		"category_id": "cables",
		"metadata":    `{"note": "a & b"}`,
	}}

	product, issues := BuildProduct(row, testCategories())
	require.Empty(t, issues)
	assert.Equal(t, "a & b", product.Metadata["note"])
}

func TestBuildProduct_MalformedParameters(t *testing.T) {
	row := Row{Number: 2, Fields: map[string]string{
		"name":        "Cable",
		"category_id": "cables",
		"parameters":  "just some text without a label separator",
	}}

	_, issues := BuildProduct(row, testCategories())
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "parameters")
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "circuit-breaker-mcb-32", Slugify("Circuit Breaker MCB-32"))
	assert.Equal(t, "power-cable", Slugify("  Power   Cable  "))
	assert.Equal(t, "abc-123", Slugify("ABC &*( 123"))
	assert.Equal(t, "", Slugify("!!!"))
}
