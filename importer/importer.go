// Package importer mengurai dan memvalidasi spreadsheet impor katalog.
//
// Format kolom yang dikenali: name, slug, category_id, description, price,
// parameters, applications, images, metadata. Daftar nilai dipisah "|",
// grup parameter dipisah ";" dengan bentuk "Label: nilai1 | nilai2",
// metadata berupa objek JSON.
package importer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"polygen-backend/models"
)

// MaxUploadSize adalah batas ukuran file impor (5MB).
const MaxUploadSize = 5 * 1024 * 1024

var allowedMIMETypes = map[string]bool{
	"text/csv":                 true,
	"application/csv":          true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

var excelMIMETypes = map[string]bool{
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

var (
	// ErrUnsupportedMediaType dikembalikan untuk tipe file di luar daftar izin.
	ErrUnsupportedMediaType = errors.New("only CSV and Excel files are supported")
	// ErrPayloadTooLarge dikembalikan untuk file yang melebihi MaxUploadSize.
	ErrPayloadTooLarge = fmt.Errorf("import file exceeds the %dMB limit", MaxUploadSize/(1024*1024))
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Row adalah satu baris data yang diurai dari spreadsheet.
// Number mengikuti penomoran spreadsheet (baris header = 1).
type Row struct {
	Number int
	Fields map[string]string
}

// CheckUpload memvalidasi prasyarat impor sebelum ada pekerjaan parsing.
func CheckUpload(size int64, mimeType string) error {
	if !allowedMIMETypes[mimeType] {
		return ErrUnsupportedMediaType
	}
	if size > MaxUploadSize {
		return ErrPayloadTooLarge
	}
	return nil
}

// ParseRows mengurai file impor menjadi baris-baris ber-key nama kolom.
// Baris pertama dianggap header; baris yang seluruh selnya kosong dilewati.
func ParseRows(r io.Reader, mimeType string) ([]Row, error) {
	if excelMIMETypes[mimeType] {
		return parseXLSX(r)
	}
	return parseCSV(r)
}

func parseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV file: %w", err)
	}

	return recordsToRows(records), nil
}

func parseXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("the Excel file contains no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading Excel sheet: %w", err)
	}

	return recordsToRows(records), nil
}

// recordsToRows mengubah baris mentah menjadi Row ber-key header.
func recordsToRows(records [][]string) []Row {
	if len(records) == 0 {
		return nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		fields := make(map[string]string, len(headers))
		empty := true
		for j, header := range headers {
			if header == "" || j >= len(record) {
				continue
			}
			value := strings.TrimSpace(record[j])
			fields[header] = value
			if value != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		// +2: satu untuk baris header, satu untuk penomoran 1-based
		rows = append(rows, Row{Number: i + 2, Fields: fields})
	}

	return rows
}

// BuildProduct memvalidasi satu baris dan mengubahnya menjadi Product.
// Semua teks bebas di-escape sebagai HTML; metadata (JSON terstruktur)
// sengaja dikecualikan dari escaping. Daftar issue yang tidak kosong
// berarti baris tersebut tidak boleh disimpan.
func BuildProduct(row Row, categories map[string]primitive.ObjectID) (*models.Product, []string) {
	var issues []string

	name := strings.TrimSpace(row.Fields["name"])
	if name == "" {
		issues = append(issues, "name is required")
	}

	slug := strings.ToLower(strings.TrimSpace(row.Fields["slug"]))
	if slug == "" {
		slug = Slugify(name)
	}
	if slug != "" && !slugPattern.MatchString(slug) {
		issues = append(issues, "slug must contain only lowercase letters, digits, and hyphens")
	}

	var categoryID primitive.ObjectID
	rawCategory := strings.TrimSpace(row.Fields["category_id"])
	if rawCategory == "" {
		issues = append(issues, "category_id is required")
	} else if id, ok := categories[rawCategory]; ok {
		categoryID = id
	} else {
		issues = append(issues, fmt.Sprintf("unknown category %q", rawCategory))
	}

	var price *float64
	if raw := strings.TrimSpace(row.Fields["price"]); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			issues = append(issues, "price must be numeric")
		} else if value < 0 {
			issues = append(issues, "price must not be negative")
		} else {
			price = &value
		}
	}

	parameters, paramIssues := parseParameters(row.Fields["parameters"])
	issues = append(issues, paramIssues...)

	var metadata map[string]interface{}
	if raw := strings.TrimSpace(row.Fields["metadata"]); raw != "" {
		if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
			issues = append(issues, "metadata must be a JSON object")
		}
	}

	if len(issues) > 0 {
		return nil, issues
	}

	return &models.Product{
		Slug:         slug,
		Name:         html.EscapeString(name),
		Description:  html.EscapeString(strings.TrimSpace(row.Fields["description"])),
		CategoryID:   categoryID,
		Price:        price,
		Parameters:   parameters,
		Applications: splitList(row.Fields["applications"], true),
		Images:       splitList(row.Fields["images"], false),
		Metadata:     metadata,
	}, nil
}

// parseParameters mengurai kolom parameters: grup dipisah ";",
// label dan nilai dipisah ":", nilai-nilai dipisah "|".
func parseParameters(raw string) ([]models.ParameterGroup, []string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var groups []models.ParameterGroup
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		label, values, found := strings.Cut(part, ":")
		if !found || strings.TrimSpace(label) == "" {
			return nil, []string{`parameters must use the form "Label: value | value; ..."`}
		}
		group := models.ParameterGroup{
			Label:  html.EscapeString(strings.TrimSpace(label)),
			Values: splitList(values, true),
		}
		if len(group.Values) == 0 {
			return nil, []string{fmt.Sprintf("parameter %q has no values", strings.TrimSpace(label))}
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// splitList memecah daftar yang dipisah "|". URL gambar tidak di-escape
// agar query string tetap utuh.
func splitList(raw string, escape bool) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(raw, "|") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if escape {
			item = html.EscapeString(item)
		}
		items = append(items, item)
	}
	return items
}

// Slugify menurunkan slug URL-safe dari sebuah nama.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
