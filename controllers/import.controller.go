package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"polygen-backend/importer"
	"polygen-backend/models"
)

const duplicateKeyCode = 11000

// ImportProducts menangani impor katalog massal dari file CSV/Excel.
// Baris yang valid disisipkan sekaligus; kegagalan satu baris (misalnya slug
// duplikat) tidak membatalkan baris lainnya. Hasilnya melaporkan jumlah baris
// yang benar-benar tersimpan plus daftar error per baris.
func (ctrl *Controller) ImportProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Please upload a CSV or Excel file"})
		return
	}
	defer file.Close()
	// Bersihkan file sementara multipart di setiap jalur keluar
	if c.Request.MultipartForm != nil {
		defer c.Request.MultipartForm.RemoveAll()
	}

	// Buang parameter charset dsb. dari Content-Type
	mimeType := strings.TrimSpace(strings.Split(header.Header.Get("Content-Type"), ";")[0])

	// Prasyarat diperiksa sebelum ada pekerjaan parsing
	if err := importer.CheckUpload(header.Size, mimeType); err != nil {
		status := http.StatusUnsupportedMediaType
		code := "UNSUPPORTED_MEDIA_TYPE"
		if errors.Is(err, importer.ErrPayloadTooLarge) {
			status = http.StatusRequestEntityTooLarge
			code = "PAYLOAD_TOO_LARGE"
		}
		c.JSON(status, gin.H{"code": code, "error": err.Error()})
		return
	}

	rows, err := importer.ParseRows(file, mimeType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": err.Error()})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "The file contains no data rows"})
		return
	}

	categories, err := ctrl.loadCategoryIndex(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
		return
	}

	result := models.ImportResult{Errors: []models.ImportRowError{}}

	// Validasi per baris; baris yang gagal dilaporkan, tidak pernah disimpan
	var docs []interface{}
	var rowNumbers []int
	now := time.Now()
	for _, row := range rows {
		product, issues := importer.BuildProduct(row, categories)
		if len(issues) > 0 {
			result.Errors = append(result.Errors, models.ImportRowError{Row: row.Number, Issues: issues})
			continue
		}
		product.CreatedAt = now
		product.UpdatedAt = now
		docs = append(docs, product)
		rowNumbers = append(rowNumbers, row.Number)
	}

	if len(docs) > 0 {
		opts := options.InsertMany().SetOrdered(false)
		_, err := ctrl.DB.Collection("products").InsertMany(ctx, docs, opts)
		switch {
		case err == nil:
			result.InsertedCount = len(docs)
		default:
			var bulkErr mongo.BulkWriteException
			if !errors.As(err, &bulkErr) {
				c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": err.Error()})
				return
			}
			// Penyisipan unordered: hanya baris yang gagal yang hilang
			result.InsertedCount = len(docs) - len(bulkErr.WriteErrors)
			for _, writeErr := range bulkErr.WriteErrors {
				issue := "database rejected this row"
				if writeErr.Code == duplicateKeyCode {
					issue = "a product with this slug already exists"
				}
				result.Errors = append(result.Errors, models.ImportRowError{
					Row:    rowNumbers[writeErr.Index],
					Issues: []string{issue},
				})
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// loadCategoryIndex memetakan ID hex dan slug kategori ke ObjectID-nya,
// sehingga spreadsheet boleh merujuk kategori lewat salah satunya.
func (ctrl *Controller) loadCategoryIndex(ctx context.Context) (map[string]primitive.ObjectID, error) {
	cursor, err := ctrl.DB.Collection("categories").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	index := make(map[string]primitive.ObjectID)
	for cursor.Next(ctx) {
		var category models.Category
		if err := cursor.Decode(&category); err != nil {
			return nil, err
		}
		index[category.ID.Hex()] = category.ID
		index[category.Slug] = category.ID
	}
	return index, cursor.Err()
}
