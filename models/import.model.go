package models

// ImportRowError mencatat kegagalan validasi atau penyisipan untuk satu baris.
// Nomor baris mengikuti penomoran spreadsheet: baris header adalah baris 1.
type ImportRowError struct {
	Row    int      `json:"row"`
	Issues []string `json:"issues"`
}

// ImportResult adalah hasil satu kali operasi impor katalog.
// Hanya dikembalikan ke pemanggil, tidak pernah disimpan.
type ImportResult struct {
	InsertedCount int              `json:"inserted_count"`
	Errors        []ImportRowError `json:"errors"`
}
