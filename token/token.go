// Package token menerbitkan dan memverifikasi token sesi admin.
package token

import (
	"errors"
	"time"

	"github.com/o1egl/paseto"
)

const footer = "polygen-admin"

// ErrUnauthenticated dikembalikan untuk token yang hilang, rusak, dipalsukan,
// atau sudah kedaluwarsa.
var ErrUnauthenticated = errors.New("missing, invalid, or expired session token")

// Payload adalah isi token sesi yang sudah terverifikasi.
type Payload struct {
	AdminID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Maker menerbitkan token sesi terenkripsi dengan masa berlaku tetap.
// Tidak ada sliding session: verifikasi tidak pernah memperpanjang masa berlaku.
type Maker struct {
	key      []byte
	lifetime time.Duration
}

// NewMaker membuat Maker baru. Kunci harus tepat 32 byte.
func NewMaker(key []byte, lifetime time.Duration) (*Maker, error) {
	if len(key) != 32 {
		return nil, errors.New("token secret key must be exactly 32 bytes")
	}
	if lifetime <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}
	return &Maker{key: key, lifetime: lifetime}, nil
}

// Issue menerbitkan token sesi baru untuk adminID.
func (m *Maker) Issue(adminID string) (string, error) {
	now := time.Now()
	jsonToken := paseto.JSONToken{
		Subject:    adminID,
		IssuedAt:   now,
		Expiration: now.Add(m.lifetime),
	}
	return paseto.NewV2().Encrypt(m.key, jsonToken, footer)
}

// Verify memeriksa token dan mengembalikan payload-nya.
// Token kosong, tidak bisa didekripsi, atau sudah lewat masa berlaku
// menghasilkan ErrUnauthenticated.
func (m *Maker) Verify(tokenString string) (*Payload, error) {
	if tokenString == "" {
		return nil, ErrUnauthenticated
	}

	var jsonToken paseto.JSONToken
	var tokenFooter string
	if err := paseto.NewV2().Decrypt(tokenString, m.key, &jsonToken, &tokenFooter); err != nil {
		return nil, ErrUnauthenticated
	}
	if tokenFooter != footer {
		return nil, ErrUnauthenticated
	}
	if !time.Now().Before(jsonToken.Expiration) {
		return nil, ErrUnauthenticated
	}

	return &Payload{
		AdminID:   jsonToken.Subject,
		IssuedAt:  jsonToken.IssuedAt,
		ExpiresAt: jsonToken.Expiration,
	}, nil
}
