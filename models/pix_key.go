package models

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null"

	"github.com/betconta/betconta/types"
)

// PixKeyTTL is how long an activated key stays usable before the expiry
// sweep closes it.
const PixKeyTTL = 72 * time.Hour

type PixKey struct {
	ID             int64            `json:"id" gorm:"primaryKey"`
	UUID           uuid.UUID        `json:"uuid" gorm:"default:gen_random_uuid()"`
	ChildAccountID int64            `json:"child_account_id" gorm:"uniqueIndex:idx_pix_keys_active_slot,where:is_active"`
	KeyType        types.PixKeyType `json:"key_type" gorm:"uniqueIndex:idx_pix_keys_active_slot,where:is_active"`
	Value          string           `json:"value"`
	IsActive       bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
	ClosedAt       null.Time        `json:"closed_at"`
}

func (k *PixKey) Expired(now time.Time) bool {
	return now.Sub(k.CreatedAt) >= PixKeyTTL
}

// Remaining reports how much lifetime the key has left. Zero once the
// TTL has elapsed, whether or not the sweep has closed the row yet.
func (k *PixKey) Remaining(now time.Time) time.Duration {
	remaining := PixKeyTTL - now.Sub(k.CreatedAt)
	if remaining < 0 {
		return 0
	}

	return remaining
}

const randomKeyCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRandomKeyValue builds a random key: 32 lowercase alphanumeric
// characters in dash-separated blocks of 8. The grouping is a display
// convenience, not a security property.
func GenerateRandomKeyValue() string {
	buf := make([]byte, 32)
	rand.Read(buf)

	var blocks []string
	var block strings.Builder

	for i, b := range buf {
		block.WriteByte(randomKeyCharset[int(b)%len(randomKeyCharset)])
		if (i+1)%8 == 0 {
			blocks = append(blocks, block.String())
			block.Reset()
		}
	}

	return strings.Join(blocks, "-")
}

type PixKeyJSON struct {
	UUID      uuid.UUID        `json:"uuid"`
	KeyType   types.PixKeyType `json:"key_type"`
	Value     string           `json:"value"`
	IsActive  bool             `json:"is_active"`
	CreatedAt time.Time        `json:"created_at"`
	ClosedAt  null.Time        `json:"closed_at"`
}

func (k *PixKey) ToJSON() PixKeyJSON {
	return PixKeyJSON{
		UUID:      k.UUID,
		KeyType:   k.KeyType,
		Value:     k.Value,
		IsActive:  k.IsActive,
		CreatedAt: k.CreatedAt,
		ClosedAt:  k.ClosedAt,
	}
}
