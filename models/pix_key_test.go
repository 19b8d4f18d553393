package models

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestPixKey_Remaining(t *testing.T) {
	now := time.Now()

	key := &PixKey{CreatedAt: now.Add(-71 * time.Hour)}
	assert.False(t, key.Expired(now))
	assert.Equal(t, time.Hour, key.Remaining(now))

	key = &PixKey{CreatedAt: now.Add(-73 * time.Hour)}
	assert.True(t, key.Expired(now))
	assert.Equal(t, time.Duration(0), key.Remaining(now))

	key = &PixKey{CreatedAt: now.Add(-PixKeyTTL)}
	assert.True(t, key.Expired(now))
}

// The one-active-key-per-slot rule is enforced by the database, not
// just by application writes: the schema must carry a partial unique
// index over (child_account_id, key_type) restricted to active rows.
func TestPixKeyActiveSlotIndex(t *testing.T) {
	s, err := schema.Parse(&PixKey{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatal(err)
	}

	idx, ok := s.ParseIndexes()["idx_pix_keys_active_slot"]
	if !ok {
		t.Fatal("expected idx_pix_keys_active_slot to be declared")
	}

	assert.Equal(t, "UNIQUE", idx.Class)
	assert.Equal(t, "is_active", idx.Where)

	columns := make([]string, 0, len(idx.Fields))
	for _, field := range idx.Fields {
		columns = append(columns, field.DBName)
	}
	assert.Equal(t, []string{"child_account_id", "key_type"}, columns)
}

func TestGenerateRandomKeyValue(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		value := GenerateRandomKeyValue()

		if len(value) != 35 {
			t.Fatalf("expected 32 characters in 4 blocks plus separators, got %q", value)
		}
		for i, c := range value {
			if (i+1)%9 == 0 {
				if c != '-' {
					t.Fatalf("expected separator at position %d of %q", i, value)
				}
				continue
			}
			if !(c >= 'a' && c <= 'z') && !(c >= '0' && c <= '9') {
				t.Fatalf("unexpected character %q in %q", c, value)
			}
		}

		if seen[value] {
			t.Fatalf("generated duplicate value %q", value)
		}
		seen[value] = true
	}
}
