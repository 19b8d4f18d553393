package pix_service

import (
	"errors"
	"time"

	"github.com/betconta/betconta/models"
	"github.com/betconta/betconta/types"
)

var (
	ErrAccountNotFound = errors.New("record.not_found")
	ErrInvalidKeyType  = errors.New("pix.key.invalid_type")
	ErrConflict        = errors.New("pix.key.conflict")
)

// Store is the persistence surface the registry runs on. Every mutation
// is a single conditional write so racing callers cannot produce two
// active keys on one slot or resurrect a closed row.
type Store interface {
	// FindChildAccount returns (nil, nil) when the account does not exist.
	FindChildAccount(childAccountID int64) (*models.ChildAccount, error)
	// Supersede closes any active key on the slot and inserts the new one
	// as a single atomic step. Returns ErrConflict when the insert loses a
	// race on the one-active-per-slot constraint.
	Supersede(key *models.PixKey, closedAt time.Time) error
	// CloseActive closes the active key on a slot, guarded on
	// is_active = true at write time. Returns rows affected.
	CloseActive(childAccountID int64, keyType types.PixKeyType, closedAt time.Time) (int64, error)
	// ActiveKey returns (nil, nil) when no key is active on the slot.
	ActiveKey(childAccountID int64, keyType types.PixKeyType) (*models.PixKey, error)
	KeysByChild(childAccountID int64) ([]*models.PixKey, error)
	// CloseExpired closes every key still active with created_at before
	// cutoff, guarded the same way CloseActive is. Returns rows closed.
	CloseExpired(cutoff time.Time, closedAt time.Time) (int64, error)
}

// Registry owns the PIX key slot state machine: one active key per
// (child account, key type), history append-only.
type Registry struct {
	store Store
}

func NewRegistry(store Store) *Registry {
	return &Registry{store: store}
}

// Activate closes whatever key is active on the slot and opens a new
// one. The key value is derived from the child account for the cpf and
// email types and generated for the random type.
func (r *Registry) Activate(childAccountID int64, keyType types.PixKeyType) (*models.PixKey, error) {
	if !keyType.Valid() {
		return nil, ErrInvalidKeyType
	}

	child_account, err := r.store.FindChildAccount(childAccountID)
	if err != nil {
		return nil, err
	}
	if child_account == nil {
		return nil, ErrAccountNotFound
	}

	now := time.Now()

	key := &models.PixKey{
		ChildAccountID: childAccountID,
		KeyType:        keyType,
		Value:          deriveValue(child_account, keyType),
		IsActive:       true,
		CreatedAt:      now,
	}

	if err := r.store.Supersede(key, now); err != nil {
		if !errors.Is(err, ErrConflict) {
			return nil, err
		}

		// Lost a race against a concurrent activation on the same slot.
		// The account exists, so retry once before surfacing.
		if err := r.store.Supersede(key, time.Now()); err != nil {
			return nil, err
		}
	}

	return key, nil
}

// Deactivate closes the active key on the slot. Idempotent: closing a
// slot with nothing active is a no-op, not an error.
func (r *Registry) Deactivate(childAccountID int64, keyType types.PixKeyType) error {
	if !keyType.Valid() {
		return ErrInvalidKeyType
	}

	_, err := r.store.CloseActive(childAccountID, keyType, time.Now())

	return err
}

func (r *Registry) GetActive(childAccountID int64, keyType types.PixKeyType) (*models.PixKey, error) {
	if !keyType.Valid() {
		return nil, ErrInvalidKeyType
	}

	return r.store.ActiveKey(childAccountID, keyType)
}

// ListByChild returns the full key history for a child account, most
// recent first.
func (r *Registry) ListByChild(childAccountID int64) ([]*models.PixKey, error) {
	return r.store.KeysByChild(childAccountID)
}

// Sweep closes every active key older than the TTL and returns how many
// it closed. The close is conditioned on is_active at write time, so a
// key manually deactivated while the sweep runs is left alone and a
// double close is a no-op.
func (r *Registry) Sweep(now time.Time) (int64, error) {
	return r.store.CloseExpired(now.Add(-models.PixKeyTTL), now)
}

func deriveValue(child_account *models.ChildAccount, keyType types.PixKeyType) string {
	switch keyType {
	case types.PixKeyTypeCPF:
		return child_account.CPF
	case types.PixKeyTypeEmail:
		return child_account.Email
	default:
		return models.GenerateRandomKeyValue()
	}
}
