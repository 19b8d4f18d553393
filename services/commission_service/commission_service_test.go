package commission_service

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null"

	"github.com/betconta/betconta/models"
	"github.com/betconta/betconta/types"
)

type memoryStore struct {
	mu          sync.Mutex
	nextID      int64
	affiliates  map[int64]*models.Affiliate
	commissions map[int64]*models.Commission
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		affiliates:  make(map[int64]*models.Affiliate),
		commissions: make(map[int64]*models.Commission),
	}
}

func (s *memoryStore) FindAffiliate(affiliateID int64) (*models.Affiliate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	affiliate, ok := s.affiliates[affiliateID]
	if !ok {
		return nil, nil
	}

	copied := *affiliate

	return &copied, nil
}

func (s *memoryStore) RecordSale(commission *models.Commission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	commission.ID = s.nextID
	s.commissions[commission.ID] = commission

	affiliate := s.affiliates[commission.AffiliateID]
	affiliate.TotalSales++
	affiliate.TotalCommission = affiliate.TotalCommission.Add(commission.Commission)

	return nil
}

func (s *memoryStore) MarkPaid(commissionID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	commission, ok := s.commissions[commissionID]
	if !ok || commission.Status != types.CommissionStatusPending {
		return 0, nil
	}

	commission.Status = types.CommissionStatusPaid
	commission.PaidAt = null.TimeFrom(time.Now())

	return 1, nil
}

func (s *memoryStore) FindCommission(commissionID int64) (*models.Commission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	commission, ok := s.commissions[commissionID]
	if !ok {
		return nil, nil
	}

	return commission, nil
}

func (s *memoryStore) UpdateSettings(affiliateID int64, minPrice, maxPrice decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	affiliate := s.affiliates[affiliateID]
	affiliate.MinPrice = minPrice
	affiliate.MaxPrice = maxPrice

	return nil
}

func setup() (*memoryStore, *Ledger) {
	store := newMemoryStore()
	store.affiliates[3] = &models.Affiliate{
		ID:           3,
		MemberID:     1,
		ReferralCode: "BC-REF-003",
		MinPrice:     decimal.RequireFromString("90.00"),
		MaxPrice:     decimal.RequireFromString("130.00"),
		BaseCost:     decimal.RequireFromString("90.00"),
	}

	return store, NewLedger(store)
}

func TestLedger_RecordSaleArithmetic(t *testing.T) {
	store, ledger := setup()

	commission, err := ledger.RecordSale(3, 42, decimal.RequireFromString("115.00"))
	if err != nil {
		t.Fatal(err)
	}

	assert.True(t, commission.Commission.Equal(decimal.RequireFromString("25.00")))
	assert.Equal(t, "25.00", commission.Commission.StringFixed(2))
	assert.Equal(t, types.CommissionStatusPending, commission.Status)

	affiliate := store.affiliates[3]
	assert.Equal(t, int64(1), affiliate.TotalSales)
	assert.True(t, affiliate.TotalCommission.Equal(decimal.RequireFromString("25.00")))
}

func TestLedger_RecordSaleOutOfRange(t *testing.T) {
	store, ledger := setup()

	_, err := ledger.RecordSale(3, 42, decimal.RequireFromString("85.00"))

	assert.ErrorIs(t, err, ErrPriceOutOfRange)
	assert.Empty(t, store.commissions)
	assert.Equal(t, int64(0), store.affiliates[3].TotalSales)
	assert.True(t, store.affiliates[3].TotalCommission.IsZero())
}

func TestLedger_RecordSaleBoundsInclusive(t *testing.T) {
	_, ledger := setup()

	if _, err := ledger.RecordSale(3, 42, decimal.RequireFromString("90.00")); err != nil {
		t.Errorf("min price should be accepted, got %v", err)
	}
	if _, err := ledger.RecordSale(3, 43, decimal.RequireFromString("130.00")); err != nil {
		t.Errorf("max price should be accepted, got %v", err)
	}
	if _, err := ledger.RecordSale(3, 44, decimal.RequireFromString("130.01")); err == nil {
		t.Error("price above max should be rejected")
	}
}

func TestLedger_RecordSaleUnknownAffiliate(t *testing.T) {
	_, ledger := setup()

	_, err := ledger.RecordSale(9, 42, decimal.RequireFromString("100.00"))

	assert.ErrorIs(t, err, ErrAffiliateNotFound)
}

func TestLedger_MarkPaidIdempotent(t *testing.T) {
	store, ledger := setup()

	commission, err := ledger.RecordSale(3, 42, decimal.RequireFromString("100.00"))
	if err != nil {
		t.Fatal(err)
	}

	if err := ledger.MarkPaid(commission.ID); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, types.CommissionStatusPaid, store.commissions[commission.ID].Status)

	if err := ledger.MarkPaid(commission.ID); err != nil {
		t.Errorf("second mark paid should be a no-op, got %v", err)
	}
}

func TestLedger_MarkPaidUnknownRecord(t *testing.T) {
	_, ledger := setup()

	err := ledger.MarkPaid(404)

	assert.ErrorIs(t, err, ErrCommissionNotFound)
}

func TestLedger_UpdateSettings(t *testing.T) {
	store, ledger := setup()

	if err := ledger.UpdateSettings(3, decimal.RequireFromString("95.00"), decimal.RequireFromString("120.00")); err != nil {
		t.Fatal(err)
	}

	assert.True(t, store.affiliates[3].MinPrice.Equal(decimal.RequireFromString("95.00")))
	assert.True(t, store.affiliates[3].MaxPrice.Equal(decimal.RequireFromString("120.00")))
}

func TestLedger_UpdateSettingsInvalidBounds(t *testing.T) {
	_, ledger := setup()

	tests := []struct {
		name     string
		min, max string
	}{
		{"min below base cost", "80.00", "130.00"},
		{"max below min", "110.00", "100.00"},
		{"sub-cent precision", "90.001", "130.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ledger.UpdateSettings(3, decimal.RequireFromString(tt.min), decimal.RequireFromString(tt.max))
			assert.ErrorIs(t, err, ErrInvalidBounds)
		})
	}
}
