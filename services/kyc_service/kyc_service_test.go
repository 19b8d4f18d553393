package kyc_service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null"

	"github.com/betconta/betconta/models"
	"github.com/betconta/betconta/types"
)

type memoryStore struct {
	mu       sync.Mutex
	nextID   int64
	cases    map[int64]*models.KycCase
	accounts map[int64]*models.ChildAccount
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		cases:    make(map[int64]*models.KycCase),
		accounts: make(map[int64]*models.ChildAccount),
	}
}

func (s *memoryStore) InsertCase(kyc_case *models.KycCase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	kyc_case.ID = s.nextID
	s.cases[kyc_case.ID] = kyc_case

	return nil
}

func (s *memoryStore) FindCase(caseID int64) (*models.KycCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kyc_case, ok := s.cases[caseID]
	if !ok {
		return nil, nil
	}

	copied := *kyc_case

	return &copied, nil
}

func (s *memoryStore) ApplyReview(kyc_case *models.KycCase, from types.KycStatus, propagate bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.cases[kyc_case.ID]
	if !ok || stored.Status != from {
		return false, nil
	}

	*stored = *kyc_case

	if propagate {
		status := types.AccountStatusApproved
		if kyc_case.Status == types.KycStatusRejected {
			status = types.AccountStatusRejected
		}

		if account, ok := s.accounts[kyc_case.ChildAccountID.Int64]; ok {
			account.Status = status
		}
	}

	return true, nil
}

var docs = Documents{Front: "blob://front", Back: "blob://back", Selfie: "blob://selfie"}

func setup() (*memoryStore, *Service) {
	store := newMemoryStore()
	store.accounts[7] = &models.ChildAccount{ID: 7, Status: types.AccountStatusPending}

	return store, NewService(store)
}

func TestService_SubmitMasterCase(t *testing.T) {
	_, service := setup()

	kyc_case, err := service.Submit(1, null.Int64{}, docs)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, types.AccountTypeMaster, kyc_case.AccountType)
	assert.Equal(t, types.KycStatusSubmitted, kyc_case.Status)
	assert.False(t, kyc_case.ChildAccountID.Valid)
	assert.False(t, kyc_case.SubmittedAt.IsZero())
}

func TestService_SubmitChildCase(t *testing.T) {
	store, service := setup()

	kyc_case, err := service.Submit(1, null.Int64From(7), docs)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, types.AccountTypeChild, kyc_case.AccountType)
	// Submission alone never moves the account status.
	assert.Equal(t, types.AccountStatusPending, store.accounts[7].Status)
}

func TestService_SubmitMissingDocuments(t *testing.T) {
	_, service := setup()

	_, err := service.Submit(1, null.Int64{}, Documents{Front: "blob://front"})

	assert.ErrorIs(t, err, ErrMissingDocuments)
}

func TestService_SetStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from types.KycStatus
		to   types.KycStatus
		err  error
	}{
		{"submitted to under_review", types.KycStatusSubmitted, types.KycStatusUnderReview, nil},
		{"submitted to approved", types.KycStatusSubmitted, types.KycStatusApproved, nil},
		{"submitted to rejected", types.KycStatusSubmitted, types.KycStatusRejected, nil},
		{"under_review to approved", types.KycStatusUnderReview, types.KycStatusApproved, nil},
		{"under_review to rejected", types.KycStatusUnderReview, types.KycStatusRejected, nil},
		{"under_review back to submitted", types.KycStatusUnderReview, types.KycStatusSubmitted, ErrInvalidTransition},
		{"unknown target status", types.KycStatusSubmitted, types.KycStatus("escalated"), ErrInvalidTransition},
		{"approved to rejected", types.KycStatusApproved, types.KycStatusRejected, ErrInvalidTransition},
		{"rejected to approved", types.KycStatusRejected, types.KycStatusApproved, ErrInvalidTransition},
		{"rejected to under_review", types.KycStatusRejected, types.KycStatusUnderReview, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, service := setup()
			store.InsertCase(&models.KycCase{MemberID: 1, Status: tt.from})

			kyc_case, err := service.SetStatus(1, tt.to, 99, "checked")

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)

				stored, _ := store.FindCase(1)
				assert.Equal(t, tt.from, stored.Status, "case must be left unchanged")
				return
			}

			if err != nil {
				t.Fatal(err)
			}
			assert.Equal(t, tt.to, kyc_case.Status)
			assert.Equal(t, int64(99), kyc_case.ReviewerID.Int64)
		})
	}
}

func TestService_SetStatusSetsReviewedAtOnTerminal(t *testing.T) {
	store, service := setup()
	store.InsertCase(&models.KycCase{MemberID: 1, Status: types.KycStatusUnderReview})

	kyc_case, err := service.SetStatus(1, types.KycStatusApproved, 99, "")
	if err != nil {
		t.Fatal(err)
	}

	assert.True(t, kyc_case.ReviewedAt.Valid)
	assert.False(t, kyc_case.ReviewNotes.Valid)
}

func TestService_ApprovalPropagatesToChildAccount(t *testing.T) {
	store, service := setup()
	store.InsertCase(&models.KycCase{MemberID: 1, ChildAccountID: null.Int64From(7), AccountType: types.AccountTypeChild, Status: types.KycStatusSubmitted})

	if _, err := service.SetStatus(1, types.KycStatusApproved, 99, "ok"); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, types.AccountStatusApproved, store.accounts[7].Status)
}

func TestService_RejectionPropagatesToChildAccount(t *testing.T) {
	store, service := setup()
	store.InsertCase(&models.KycCase{MemberID: 1, ChildAccountID: null.Int64From(7), AccountType: types.AccountTypeChild, Status: types.KycStatusUnderReview})

	if _, err := service.SetStatus(1, types.KycStatusRejected, 99, "blurry selfie"); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, types.AccountStatusRejected, store.accounts[7].Status)
}

func TestService_SetStatusUnknownCase(t *testing.T) {
	_, service := setup()

	_, err := service.SetStatus(404, types.KycStatusApproved, 99, "")

	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestDeriveDisplayStatus(t *testing.T) {
	pending := &models.ChildAccount{Status: types.AccountStatusPending}

	tests := []struct {
		name     string
		account  *models.ChildAccount
		latest   *models.KycCase
		expected types.KycDisplayStatus
	}{
		{"no case, pending account", pending, nil, types.KycDisplayNotSubmitted},
		{"submitted case", pending, &models.KycCase{Status: types.KycStatusSubmitted}, types.KycDisplayPending},
		{"under review case", pending, &models.KycCase{Status: types.KycStatusUnderReview}, types.KycDisplayUnderReview},
		{"case approved but account still pending", pending, &models.KycCase{Status: types.KycStatusApproved}, types.KycDisplayPending},
		{"account approved wins", &models.ChildAccount{Status: types.AccountStatusApproved}, nil, types.KycDisplayApproved},
		{"account active reads approved", &models.ChildAccount{Status: types.AccountStatusActive}, &models.KycCase{Status: types.KycStatusSubmitted}, types.KycDisplayApproved},
		{"account rejected wins over case", &models.ChildAccount{Status: types.AccountStatusRejected}, &models.KycCase{Status: types.KycStatusUnderReview}, types.KycDisplayRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveDisplayStatus(tt.account, tt.latest))
		})
	}
}
