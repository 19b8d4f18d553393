package kyc_service

import (
	"errors"
	"time"

	"github.com/volatiletech/null"

	"github.com/betconta/betconta/models"
	"github.com/betconta/betconta/types"
)

var (
	ErrCaseNotFound      = errors.New("record.not_found")
	ErrMissingDocuments  = errors.New("kyc.case.missing_documents")
	ErrInvalidTransition = errors.New("kyc.case.invalid_transition")
	ErrConflict          = errors.New("kyc.case.conflict")
)

// allowedTransitions is the whole review state machine. The review step
// may be skipped; approved and rejected are terminal per case row.
var allowedTransitions = map[types.KycStatus][]types.KycStatus{
	types.KycStatusSubmitted:   {types.KycStatusUnderReview, types.KycStatusApproved, types.KycStatusRejected},
	types.KycStatusUnderReview: {types.KycStatusApproved, types.KycStatusRejected},
}

// Documents are the three artifacts a submission carries, as opaque
// references into blob storage.
type Documents struct {
	Front  string
	Back   string
	Selfie string
}

type Store interface {
	InsertCase(kycCase *models.KycCase) error
	// FindCase returns (nil, nil) when the case does not exist.
	FindCase(caseID int64) (*models.KycCase, error)
	// ApplyReview persists the mutated case, guarded on the status the
	// reviewer saw. When propagate is set the owning child account's
	// status is updated in the same transaction. Returns false when the
	// guard matched zero rows.
	ApplyReview(kycCase *models.KycCase, from types.KycStatus, propagate bool) (bool, error)
}

// Service owns the KYC submit/review lifecycle. Cases are an append-only
// audit trail: a terminal case is never reopened, resubmission inserts a
// fresh row.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Submit opens a new case in submitted state. A null childAccountID
// means the case concerns the master account itself. Submission never
// touches ChildAccount.Status.
func (s *Service) Submit(memberID int64, childAccountID null.Int64, docs Documents) (*models.KycCase, error) {
	if docs.Front == "" || docs.Back == "" || docs.Selfie == "" {
		return nil, ErrMissingDocuments
	}

	accountType := types.AccountTypeMaster
	if childAccountID.Valid {
		accountType = types.AccountTypeChild
	}

	kyc_case := &models.KycCase{
		MemberID:       memberID,
		ChildAccountID: childAccountID,
		AccountType:    accountType,
		DocumentFront:  docs.Front,
		DocumentBack:   docs.Back,
		Selfie:         docs.Selfie,
		Status:         types.KycStatusSubmitted,
		SubmittedAt:    time.Now(),
	}

	if err := s.store.InsertCase(kyc_case); err != nil {
		return nil, err
	}

	return kyc_case, nil
}

// SetStatus advances a case along the review state machine. A terminal
// outcome on a child-account case propagates to the owning child
// account's status in the same write.
func (s *Service) SetStatus(caseID int64, newStatus types.KycStatus, reviewerID int64, notes string) (*models.KycCase, error) {
	switch newStatus {
	case types.KycStatusUnderReview, types.KycStatusApproved, types.KycStatusRejected:
	default:
		// submitted (and anything unknown) is never a valid review target.
		return nil, ErrInvalidTransition
	}

	kyc_case, err := s.store.FindCase(caseID)
	if err != nil {
		return nil, err
	}
	if kyc_case == nil {
		return nil, ErrCaseNotFound
	}

	if !transitionAllowed(kyc_case.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	from := kyc_case.Status

	kyc_case.Status = newStatus
	kyc_case.ReviewerID = null.Int64From(reviewerID)
	if notes != "" {
		kyc_case.ReviewNotes = null.StringFrom(notes)
	}
	if newStatus != types.KycStatusUnderReview {
		kyc_case.ReviewedAt = null.TimeFrom(time.Now())
	}

	propagate := kyc_case.Terminal() && kyc_case.ChildAccountID.Valid

	applied, err := s.store.ApplyReview(kyc_case, from, propagate)
	if err != nil {
		return nil, err
	}
	if !applied {
		// A racing reviewer moved the case first.
		return nil, ErrConflict
	}

	return kyc_case, nil
}

func transitionAllowed(from, to types.KycStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// DeriveDisplayStatus decides what the dashboard shows for a child
// account. ChildAccount.Status is the authoritative admin-settable
// field; the latest case only refines the display while the account is
// still pending. Pure function, no store access.
func DeriveDisplayStatus(child_account *models.ChildAccount, latest *models.KycCase) types.KycDisplayStatus {
	switch child_account.Status {
	case types.AccountStatusApproved, types.AccountStatusActive:
		return types.KycDisplayApproved
	case types.AccountStatusRejected:
		return types.KycDisplayRejected
	}

	if latest == nil {
		return types.KycDisplayNotSubmitted
	}

	switch latest.Status {
	case types.KycStatusUnderReview:
		return types.KycDisplayUnderReview
	default:
		// A terminal case the account status does not yet reflect still
		// reads as pending: the account field wins on disagreement.
		return types.KycDisplayPending
	}
}
