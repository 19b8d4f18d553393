package types

type AccountType string

const (
	AccountTypeMaster AccountType = "master"
	AccountTypeChild  AccountType = "child"
)

type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusActive   AccountStatus = "active"
	AccountStatusApproved AccountStatus = "approved"
	AccountStatusRejected AccountStatus = "rejected"
)

type PixKeyType string

const (
	PixKeyTypeCPF    PixKeyType = "cpf"
	PixKeyTypeEmail  PixKeyType = "email"
	PixKeyTypeRandom PixKeyType = "random"
)

func (t PixKeyType) Valid() bool {
	return t == PixKeyTypeCPF || t == PixKeyTypeEmail || t == PixKeyTypeRandom
}

type KycStatus string

const (
	KycStatusSubmitted   KycStatus = "submitted"
	KycStatusUnderReview KycStatus = "under_review"
	KycStatusApproved    KycStatus = "approved"
	KycStatusRejected    KycStatus = "rejected"
)

// KycDisplayStatus is what the dashboard shows the end user. It is
// derived, never stored.
type KycDisplayStatus string

const (
	KycDisplayNotSubmitted KycDisplayStatus = "not_submitted"
	KycDisplayPending      KycDisplayStatus = "pending"
	KycDisplayUnderReview  KycDisplayStatus = "under_review"
	KycDisplayApproved     KycDisplayStatus = "approved"
	KycDisplayRejected     KycDisplayStatus = "rejected"
)

type CommissionStatus string

const (
	CommissionStatusPending CommissionStatus = "pending"
	CommissionStatusPaid    CommissionStatus = "paid"
)
