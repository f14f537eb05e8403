package domain

import "strings"

// CaseStatus is the durable outcome of a fraud case.
type CaseStatus string

const (
	CasePendingReview      CaseStatus = "pending_review"
	CaseConfirmedSafe      CaseStatus = "confirmed_safe"
	CaseConfirmedFraud     CaseStatus = "confirmed_fraud"
	CaseVerificationFailed CaseStatus = "verification_failed"
)

// IsValid reports whether the status is one of the known outcomes.
func (s CaseStatus) IsValid() bool {
	switch s {
	case CasePendingReview, CaseConfirmedSafe, CaseConfirmedFraud, CaseVerificationFailed:
		return true
	}
	return false
}

// VerificationState is the per-session identity check state.
// unverified is the start state; verified and failed are terminal.
type VerificationState string

const (
	VerificationUnverified VerificationState = "unverified"
	VerificationVerified   VerificationState = "verified"
	VerificationFailed     VerificationState = "failed"
)

// CaseEntry is a fraud case in the case journal. It is the single
// durable representation; resolutions replace the entry in place
// keyed by CaseID.
type CaseEntry struct {
	CaseID              string     `json:"case_id"`
	Subject             string     `json:"subject"`
	SecurityIdentifier  string     `json:"security_identifier"`
	CardEnding          string     `json:"card_ending"`
	TransactionName     string     `json:"transaction_name"`
	TransactionAmount   float64    `json:"transaction_amount"`
	TransactionTime     string     `json:"transaction_time"`
	TransactionCategory string     `json:"transaction_category"`
	TransactionSource   string     `json:"transaction_source"`
	MerchantLocation    string     `json:"merchant_location"`
	SecurityQuestion    string     `json:"security_question"`
	SecurityAnswer      string     `json:"security_answer"`
	Status              CaseStatus `json:"status"`
	OutcomeNote         string     `json:"outcome_note"`
	Timestamp           string     `json:"timestamp"`
}

func (e CaseEntry) EntryKey() string { return e.CaseID }

// MatchesSubject compares the subject name case-insensitively.
func (e CaseEntry) MatchesSubject(subject string) bool {
	return strings.EqualFold(strings.TrimSpace(e.Subject), strings.TrimSpace(subject))
}

// ChallengeMatches compares a supplied security answer to the stored
// one, trimmed and case-insensitive.
func (e CaseEntry) ChallengeMatches(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(e.SecurityAnswer), strings.TrimSpace(answer))
}

// SensitiveDetail is the transaction information that must only be
// disclosed after the caller has been verified.
type SensitiveDetail struct {
	CardEnding          string  `json:"card_ending"`
	TransactionName     string  `json:"transaction_name"`
	TransactionAmount   float64 `json:"transaction_amount"`
	TransactionTime     string  `json:"transaction_time"`
	TransactionCategory string  `json:"transaction_category"`
	TransactionSource   string  `json:"transaction_source"`
	MerchantLocation    string  `json:"merchant_location"`
}

// Detail returns the sensitive transaction fields of the case.
// Callers must gate this behind the verification state machine.
func (e CaseEntry) Detail() SensitiveDetail {
	return SensitiveDetail{
		CardEnding:          e.CardEnding,
		TransactionName:     e.TransactionName,
		TransactionAmount:   e.TransactionAmount,
		TransactionTime:     e.TransactionTime,
		TransactionCategory: e.TransactionCategory,
		TransactionSource:   e.TransactionSource,
		MerchantLocation:    e.MerchantLocation,
	}
}
