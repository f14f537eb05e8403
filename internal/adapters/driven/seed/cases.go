// Package seed provides the demo fraud cases used to initialize an
// empty case journal. Real deployments replace these by loading the
// case journal from their alerting pipeline.
package seed

import (
	"context"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driven"
)

// Cases returns the demo fraud cases.
func Cases() []domain.CaseEntry {
	return []domain.CaseEntry{
		{
			CaseID:              "FRAUD_001",
			Subject:             "John Doe",
			SecurityIdentifier:  "12345",
			CardEnding:          "**** 4242",
			TransactionName:     "Amazon Electronics",
			TransactionAmount:   50000.00,
			TransactionTime:     "2024-11-25 03:45 AM",
			TransactionCategory: "e-commerce",
			TransactionSource:   "amazon.com",
			MerchantLocation:    "USA",
			SecurityQuestion:    "What is your pet's name?",
			SecurityAnswer:      "fluffy",
			Status:              domain.CasePendingReview,
		},
		{
			CaseID:              "FRAUD_002",
			Subject:             "Sarah Smith",
			SecurityIdentifier:  "67890",
			CardEnding:          "**** 8888",
			TransactionName:     "DuoLingo Premium",
			TransactionAmount:   12000.00,
			TransactionTime:     "2024-11-24 11:20 PM",
			TransactionCategory: "subscription",
			TransactionSource:   "duolingo.com",
			MerchantLocation:    "USA",
			SecurityQuestion:    "What city were you born in?",
			SecurityAnswer:      "mumbai",
			Status:              domain.CasePendingReview,
		},
		{
			CaseID:              "FRAUD_003",
			Subject:             "Raj Kumar",
			SecurityIdentifier:  "11111",
			CardEnding:          "**** 5555",
			TransactionName:     "Alibaba Shopping",
			TransactionAmount:   35000.00,
			TransactionTime:     "2024-11-25 02:15 AM",
			TransactionCategory: "e-commerce",
			TransactionSource:   "alibaba.com",
			MerchantLocation:    "China",
			SecurityQuestion:    "What is your mother's maiden name?",
			SecurityAnswer:      "sharma",
			Status:              domain.CasePendingReview,
		},
	}
}

// EnsureCases seeds the case journal if it is empty. Works with any
// journal backend.
func EnsureCases(ctx context.Context, journal driven.Journal[domain.CaseEntry]) error {
	existing, err := journal.LoadAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, c := range Cases() {
		if _, err := journal.Upsert(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
