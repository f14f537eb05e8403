package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordKind discriminates the ledger record variants.
type RecordKind string

const (
	KindCartLine    RecordKind = "cart_line"
	KindLeadDraft   RecordKind = "lead_draft"
	KindCaseReview  RecordKind = "case_review"
	KindGameRound   RecordKind = "game_round"
	KindWellnessLog RecordKind = "wellness_log"
)

// Record is a mutable domain record held by a session ledger.
// Every record carries a generated identifier that is never reused.
type Record interface {
	RecordID() string
	Kind() RecordKind
}

// Quantified is implemented by record kinds that carry a quantity.
// Adding a second record with the same natural key accumulates quantity
// instead of creating a duplicate entry.
type Quantified interface {
	Record
	NaturalKey() string
	Quantity() int
	SetQuantity(q int)
	UnitPrice() decimal.Decimal
}

// NewRecordID generates a fresh record identifier.
func NewRecordID() string {
	return uuid.NewString()
}

// CartLine is one drink or product in an order, with its chosen options.
type CartLine struct {
	ID       string   `json:"id"`
	ItemID   string   `json:"item_id"`
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	Size     string   `json:"size,omitempty"`
	MilkID   string   `json:"milk_id,omitempty"`
	ExtraIDs []string `json:"extra_ids,omitempty"`
	Notes    string   `json:"notes,omitempty"`

	Qty   int             `json:"quantity"`
	Price decimal.Decimal `json:"price"`
}

func (l *CartLine) RecordID() string { return l.ID }
func (l *CartLine) Kind() RecordKind { return KindCartLine }

// NaturalKey identifies interchangeable lines: same item with the same
// options. A latte with oat milk does not merge with a plain latte.
func (l *CartLine) NaturalKey() string {
	parts := []string{l.ItemID, l.Size, l.MilkID}
	parts = append(parts, l.ExtraIDs...)
	return strings.Join(parts, "|")
}

func (l *CartLine) Quantity() int              { return l.Qty }
func (l *CartLine) SetQuantity(q int)          { l.Qty = q }
func (l *CartLine) UnitPrice() decimal.Decimal { return l.Price }

// LineTotal is price times quantity.
func (l *CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// LeadDraft is the contact and intent information collected during a
// sales conversation, before it is scored and committed.
type LeadDraft struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	UseCase     string `json:"use_case" validate:"required"`
	TeamSize    string `json:"team_size"`
	Timeline    string `json:"timeline" validate:"required"`
	CallSummary string `json:"call_summary"`
}

func (l *LeadDraft) RecordID() string { return l.ID }
func (l *LeadDraft) Kind() RecordKind { return KindLeadDraft }

// CaseReview tracks the in-session review of a fraud case after the
// caller has been verified. The durable case lives in the case journal;
// this record only carries the session's working outcome.
type CaseReview struct {
	ID      string `json:"id"`
	CaseID  string `json:"case_id"`
	Subject string `json:"subject"`
	Outcome string `json:"outcome"`
	Note    string `json:"note,omitempty"`
}

func (r *CaseReview) RecordID() string { return r.ID }
func (r *CaseReview) Kind() RecordKind { return KindCaseReview }

// GameRound is one completed round of the improv game.
type GameRound struct {
	ID            string `json:"id"`
	Round         int    `json:"round"`
	Scenario      string `json:"scenario"`
	Improvisation string `json:"improvisation,omitempty"`
	HostReaction  string `json:"host_reaction,omitempty"`
}

func (g *GameRound) RecordID() string { return g.ID }
func (g *GameRound) Kind() RecordKind { return KindGameRound }

// WellnessLog is a single logged health activity.
type WellnessLog struct {
	ID         string `json:"id"`
	ActivityID string `json:"activity_id"`
	Activity   string `json:"activity"`
	Unit       string `json:"unit,omitempty"`
	Notes      string `json:"notes,omitempty"`

	Qty int `json:"quantity"`
}

func (w *WellnessLog) RecordID() string { return w.ID }
func (w *WellnessLog) Kind() RecordKind { return KindWellnessLog }

// Wellness quantities accumulate the same way cart lines do: logging
// 20 minutes of running twice yields one record with quantity 40.
func (w *WellnessLog) NaturalKey() string {
	return w.ActivityID + "|" + w.Unit
}

func (w *WellnessLog) Quantity() int              { return w.Qty }
func (w *WellnessLog) SetQuantity(q int)          { w.Qty = q }
func (w *WellnessLog) UnitPrice() decimal.Decimal { return decimal.Zero }
