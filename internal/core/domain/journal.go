package domain

import "time"

// JournalEntry is a finalized snapshot written to a durable journal.
// Entries are immutable once appended; keyed kinds may be replaced
// in place by a later entry with the same key.
type JournalEntry interface {
	EntryKey() string
}

// OrderLine is the committed snapshot of one cart line.
type OrderLine struct {
	ItemID   string   `json:"item_id"`
	Name     string   `json:"name"`
	Size     string   `json:"size,omitempty"`
	MilkID   string   `json:"milk_id,omitempty"`
	ExtraIDs []string `json:"extra_ids,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
	Total    float64  `json:"total"`
}

// OrderEntry is a committed order. Orders are strictly append-only.
type OrderEntry struct {
	OrderID             string      `json:"order_id"`
	Timestamp           string      `json:"timestamp"`
	CustomerName        string      `json:"customer_name,omitempty"`
	DeliveryAddress     string      `json:"delivery_address,omitempty"`
	Items               []OrderLine `json:"items"`
	TotalAmount         float64     `json:"total_amount"`
	Status              string      `json:"status"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
}

func (e OrderEntry) EntryKey() string { return e.OrderID }

// LeadEntry is a committed, scored lead. Leads are strictly append-only.
type LeadEntry struct {
	LeadID      string `json:"lead_id"`
	Timestamp   string `json:"timestamp"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	UseCase     string `json:"use_case"`
	TeamSize    string `json:"team_size"`
	Timeline    string `json:"timeline"`
	CallSummary string `json:"call_summary"`
	Score       int    `json:"score"`
}

func (e LeadEntry) EntryKey() string { return e.LeadID }

// GameSessionEntry is a committed improv game session, replaced in
// place when the same session finishes again (early exit then close).
type GameSessionEntry struct {
	SessionID   string          `json:"session_id"`
	PlayerName  string          `json:"player_name"`
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	TotalRounds int             `json:"total_rounds"`
	MaxRounds   int             `json:"max_rounds"`
	Rounds      []GameRoundInfo `json:"rounds"`
}

// GameRoundInfo is the committed snapshot of one game round.
type GameRoundInfo struct {
	Round         int    `json:"round"`
	Scenario      string `json:"scenario"`
	Improvisation string `json:"improvisation,omitempty"`
	HostReaction  string `json:"host_reaction,omitempty"`
}

func (e GameSessionEntry) EntryKey() string { return e.SessionID }

// CheckInEntry is a committed wellness check-in. Append-only.
type CheckInEntry struct {
	CheckInID  string            `json:"checkin_id"`
	Timestamp  string            `json:"timestamp"`
	Mood       string            `json:"mood,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Activities []WellnessLogInfo `json:"activities"`
}

// WellnessLogInfo is the committed snapshot of one logged activity.
type WellnessLogInfo struct {
	ActivityID string `json:"activity_id"`
	Activity   string `json:"activity"`
	Quantity   int    `json:"quantity"`
	Unit       string `json:"unit,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func (e CheckInEntry) EntryKey() string { return e.CheckInID }

// Timestamp returns the canonical journal timestamp format.
func Timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
