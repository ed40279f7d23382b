package domain

import (
	"encoding/json"
	"time"
)

// CalculationRecord is one stored scenario calculation.
type CalculationRecord struct {
	ID        string          `json:"id"`
	Scenario  string          `json:"scenario"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}
