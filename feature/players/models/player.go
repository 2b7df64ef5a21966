package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// PlayerValue is one master record as stored in the sink, keyed by the
// Sleeper player id.
type PlayerValue struct {
	SleeperID   string    `gorm:"column:sleeper_id;primaryKey;type:varchar(32)" json:"sleeper_id"`
	FullName    string    `gorm:"column:full_name;type:varchar(128)" json:"full_name"`
	Position    string    `gorm:"column:position;type:varchar(16)" json:"position"`
	Team        string    `gorm:"column:team;type:varchar(16)" json:"team"`
	Document    string    `gorm:"column:document;type:text" json:"-"`
	LastUpdated time.Time `gorm:"column:last_updated;type:datetime" json:"last_updated"`
}

func (PlayerValue) TableName() string {
	return "player_values"
}

// Player is the API view of a master record: every stored field plus the
// key and update time.
type Player map[string]any

// ToPlayer decodes the stored document. Numbers stay exact.
func (p PlayerValue) ToPlayer() (Player, error) {
	out := Player{}
	if p.Document != "" {
		dec := json.NewDecoder(bytes.NewReader([]byte(p.Document)))
		dec.UseNumber()
		if err := dec.Decode(&out); err != nil {
			return nil, fmt.Errorf("failed to decode document of %s: %w", p.SleeperID, err)
		}
	}
	out["sleeper_id"] = p.SleeperID
	out["last_updated"] = p.LastUpdated.UTC().Format(time.RFC3339)
	return out, nil
}

// BatchRequest is the body of POST /players/batch.
type BatchRequest struct {
	SleeperIDs []string `json:"sleeper_ids"`
}

// PlayerPage is a page of master records.
type PlayerPage struct {
	Total  int64    `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
	Items  []Player `json:"items"`
}
