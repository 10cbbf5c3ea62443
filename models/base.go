package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Base carries the identity and bookkeeping fields shared by every entity.
type Base struct {
	ID        string    `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func (b *Base) EntityID() string          { return b.ID }
func (b *Base) SetEntityID(id string)     { b.ID = id }
func (b *Base) StampCreated(t time.Time)  { b.CreatedAt = t; b.UpdatedAt = t }
func (b *Base) StampUpdated(t time.Time)  { b.UpdatedAt = t }

// StringList stores a []string as a JSON text column in SQLite.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}
