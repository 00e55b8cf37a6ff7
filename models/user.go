package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// User is an operator of the back office. Users are never deleted; inactive
// accounts keep their records but cannot log in.
type User struct {
	ID             uint `gorm:"primaryKey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Email          string `gorm:"size:255;not null;uniqueIndex"`
	Name           string `gorm:"size:255;not null"`
	HashedPassword []byte
	Roles          RoleList `gorm:"type:text"`
	Active         bool     `gorm:"default:true;not null"`
	LastLoginAt    *time.Time
}

// RoleList stores the user's role claims as a JSON array column. Roles ride
// along in token claims only; no permission matrix hangs off them.
type RoleList []string

func (r RoleList) Value() (driver.Value, error) {
	return json.Marshal([]string(r))
}

func (r *RoleList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*r = nil
		return nil
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	}
	return fmt.Errorf("models: cannot scan %T into RoleList", value)
}
