package domain

import (
	"time"

	"github.com/google/uuid"
)

// Permission levels. Level 0 may run everything that has no requirement.
const (
	LevelGuest    = 0
	LevelOperator = 2
	LevelAdmin    = 3
	LevelOwner    = 4
)

// DefaultUser is the user a console session starts as when none is named.
var DefaultUser = User{Name: "console", Level: LevelOwner}

// User is someone commands can run as.
type User struct {
	Name    string
	Level   int
	Created time.Time
}

// HistoryEntry is one top-level execution of a command line.
type HistoryEntry struct {
	ID        uuid.UUID
	Input     string
	User      string
	Result    int
	Success   bool
	Forked    bool
	Error     string
	Timestamp time.Time
}

// HistoryFilter narrows Recent.
type HistoryFilter struct {
	User  string
	Since *time.Time
	Limit int
}
