package models

import (
	"time"

	"gorm.io/datatypes"
)

// Session groups the searches recorded during one CLI or library session.
type Session struct {
	ID        uint      `gorm:"primaryKey"`
	UUID      string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	StartedAt time.Time `gorm:"autoCreateTime"`
	EndedAt   *time.Time

	// Statistics
	SearchCount int `gorm:"default:0"`

	// Client info (tool version, hostname)
	Client datatypes.JSON `gorm:"type:jsonb"`

	Searches []Search `gorm:"foreignKey:SessionID"`
}

// TableName overrides the default pluralized name.
func (Session) TableName() string {
	return "sessions"
}

// Search is one recorded search invocation.
type Search struct {
	ID        uint `gorm:"primaryKey"`
	SessionID uint `gorm:"index"`

	// What was searched
	Pattern   string `gorm:"type:text;not null"`
	Algorithm string `gorm:"type:varchar(50);not null"`
	Target    string `gorm:"type:text"`

	// Outcome
	Found  bool `gorm:"default:false"`
	Offset int  `gorm:"default:-1"`

	// Aggregate stats
	FilesScanned   int
	FilesMatched   int
	DurationMicros int64

	// Free-form extras (flags, include/exclude globs)
	Extras datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

// TableName overrides the default pluralized name.
func (Search) TableName() string {
	return "searches"
}
