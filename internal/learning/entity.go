// Package learning declares the LearningPattern entity, schema-only.
package learning

import "time"

type LearningPattern struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PatternType  string    `json:"pattern_type"`
	PatternValue string    `json:"pattern_value"`
	SuccessRate  float64   `json:"success_rate"`
	SampleSize   int       `json:"sample_size"`
	LastUpdated  time.Time `json:"last_updated"`
}
