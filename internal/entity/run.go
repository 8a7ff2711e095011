package entity

import (
	"time"

	"github.com/google/uuid"
)

// RunStats describes one analysis run for logging and reporting. Checksums
// are xxhash digests of the raw input bytes and double as the memoization
// cache key components.
type RunStats struct {
	RunID               uuid.UUID     `json:"run_id"`
	OnboardingRows      int           `json:"onboarding_rows"`
	TransactionRows     int           `json:"transaction_rows"`
	ChunksProcessed     int           `json:"chunks_processed"`
	OnboardingChecksum  string        `json:"onboarding_checksum,omitempty"`
	TransactionChecksum string        `json:"transaction_checksum,omitempty"`
	Elapsed             time.Duration `json:"elapsed"`
	Warnings            []string      `json:"warnings,omitempty"`
}
