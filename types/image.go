package types

import "time"

// Content-image lifecycle states.
//
// provisional: uploaded while drafting, not yet confirmed in use.
// adopted:     referenced by the owner's most recently saved content.
// gone:        blob deleted by the cleanup sweep; row kept as a tombstone.
const (
	ImageStatusProvisional = "provisional"
	ImageStatusAdopted     = "adopted"
	ImageStatusGone        = "gone"
)

type ContentImageResp struct {
	ImageID     int64  `json:"image_id"`
	URL         string `json:"url"`
	Name        string `json:"name"`
	StoragePath string `json:"storage_path"`
}

type CoverImageResp struct {
	URL string `json:"url"`
}

type ListImagesResp struct {
	Images []*ContentImageItem `json:"images"`
}

type ContentImageItem struct {
	ImageID   int64     `json:"image_id"`
	URL       string    `json:"url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SweepReport is the result of one cleanup invocation.
type SweepReport struct {
	Success        bool      `json:"success"`
	Message        string    `json:"message"`
	DeletedCount   int       `json:"deletedCount"`
	TotalFound     int       `json:"totalFound"`
	ThresholdHours int       `json:"hoursThreshold"`
	DeletedPaths   []string  `json:"deletedPaths,omitempty"`
	Errors         []string  `json:"errors,omitempty"`
	ExecutedAt     time.Time `json:"executedAt"`
	CompletedAt    time.Time `json:"completedAt"`
}
