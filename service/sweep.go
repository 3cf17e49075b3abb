package service

import (
	"context"
	"fmt"
	"time"

	"sideb/pkg/log"
	"sideb/types"

	"go.uber.org/zap"
)

// Sweep finds provisional entries older than the threshold, deletes their
// blobs and tombstones the rows. thresholdHours 0 disables the age filter and
// sweeps every provisional entry.
//
// Blob deletion runs before the status update, so a crash mid-sweep leaves at
// worst a provisional row pointing at an already-deleted blob, which the next
// run tombstones. The row is marked gone even when the blob delete fails: a
// provisional image is disposable and a missing blob is not worth retrying.
// Adopted entries are never selected, regardless of age.
func (s *ImageService) Sweep(ctx context.Context, thresholdHours int) (*types.SweepReport, error) {
	report := &types.SweepReport{
		ThresholdHours: thresholdHours,
		ExecutedAt:     time.Now(),
	}

	var cutoff *time.Time
	if thresholdHours > 0 {
		t := report.ExecutedAt.Add(-time.Duration(thresholdHours) * time.Hour)
		cutoff = &t
	}

	candidates, err := s.Ledger.FindSweepCandidates(ctx, cutoff)
	if err != nil {
		// Cannot even enumerate: the whole invocation fails and the next
		// scheduled run is the retry.
		return nil, fmt.Errorf("fetch sweep candidates: %w", err)
	}

	report.TotalFound = len(candidates)
	if len(candidates) == 0 {
		report.Success = true
		report.Message = fmt.Sprintf("no provisional images older than %d hours", thresholdHours)
		report.CompletedAt = time.Now()
		return report, nil
	}

	for _, entry := range candidates {
		if err := s.Blobs.Delete(ctx, entry.StoragePath); err != nil {
			report.Errors = append(report.Errors,
				fmt.Sprintf("delete %s from storage: %v", entry.StoragePath, err))
			// Still tombstone the row below.
		}

		if err := s.Ledger.UpdateStatusByIDs(ctx, []int64{entry.ID}, types.ImageStatusGone); err != nil {
			report.Errors = append(report.Errors,
				fmt.Sprintf("update image %d: %v", entry.ID, err))
			continue
		}

		report.DeletedCount++
		report.DeletedPaths = append(report.DeletedPaths, entry.StoragePath)
	}

	report.Success = true
	report.Message = fmt.Sprintf("cleanup completed: %d images deleted", report.DeletedCount)
	report.CompletedAt = time.Now()

	log.L.Info("image sweep completed",
		zap.Int("found", report.TotalFound),
		zap.Int("deleted", report.DeletedCount),
		zap.Int("errors", len(report.Errors)),
		zap.Int("threshold_hours", thresholdHours),
	)
	return report, nil
}
