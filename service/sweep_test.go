package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"sideb/types"
)

func TestSweep_AgeGate(t *testing.T) {
	svc, ledger, blobs := newTestService()
	young := seedEntry(ledger, blobs, 1, 23*time.Hour)
	old := seedEntry(ledger, blobs, 1, 25*time.Hour)

	report, err := svc.Sweep(context.Background(), 24)
	if err != nil {
		t.Fatal(err)
	}

	if got := ledger.status(young.ID); got != types.ImageStatusProvisional {
		t.Errorf("young entry: status = %q, want provisional", got)
	}
	if got := ledger.status(old.ID); got != types.ImageStatusGone {
		t.Errorf("old entry: status = %q, want gone", got)
	}
	if report.TotalFound != 1 || report.DeletedCount != 1 {
		t.Errorf("report: found=%d deleted=%d, want 1/1", report.TotalFound, report.DeletedCount)
	}
	if blobs.deleteCount(old.StoragePath) != 1 {
		t.Errorf("old blob deleted %d times, want once", blobs.deleteCount(old.StoragePath))
	}
	if blobs.deleteCount(young.StoragePath) != 0 {
		t.Error("young blob should not have been touched")
	}
}

func TestSweep_AdoptedImmunity(t *testing.T) {
	svc, ledger, blobs := newTestService()
	entry := seedEntry(ledger, blobs, 1, 1000*time.Hour)
	ledger.rows[entry.ID].Status = types.ImageStatusAdopted

	report, err := svc.Sweep(context.Background(), 24)
	if err != nil {
		t.Fatal(err)
	}

	if got := ledger.status(entry.ID); got != types.ImageStatusAdopted {
		t.Fatalf("adopted entry: status = %q, want adopted regardless of age", got)
	}
	if report.TotalFound != 0 {
		t.Errorf("report.TotalFound = %d, want 0", report.TotalFound)
	}
}

func TestSweep_ThresholdZeroSweepsAllProvisional(t *testing.T) {
	svc, ledger, blobs := newTestService()
	fresh := seedEntry(ledger, blobs, 1, 0)
	adopted := seedEntry(ledger, blobs, 2, 0)
	ledger.rows[adopted.ID].Status = types.ImageStatusAdopted

	report, err := svc.Sweep(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}

	if got := ledger.status(fresh.ID); got != types.ImageStatusGone {
		t.Errorf("fresh provisional: status = %q, want gone", got)
	}
	if got := ledger.status(adopted.ID); got != types.ImageStatusAdopted {
		t.Errorf("adopted: status = %q, want adopted", got)
	}
	if report.DeletedCount != 1 {
		t.Errorf("report.DeletedCount = %d, want 1", report.DeletedCount)
	}
}

func TestSweep_BlobDeleteFailureStillTombstones(t *testing.T) {
	svc, ledger, blobs := newTestService()
	entry := seedEntry(ledger, blobs, 1, 48*time.Hour)
	blobs.failDel = errors.New("storage unavailable")

	report, err := svc.Sweep(context.Background(), 24)
	if err != nil {
		t.Fatal(err)
	}

	// The row is tombstoned even though the blob delete failed; the error
	// is reported, not fatal.
	if got := ledger.status(entry.ID); got != types.ImageStatusGone {
		t.Fatalf("status = %q, want gone", got)
	}
	if len(report.Errors) != 1 {
		t.Fatalf("report.Errors = %v, want one entry", report.Errors)
	}
	if !report.Success {
		t.Error("per-item failure must not fail the sweep")
	}
}

func TestSweep_PartialFailureContinues(t *testing.T) {
	svc, ledger, blobs := newTestService()
	var entries []int64
	for i := 0; i < 5; i++ {
		e := seedEntry(ledger, blobs, 1, 48*time.Hour)
		entries = append(entries, e.ID)
	}
	blobs.failDel = errors.New("flaky backend")

	report, err := svc.Sweep(context.Background(), 24)
	if err != nil {
		t.Fatal(err)
	}

	// Every candidate was processed despite per-item errors.
	if report.TotalFound != 5 {
		t.Errorf("TotalFound = %d, want 5", report.TotalFound)
	}
	for _, id := range entries {
		if got := ledger.status(id); got != types.ImageStatusGone {
			t.Errorf("entry %d: status = %q, want gone", id, got)
		}
	}
	if len(report.Errors) != 5 {
		t.Errorf("len(Errors) = %d, want 5", len(report.Errors))
	}
}

func TestSweep_TransportFailure(t *testing.T) {
	svc, ledger, blobs := newTestService()
	seedEntry(ledger, blobs, 1, 48*time.Hour)
	ledger.failAll = true

	report, err := svc.Sweep(context.Background(), 24)
	if err == nil {
		t.Fatal("expected error when the ledger is unreachable")
	}
	if report != nil {
		t.Errorf("report should be nil on transport failure, got %+v", report)
	}
}

func TestSweep_EmptyLedger(t *testing.T) {
	svc, _, _ := newTestService()

	report, err := svc.Sweep(context.Background(), 24)
	if err != nil {
		t.Fatal(err)
	}
	if !report.Success || report.TotalFound != 0 || report.DeletedCount != 0 {
		t.Errorf("unexpected report: %+v", report)
	}
	if report.CompletedAt.Before(report.ExecutedAt) {
		t.Error("CompletedAt before ExecutedAt")
	}
}

func TestSweep_GoneIsTerminal(t *testing.T) {
	svc, ledger, blobs := newTestService()
	entry := seedEntry(ledger, blobs, 1, 48*time.Hour)
	ctx := context.Background()

	if _, err := svc.Sweep(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if got := ledger.status(entry.ID); got != types.ImageStatusGone {
		t.Fatalf("status = %q, want gone", got)
	}

	// Neither further sweeps nor reconciles move a tombstoned row.
	if _, err := svc.Sweep(ctx, 0); err != nil {
		t.Fatal(err)
	}
	content := fmt.Sprintf("![back](%s)", entry.PublicURL)
	if err := svc.Reconcile(ctx, 1, content); err != nil {
		t.Fatal(err)
	}
	if got := ledger.status(entry.ID); got != types.ImageStatusGone {
		t.Fatalf("status = %q, want gone to stay terminal", got)
	}
	if blobs.deleteCount(entry.StoragePath) != 1 {
		t.Errorf("blob deleted %d times, want exactly once", blobs.deleteCount(entry.StoragePath))
	}
}

// Scenario: upload, never reference, sweep too early, then sweep after the
// entry has aged past the threshold.
func TestSweep_LifecycleScenario(t *testing.T) {
	svc, ledger, blobs := newTestService()
	entry := seedEntry(ledger, blobs, 1, 0)
	ctx := context.Background()

	report, err := svc.Sweep(ctx, 24)
	if err != nil {
		t.Fatal(err)
	}
	if got := ledger.status(entry.ID); got != types.ImageStatusProvisional {
		t.Fatalf("too-young entry swept: status = %q", got)
	}
	if report.DeletedCount != 0 {
		t.Errorf("DeletedCount = %d, want 0", report.DeletedCount)
	}

	// 25 hours pass.
	ledger.rows[entry.ID].CreatedAt = time.Now().Add(-25 * time.Hour)

	report, err = svc.Sweep(ctx, 24)
	if err != nil {
		t.Fatal(err)
	}
	if got := ledger.status(entry.ID); got != types.ImageStatusGone {
		t.Fatalf("aged entry: status = %q, want gone", got)
	}
	if blobs.deleteCount(entry.StoragePath) != 1 {
		t.Errorf("blob delete attempted %d times, want once", blobs.deleteCount(entry.StoragePath))
	}
	if len(report.DeletedPaths) != 1 || report.DeletedPaths[0] != entry.StoragePath {
		t.Errorf("DeletedPaths = %v", report.DeletedPaths)
	}
}
