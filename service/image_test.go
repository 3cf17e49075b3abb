package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"sideb/models"
	"sideb/types"
)

// fakeLedger is an in-memory ImageLedger mirroring the DAO's filtering
// semantics (owner scoping, strict created_at < cutoff).
type fakeLedger struct {
	mu      sync.Mutex
	rows    map[int64]*models.Image
	failAll bool
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{rows: make(map[int64]*models.Image)}
}

var errLedgerDown = errors.New("ledger unavailable")

func (l *fakeLedger) CreateImage(_ context.Context, image *models.Image) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failAll {
		return errLedgerDown
	}
	cp := *image
	l.rows[image.ID] = &cp
	return nil
}

func (l *fakeLedger) FindByOwnerAndStatus(_ context.Context, userID int64, statuses []string) ([]*models.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failAll {
		return nil, errLedgerDown
	}
	want := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		want[s] = struct{}{}
	}
	var out []*models.Image
	for _, row := range l.rows {
		if row.UserID != userID {
			continue
		}
		if _, ok := want[row.Status]; !ok {
			continue
		}
		cp := *row
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (l *fakeLedger) UpdateStatusByIDs(_ context.Context, ids []int64, status string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failAll {
		return errLedgerDown
	}
	for _, id := range ids {
		if row, ok := l.rows[id]; ok {
			row.Status = status
			row.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (l *fakeLedger) FindSweepCandidates(_ context.Context, cutoff *time.Time) ([]*models.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failAll {
		return nil, errLedgerDown
	}
	var out []*models.Image
	for _, row := range l.rows {
		if row.Status != types.ImageStatusProvisional {
			continue
		}
		if cutoff != nil && !row.CreatedAt.Before(*cutoff) {
			continue
		}
		cp := *row
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (l *fakeLedger) status(id int64) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	row, ok := l.rows[id]
	if !ok {
		return ""
	}
	return row.Status
}

func (l *fakeLedger) add(row *models.Image) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := *row
	l.rows[row.ID] = &cp
}

// fakeBlobStore is an in-memory BlobStore recording deletions.
type fakeBlobStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	deletes   map[string]int
	failPut   bool
	failDel   error
	dropOnPut bool // Put "succeeds" but nothing is stored
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		objects: make(map[string][]byte),
		deletes: make(map[string]int),
	}
}

func (b *fakeBlobStore) Put(_ context.Context, key string, body io.Reader) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failPut {
		return errors.New("put failed")
	}
	if b.dropOnPut {
		return nil
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return err
	}
	b.objects[key] = buf.Bytes()
	return nil
}

func (b *fakeBlobStore) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deletes[key]++
	if b.failDel != nil {
		return b.failDel
	}
	delete(b.objects, key)
	return nil
}

func (b *fakeBlobStore) Exists(_ context.Context, key string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.objects[key]
	return ok, nil
}

func (b *fakeBlobStore) PublicURL(key string) string {
	return "https://img.sideb.test/" + key
}

func (b *fakeBlobStore) deleteCount(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.deletes[key]
}

func newTestService() (*ImageService, *fakeLedger, *fakeBlobStore) {
	ledger := newFakeLedger()
	blobs := newFakeBlobStore()
	return &ImageService{Ledger: ledger, Blobs: blobs}, ledger, blobs
}

var seq int64

// seedEntry registers a provisional ledger row with a backing blob, the state
// a content upload leaves behind.
func seedEntry(ledger *fakeLedger, blobs *fakeBlobStore, userID int64, age time.Duration) *models.Image {
	seq++
	key := fmt.Sprintf("content/2026/01/01/%d.png", seq)
	blobs.objects[key] = []byte("png")
	entry := &models.Image{
		ID:          seq,
		UserID:      userID,
		StoragePath: key,
		PublicURL:   blobs.PublicURL(key),
		Status:      types.ImageStatusProvisional,
		CreatedAt:   time.Now().Add(-age),
		UpdatedAt:   time.Now().Add(-age),
	}
	ledger.add(entry)
	return entry
}
