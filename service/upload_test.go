package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"mime/multipart"
	"strings"
	"testing"

	"sideb/types"
)

// makeImageHeader builds a real multipart.FileHeader containing a 1x1 PNG.
func makeImageHeader(t *testing.T, name string) *multipart.FileHeader {
	t.Helper()

	var imgBuf bytes.Buffer
	if err := png.Encode(&imgBuf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatal(err)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("image", name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(imgBuf.Bytes()); err != nil {
		t.Fatal(err)
	}
	w.Close()

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func makeTextHeader(t *testing.T, name string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("image", name)
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("definitely not an image"))
	w.Close()

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func TestUploadContentImage(t *testing.T) {
	svc, ledger, blobs := newTestService()

	resp, err := svc.UploadContentImage(context.Background(), 7, makeImageHeader(t, "photo.png"))
	if err != nil {
		t.Fatal(err)
	}

	if resp.Name != "photo.png" {
		t.Errorf("Name = %q", resp.Name)
	}
	if !strings.HasPrefix(resp.StoragePath, "content/") {
		t.Errorf("StoragePath = %q, want content/ prefix", resp.StoragePath)
	}
	if resp.URL != blobs.PublicURL(resp.StoragePath) {
		t.Errorf("URL = %q does not match storage path", resp.URL)
	}

	// The entry starts provisional, owned by the uploader.
	row, ok := ledger.rows[resp.ImageID]
	if !ok {
		t.Fatal("no ledger row created")
	}
	if row.Status != types.ImageStatusProvisional {
		t.Errorf("status = %q, want provisional", row.Status)
	}
	if row.UserID != 7 {
		t.Errorf("owner = %d, want 7", row.UserID)
	}
	if _, exists := blobs.objects[resp.StoragePath]; !exists {
		t.Error("blob missing after upload")
	}
}

func TestUploadContentImage_RejectsNonImage(t *testing.T) {
	svc, ledger, _ := newTestService()

	_, err := svc.UploadContentImage(context.Background(), 7, makeTextHeader(t, "notes.txt"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(ledger.rows) != 0 {
		t.Error("ledger must stay empty on rejected upload")
	}
}

func TestUploadContentImage_StorageInconsistency(t *testing.T) {
	svc, ledger, blobs := newTestService()
	blobs.dropOnPut = true

	_, err := svc.UploadContentImage(context.Background(), 7, makeImageHeader(t, "p.png"))
	if err == nil || !strings.Contains(err.Error(), ErrStorageInconsistency.Error()) {
		t.Fatalf("err = %v, want storage inconsistency", err)
	}
	if len(ledger.rows) != 0 {
		t.Error("nothing may be recorded without a backing blob")
	}
}

func TestUploadContentImage_LedgerFailureCleansBlob(t *testing.T) {
	svc, ledger, blobs := newTestService()
	ledger.failAll = true

	_, err := svc.UploadContentImage(context.Background(), 7, makeImageHeader(t, "p.png"))
	if err == nil {
		t.Fatal("expected error from ledger insert")
	}
	if len(blobs.objects) != 0 {
		t.Error("orphaned blob left behind after failed ledger insert")
	}
}

func TestUploadCoverImage_BypassesLedger(t *testing.T) {
	svc, ledger, blobs := newTestService()

	resp, err := svc.UploadCoverImage(context.Background(), makeImageHeader(t, "cover.png"))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(resp.URL, "/public/") {
		t.Errorf("URL = %q, want public/ prefix", resp.URL)
	}
	// Covers never enter the lifecycle; no row, only the blob.
	if len(ledger.rows) != 0 {
		t.Error("cover upload must not create a ledger row")
	}
	if len(blobs.objects) != 1 {
		t.Error("cover blob missing")
	}
}

func TestListOwnerImages(t *testing.T) {
	svc, ledger, blobs := newTestService()
	mine := seedEntry(ledger, blobs, 1, 0)
	gone := seedEntry(ledger, blobs, 1, 0)
	ledger.rows[gone.ID].Status = types.ImageStatusGone
	seedEntry(ledger, blobs, 2, 0) // someone else's

	resp, err := svc.ListOwnerImages(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Images) != 1 {
		t.Fatalf("got %d images, want 1", len(resp.Images))
	}
	if resp.Images[0].ImageID != mine.ID {
		t.Errorf("ImageID = %d, want %d", resp.Images[0].ImageID, mine.ID)
	}
}
