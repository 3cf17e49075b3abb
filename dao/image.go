package dao

import (
	"context"
	"time"

	"sideb/models"
	"sideb/types"

	"gorm.io/gorm"
)

// Image is the content-image ledger. Status rows move provisional -> adopted
// and back while an admin edits, and provisional -> gone via the cleanup
// sweep. gone is terminal.
type Image struct {
	Repo[models.Image]
}

func NewImage(db *gorm.DB) *Image {
	return &Image{Repo: NewRepo[models.Image](db)}
}

func (d *Image) CreateImage(ctx context.Context, image *models.Image) error {
	return d.Db.WithContext(ctx).Create(image).Error
}

// FindByOwnerAndStatus scopes a lookup to one owner's rows so that one
// admin's save can never touch another admin's images.
func (d *Image) FindByOwnerAndStatus(ctx context.Context, userID int64, statuses []string) ([]*models.Image, error) {
	var images []*models.Image
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, statuses).
		Find(&images).Error
	return images, err
}

// UpdateStatusByIDs is a bulk, idempotent status transition. Setting a row to
// its current status is a no-op.
func (d *Image) UpdateStatusByIDs(ctx context.Context, ids []int64, status string) error {
	if len(ids) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Image{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}

// FindSweepCandidates returns provisional rows created strictly before the
// cutoff. A nil cutoff disables the age filter and returns every provisional
// row (threshold-zero sweep).
func (d *Image) FindSweepCandidates(ctx context.Context, cutoff *time.Time) ([]*models.Image, error) {
	q := d.Db.WithContext(ctx).Where("status = ?", types.ImageStatusProvisional)
	if cutoff != nil {
		q = q.Where("created_at < ?", *cutoff)
	}
	var images []*models.Image
	err := q.Find(&images).Error
	return images, err
}
