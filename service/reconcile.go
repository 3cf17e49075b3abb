package service

import (
	"context"
	"fmt"

	"sideb/pkg/markdown"
	"sideb/types"
)

// Reconcile flips ledger statuses for one owner so they match the content
// that was just saved: provisional entries whose URL now appears in the text
// become adopted, adopted entries whose URL no longer appears are demoted
// back to provisional (eligible for reuse, or eventually for the sweep).
//
// Only the owner's rows are considered, so a save can never alter another
// admin's images even if both posts embed the same URL. URLs in the text that
// the ledger never issued are ignored.
func (s *ImageService) Reconcile(ctx context.Context, userID int64, content string) error {
	referenced := markdown.ExtractImageURLs(content)
	refset := make(map[string]struct{}, len(referenced))
	for _, url := range referenced {
		refset[url] = struct{}{}
	}

	candidates, err := s.Ledger.FindByOwnerAndStatus(ctx, userID,
		[]string{types.ImageStatusProvisional, types.ImageStatusAdopted})
	if err != nil {
		return fmt.Errorf("fetch owner images: %w", err)
	}
	if len(candidates) == 0 {
		return nil
	}

	var adopt, demote []int64
	for _, entry := range candidates {
		_, used := refset[entry.PublicURL]
		switch {
		case used && entry.Status == types.ImageStatusProvisional:
			adopt = append(adopt, entry.ID)
		case !used && entry.Status == types.ImageStatusAdopted:
			demote = append(demote, entry.ID)
		}
	}

	if err := s.Ledger.UpdateStatusByIDs(ctx, adopt, types.ImageStatusAdopted); err != nil {
		return fmt.Errorf("adopt images: %w", err)
	}
	if err := s.Ledger.UpdateStatusByIDs(ctx, demote, types.ImageStatusProvisional); err != nil {
		return fmt.Errorf("demote images: %w", err)
	}
	return nil
}
