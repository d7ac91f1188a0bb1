package booking

import (
	"context"
	"fmt"
	"time"

	"tripnest/models"

	"go.uber.org/zap"
)

// OpenSessions converts cart contents into supplier prebook sessions. All
// distinct offer ids are quoted in one batched call; either every session is
// opened and stored, or none is.
func (s *DefaultBookingSessionService) OpenSessions(ctx context.Context, items []models.CartItem) ([]models.PrebookSession, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	offerIDs := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.Offer.OfferID == "" {
			return nil, ErrMissingOfferID
		}
		if _, dup := seen[item.Offer.OfferID]; dup {
			continue
		}
		seen[item.Offer.OfferID] = struct{}{}
		offerIDs = append(offerIDs, item.Offer.OfferID)
	}

	quoted, err := s.Client.Prebook(ctx, offerIDs)
	if err != nil {
		s.logger().Warn("prebook failed", zap.Int("offers", len(offerIDs)), zap.Error(err))
		return nil, fmt.Errorf("failed to open prebook sessions: %w", err)
	}

	now := time.Now()
	sessions := make([]models.PrebookSession, 0, len(quoted))
	for _, q := range quoted {
		q.Status = models.SessionActive
		q.CreatedAt = now
		sessions = append(sessions, q)
	}

	saved := make([]string, 0, len(sessions))
	for i := range sessions {
		if err := s.Store.Save(ctx, &sessions[i]); err != nil {
			// All-or-nothing: roll back what was already stored.
			for _, id := range saved {
				if delErr := s.Store.Delete(ctx, id); delErr != nil {
					s.logger().Warn("failed to roll back prebook session", zap.String("sessionId", id), zap.Error(delErr))
				}
			}
			return nil, fmt.Errorf("failed to store prebook session: %w", err)
		}
		saved = append(saved, sessions[i].SessionID)
	}

	s.logger().Info("opened prebook sessions", zap.Int("count", len(sessions)))
	return sessions, nil
}

// GetSession returns the stored session by id.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.PrebookSession, error) {
	return s.Store.Get(ctx, sessionID)
}
