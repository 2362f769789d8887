package service

import (
	"context"
	"fmt"
	"log"

	"github.com/diegoclair/duty-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/duty-rotation-bot/internal/domain/entity"
)

// syncService reconciles the roster against a channel-membership snapshot.
// Bots and excluded users never enter the rotation; participants that left the
// channel (or became excluded) are removed through the roster service so duty
// promotion and compaction apply.
type syncService struct {
	dm       contract.DataManager
	roster   contract.RosterService
	excluded map[string]struct{}
}

func newSynchronizer(dm contract.DataManager, roster contract.RosterService, excludedIDs []string) *syncService {
	excluded := make(map[string]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}

	return &syncService{
		dm:       dm,
		roster:   roster,
		excluded: excluded,
	}
}

// Synchronize runs the insert pass fully before the remove pass. It is
// idempotent: an unchanged snapshot produces no state change.
func (s *syncService) Synchronize(ctx context.Context, snapshot []entity.ChatMember) error {
	eligible := make(map[string]struct{}, len(snapshot))

	for _, member := range snapshot {
		if member.IsBot {
			continue
		}
		if _, ok := s.excluded[member.ID]; ok {
			continue
		}
		eligible[member.ID] = struct{}{}

		existing, err := s.dm.Participant().GetByChatID(member.ID)
		if err != nil {
			return fmt.Errorf("failed to look up participant %s: %w", member.ID, err)
		}

		if existing == nil {
			log.Printf("Adding %s (%s) to the rotation", member.DisplayName, member.ID)
			if err := s.roster.Insert(ctx, member.ID, member.DisplayName); err != nil {
				return fmt.Errorf("failed to insert participant %s: %w", member.ID, err)
			}
			continue
		}

		// Upstream rename
		if existing.DisplayName != member.DisplayName {
			if err := s.dm.Participant().UpdateDisplayName(existing.ID, member.DisplayName); err != nil {
				return fmt.Errorf("failed to rename participant %s: %w", member.ID, err)
			}
		}
	}

	stored, err := s.roster.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list participants: %w", err)
	}

	for _, participant := range stored {
		if _, ok := eligible[participant.ChatUserID]; ok {
			continue
		}
		log.Printf("Removing %s (%s) from the rotation", participant.DisplayName, participant.ChatUserID)
		if err := s.roster.Remove(ctx, participant.ChatUserID); err != nil {
			return fmt.Errorf("failed to remove participant %s: %w", participant.ChatUserID, err)
		}
	}

	return nil
}
