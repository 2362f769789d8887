package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/diegoclair/duty-rotation-bot/internal/domain"
	"github.com/diegoclair/duty-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/duty-rotation-bot/internal/domain/entity"
)

// rosterService implements contract.RosterService on top of the participant
// repository. It is the sole mutator of position and on_duty. The mutex
// serializes the orchestrator against the slash-command handlers.
type rosterService struct {
	dm contract.DataManager
	mu sync.Mutex
}

func newRoster(dm contract.DataManager) *rosterService {
	return &rosterService{dm: dm}
}

// wrapPosition maps i into 1..n with a 1-based modulo, so position values
// never leave the contiguous range the store maintains.
func wrapPosition(i, n int) int {
	return ((i - 1) % n) + 1
}

// BootstrapOnDuty assigns duty to the participant at position 1 when the
// roster is non-empty and nobody holds it. Idempotent.
func (s *rosterService) BootstrapOnDuty(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.dm.Participant().GetOnDuty()
	if err != nil {
		return fmt.Errorf("failed to get duty holder: %w", err)
	}
	if current != nil {
		return nil
	}

	first, err := s.dm.Participant().GetByPosition(1)
	if err != nil {
		return fmt.Errorf("failed to get first participant: %w", err)
	}
	if first == nil {
		// Empty roster
		return nil
	}

	return s.dm.Participant().SetOnDuty(first.ID, true)
}

// CurrentWindow returns the next size participants starting from the duty
// holder, wrapping around the rotation. It returns nil when nobody is on duty.
func (s *rosterService) CurrentWindow(ctx context.Context, size int) ([]*entity.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	participants, err := s.dm.Participant().ListOrdered()
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	if len(participants) == 0 {
		return nil, nil
	}

	holderIdx := -1
	for i, participant := range participants {
		if participant.Position != i+1 {
			return nil, fmt.Errorf("%w: position %d held by %s, expected %d",
				domain.ErrRosterCorrupt, participant.Position, participant.ChatUserID, i+1)
		}
		if participant.OnDuty {
			if holderIdx != -1 {
				return nil, fmt.Errorf("%w: more than one participant on duty", domain.ErrRosterCorrupt)
			}
			holderIdx = i
		}
	}
	if holderIdx == -1 {
		return nil, nil
	}

	n := len(participants)
	window := make([]*entity.Participant, 0, size)
	for i := 0; i < size; i++ {
		window = append(window, participants[wrapPosition(holderIdx+1+i, n)-1])
	}

	return window, nil
}

// Advance moves duty from the current holder to the participant at the next
// position, wrapping back to 1 after the last. No-op when nobody is on duty.
func (s *rosterService) Advance(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.advanceLocked(ctx)
}

func (s *rosterService) advanceLocked(ctx context.Context) error {
	current, err := s.dm.Participant().GetOnDuty()
	if err != nil {
		return fmt.Errorf("failed to get duty holder: %w", err)
	}
	if current == nil {
		return nil
	}

	count, err := s.dm.Participant().Count()
	if err != nil {
		return fmt.Errorf("failed to count participants: %w", err)
	}

	nextPosition := wrapPosition(current.Position+1, count)
	next, err := s.dm.Participant().GetByPosition(nextPosition)
	if err != nil {
		return fmt.Errorf("failed to get next participant: %w", err)
	}
	if next == nil {
		return fmt.Errorf("%w: no participant at position %d", domain.ErrRosterCorrupt, nextPosition)
	}

	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Participant().SetOnDuty(current.ID, false); err != nil {
			return fmt.Errorf("failed to clear duty holder: %w", err)
		}
		if err := tx.Participant().SetOnDuty(next.ID, true); err != nil {
			return fmt.Errorf("failed to set duty holder: %w", err)
		}
		return nil
	})
}

// Insert appends a new participant at the end of the rotation. It never
// touches existing positions and never assigns duty.
func (s *rosterService) Insert(ctx context.Context, chatUserID, displayName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.dm.Participant().Count()
	if err != nil {
		return fmt.Errorf("failed to count participants: %w", err)
	}

	participant := &entity.Participant{
		ChatUserID:  chatUserID,
		DisplayName: displayName,
		Position:    count + 1,
	}

	return s.dm.Participant().Create(participant)
}

// Remove deletes a participant and compacts the positions behind it. When the
// removed participant holds duty, the next one is promoted first so the duty
// pointer survives membership churn. Removing an unknown id is a no-op.
func (s *rosterService) Remove(ctx context.Context, chatUserID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	participant, err := s.dm.Participant().GetByChatID(chatUserID)
	if err != nil {
		return fmt.Errorf("failed to find participant: %w", err)
	}
	if participant == nil {
		return nil
	}

	if participant.OnDuty {
		if err := s.advanceLocked(ctx); err != nil {
			return err
		}
	}

	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Participant().Delete(participant.ID); err != nil {
			return err
		}
		return tx.Participant().ShiftPositionsAfter(participant.Position)
	})
}

func (s *rosterService) List(ctx context.Context) ([]*entity.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dm.Participant().ListOrdered()
}

func (s *rosterService) OnDuty(ctx context.Context) (*entity.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dm.Participant().GetOnDuty()
}
