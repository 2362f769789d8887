package contract

import (
	"context"

	"github.com/diegoclair/duty-rotation-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Participant() ParticipantRepo
}

// ParticipantRepo defines the contract for the participant repository.
// Lookups return (nil, nil) when no row matches.
type ParticipantRepo interface {
	Create(participant *entity.Participant) error
	GetByChatID(chatUserID string) (*entity.Participant, error)
	GetByPosition(position int) (*entity.Participant, error)
	GetOnDuty() (*entity.Participant, error)
	ListOrdered() ([]*entity.Participant, error)
	Count() (int, error)
	Delete(participantID int64) error
	SetOnDuty(participantID int64, onDuty bool) error
	UpdateDisplayName(participantID int64, displayName string) error
	ShiftPositionsAfter(position int) error
}
