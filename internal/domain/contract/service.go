package contract

import (
	"context"
	"time"

	"github.com/diegoclair/duty-rotation-bot/internal/domain/entity"
)

// RosterService owns the ordered participant set and is the only component
// allowed to mutate positions and the on-duty flag.
type RosterService interface {
	BootstrapOnDuty(ctx context.Context) error
	CurrentWindow(ctx context.Context, size int) ([]*entity.Participant, error)
	Advance(ctx context.Context) error
	Insert(ctx context.Context, chatUserID, displayName string) error
	Remove(ctx context.Context, chatUserID string) error
	List(ctx context.Context) ([]*entity.Participant, error)
	OnDuty(ctx context.Context) (*entity.Participant, error)
}

// MembershipSynchronizer reconciles the roster against a channel snapshot.
type MembershipSynchronizer interface {
	Synchronize(ctx context.Context, snapshot []entity.ChatMember) error
}

// DutyScheduler is the control surface the slash-command handlers use to
// inspect and pause the running notification loop.
type DutyScheduler interface {
	Pause()
	Resume()
	Paused() bool
	NextTrigger() time.Time
}
