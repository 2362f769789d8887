package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/diegoclair/duty-rotation-bot/internal/domain"
	"github.com/diegoclair/duty-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/duty-rotation-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

const (
	// minSleepStep bounds the geometric wait: while more time than this
	// remains, sleep half of it and re-measure; below it, sleep the exact
	// remainder. Long waits re-anchor against the clock without busy-polling.
	minSleepStep = 200 * time.Millisecond

	// retriggerGuard keeps a misbehaving clock or transport from turning the
	// cycle into a tight loop.
	retriggerGuard = 1 * time.Second
)

// Settings is the orchestrator configuration, resolved once at startup.
type Settings struct {
	ChannelID string
	FirstDay  int
	SecondDay int
	Hour      int
	Minute    int
}

// orchestrator drives the duty cycle: synchronize the roster, wait for the
// next trigger, notify the channel, and advance the rotation after the second
// trigger day of each week.
type orchestrator struct {
	roster       contract.RosterService
	synchronizer contract.MembershipSynchronizer
	chatClient   contract.ChatClient
	settings     Settings

	mu      sync.Mutex
	paused  bool
	nextRun time.Time
}

func newOrchestrator(roster contract.RosterService, synchronizer contract.MembershipSynchronizer, chatClient contract.ChatClient, settings Settings) *orchestrator {
	return &orchestrator{
		roster:       roster,
		synchronizer: synchronizer,
		chatClient:   chatClient,
		settings:     settings,
	}
}

// Run executes duty cycles until ctx is cancelled or the roster state turns
// out to be corrupt. Any other failure abandons the current cycle and the
// loop re-enters synchronization.
func (o *orchestrator) Run(ctx context.Context) error {
	log.Printf("Duty loop starting for channel %s (%s/%s at %02d:%02d)",
		o.settings.ChannelID,
		domain.WeekdayNames[o.settings.FirstDay],
		domain.WeekdayNames[o.settings.SecondDay],
		o.settings.Hour, o.settings.Minute,
	)

	for {
		err := o.cycle(ctx)
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			log.Println("Duty loop stopped")
			return nil
		case errors.Is(err, domain.ErrRosterCorrupt):
			return err
		default:
			log.Printf("Duty cycle failed, resynchronizing on next pass: %v", err)
		}

		if err := sleepCtx(ctx, retriggerGuard); err != nil {
			log.Println("Duty loop stopped")
			return nil
		}
	}
}

func (o *orchestrator) cycle(ctx context.Context) error {
	if err := o.synchronize(ctx); err != nil {
		return err
	}

	next := nextTrigger(time.Now(), o.settings.FirstDay, o.settings.SecondDay, o.settings.Hour, o.settings.Minute)
	o.setNextTrigger(next)
	log.Printf("Next duty notification at %s", next.Format("2006-01-02 15:04:05 MST"))

	if err := o.waitUntil(ctx, next); err != nil {
		return err
	}

	return o.fire(ctx, next)
}

// fire handles one reached trigger: send the notification and, when the
// trigger was the week's second day, advance the rotation. A paused
// orchestrator skips both and leaves the roster untouched.
func (o *orchestrator) fire(ctx context.Context, trigger time.Time) error {
	if o.Paused() {
		log.Println("Notifications paused, skipping this trigger")
		return nil
	}

	secondDay := weekdayIndex(trigger) == o.settings.SecondDay
	if err := o.notify(ctx, trigger, secondDay); err != nil {
		return err
	}

	// The rotation only moves once per full cycle, after the second day. A
	// failed send returns above, so no advance happens without a notification.
	if secondDay {
		return o.roster.Advance(ctx)
	}

	return nil
}

// synchronize heals a missing duty holder, reconciles against the channel
// membership, and bootstraps again so a freshly filled roster has a holder
// before the first notification.
func (o *orchestrator) synchronize(ctx context.Context) error {
	if err := o.roster.BootstrapOnDuty(ctx); err != nil {
		return err
	}

	snapshot, err := o.fetchMembers()
	if err != nil {
		return err
	}

	if err := o.synchronizer.Synchronize(ctx, snapshot); err != nil {
		return err
	}

	return o.roster.BootstrapOnDuty(ctx)
}

func (o *orchestrator) fetchMembers() ([]entity.ChatMember, error) {
	var ids []string
	cursor := ""
	for {
		page, next, err := o.chatClient.GetUsersInConversation(&slack.GetUsersInConversationParameters{
			ChannelID: o.settings.ChannelID,
			Cursor:    cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list channel members: %w", err)
		}
		ids = append(ids, page...)

		if next == "" {
			break
		}
		cursor = next
	}

	if len(ids) == 0 {
		return nil, nil
	}

	users, err := o.chatClient.GetUsersInfo(ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve channel members: %w", err)
	}

	members := make([]entity.ChatMember, 0, len(*users))
	for _, user := range *users {
		members = append(members, entity.ChatMember{
			ID:          user.ID,
			DisplayName: displayName(user),
			IsBot:       user.IsBot,
		})
	}

	return members, nil
}

func displayName(user slack.User) string {
	if user.Profile.RealName != "" {
		return user.Profile.RealName
	}
	if user.Profile.DisplayName != "" {
		return user.Profile.DisplayName
	}
	return user.Name
}

// waitUntil suspends until target with the geometric backoff wait, checking
// cancellation between sleep increments.
func (o *orchestrator) waitUntil(ctx context.Context, target time.Time) error {
	for {
		remaining := time.Until(target)
		if remaining <= 0 {
			return nil
		}

		step := remaining / 2
		if remaining < minSleepStep {
			step = remaining
		}

		if err := sleepCtx(ctx, step); err != nil {
			return err
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (o *orchestrator) notify(ctx context.Context, trigger time.Time, secondDay bool) error {
	window, err := o.roster.CurrentWindow(ctx, domain.RotationWindowSize)
	if err != nil {
		return err
	}

	msg := composeDutyNotification(window, trigger, secondDay)

	if _, _, err := o.chatClient.PostMessage(o.settings.ChannelID,
		slack.MsgOptionText(msg.Text, false),
		slack.MsgOptionAsUser(false),
	); err != nil {
		return fmt.Errorf("failed to send roster message: %w", err)
	}

	if len(msg.Followup) > 0 {
		// Sent strictly after the roster message so the checklist lands below it
		if _, _, err := o.chatClient.PostMessage(o.settings.ChannelID,
			slack.MsgOptionBlocks(msg.Followup...),
		); err != nil {
			return fmt.Errorf("failed to send checklist message: %w", err)
		}
	}

	log.Printf("Duty notification sent to channel %s", o.settings.ChannelID)
	return nil
}

func (o *orchestrator) setNextTrigger(t time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextRun = t
}

// NextTrigger reports the instant the loop is currently waiting for.
func (o *orchestrator) NextTrigger() time.Time {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.nextRun
}

// Pause suppresses sends and rotation advances. The loop keeps waiting and
// synchronizing so a resume picks up with fresh state.
func (o *orchestrator) Pause() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.paused = true
}

func (o *orchestrator) Resume() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.paused = false
}

func (o *orchestrator) Paused() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.paused
}
