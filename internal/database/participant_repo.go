package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/duty-rotation-bot/internal/domain"
	"github.com/diegoclair/duty-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/duty-rotation-bot/internal/domain/entity"
)

type participantRepo struct {
	db dbConn
}

func newParticipantRepo(db dbConn) contract.ParticipantRepo {
	return &participantRepo{db: db}
}

const participantColumns = `id, chat_user_id, display_name, position, on_duty, created_at, updated_at`

func (r *participantRepo) Create(participant *entity.Participant) error {
	query := `
		INSERT INTO participants (chat_user_id, display_name, position, on_duty)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		participant.ChatUserID,
		participant.DisplayName,
		participant.Position,
		participant.OnDuty,
	)
	if err != nil {
		return fmt.Errorf("failed to create participant: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	participant.ID = id
	return nil
}

func (r *participantRepo) GetByChatID(chatUserID string) (*entity.Participant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM participants
		WHERE chat_user_id = ?
	`

	return r.scanOne(r.db.QueryRow(query, chatUserID))
}

func (r *participantRepo) GetByPosition(position int) (*entity.Participant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM participants
		WHERE position = ?
	`

	return r.scanOne(r.db.QueryRow(query, position))
}

// GetOnDuty returns the duty holder, or nil when nobody holds duty. A second
// on_duty row means the store invariant is broken and reads must not pick a
// winner silently.
func (r *participantRepo) GetOnDuty() (*entity.Participant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM participants
		WHERE on_duty = 1
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get duty holder: %w", err)
	}
	defer rows.Close()

	var holder *entity.Participant
	for rows.Next() {
		participant := &entity.Participant{}
		err := rows.Scan(
			&participant.ID,
			&participant.ChatUserID,
			&participant.DisplayName,
			&participant.Position,
			&participant.OnDuty,
			&participant.CreatedAt,
			&participant.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		if holder != nil {
			return nil, fmt.Errorf("%w: more than one participant on duty", domain.ErrRosterCorrupt)
		}
		holder = participant
	}

	return holder, nil
}

func (r *participantRepo) ListOrdered() ([]*entity.Participant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM participants
		ORDER BY position ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*entity.Participant
	for rows.Next() {
		participant := &entity.Participant{}
		err := rows.Scan(
			&participant.ID,
			&participant.ChatUserID,
			&participant.DisplayName,
			&participant.Position,
			&participant.OnDuty,
			&participant.CreatedAt,
			&participant.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, participant)
	}

	return participants, nil
}

func (r *participantRepo) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM participants`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return count, nil
}

func (r *participantRepo) Delete(participantID int64) error {
	query := `DELETE FROM participants WHERE id = ?`

	_, err := r.db.Exec(query, participantID)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	return nil
}

func (r *participantRepo) SetOnDuty(participantID int64, onDuty bool) error {
	query := `UPDATE participants SET on_duty = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query, onDuty, time.Now(), participantID)
	if err != nil {
		return fmt.Errorf("failed to set on-duty flag: %w", err)
	}

	return nil
}

func (r *participantRepo) UpdateDisplayName(participantID int64, displayName string) error {
	query := `UPDATE participants SET display_name = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query, displayName, time.Now(), participantID)
	if err != nil {
		return fmt.Errorf("failed to update display name: %w", err)
	}

	return nil
}

// ShiftPositionsAfter compacts the rotation order after a removal by moving
// every participant behind the removed position one rank forward.
func (r *participantRepo) ShiftPositionsAfter(position int) error {
	query := `UPDATE participants SET position = position - 1, updated_at = ? WHERE position > ?`

	_, err := r.db.Exec(query, time.Now(), position)
	if err != nil {
		return fmt.Errorf("failed to shift positions: %w", err)
	}

	return nil
}

func (r *participantRepo) scanOne(row *sql.Row) (*entity.Participant, error) {
	participant := &entity.Participant{}
	err := row.Scan(
		&participant.ID,
		&participant.ChatUserID,
		&participant.DisplayName,
		&participant.Position,
		&participant.OnDuty,
		&participant.CreatedAt,
		&participant.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return participant, nil
}
