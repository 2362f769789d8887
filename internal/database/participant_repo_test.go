package database

import (
	"testing"

	"github.com/diegoclair/duty-rotation-bot/internal/domain"
	"github.com/diegoclair/duty-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/duty-rotation-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestParticipant(t *testing.T, repo contract.ParticipantRepo, chatUserID, displayName string, position int, onDuty bool) *entity.Participant {
	t.Helper()

	participant := &entity.Participant{
		ChatUserID:  chatUserID,
		DisplayName: displayName,
		Position:    position,
		OnDuty:      onDuty,
	}
	err := repo.Create(participant)
	require.NoError(t, err)

	return participant
}

func TestParticipantRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	repo := newParticipantRepo(db.conn)

	t.Run("should create participant successfully", func(t *testing.T) {
		participant := &entity.Participant{
			ChatUserID:  "U123456789",
			DisplayName: "Test User",
			Position:    1,
		}

		err := repo.Create(participant)

		require.NoError(t, err)
		assert.NotZero(t, participant.ID)
	})

	t.Run("should reject duplicate chat user id", func(t *testing.T) {
		participant := &entity.Participant{
			ChatUserID:  "U123456789",
			DisplayName: "Duplicate",
			Position:    2,
		}

		err := repo.Create(participant)

		assert.Error(t, err)
	})
}

func TestParticipantRepo_Lookups(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	repo := newParticipantRepo(db.conn)

	alice := createTestParticipant(t, repo, "U001", "Alice", 1, true)
	createTestParticipant(t, repo, "U002", "Bob", 2, false)

	t.Run("should get participant by chat id", func(t *testing.T) {
		got, err := repo.GetByChatID("U001")

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, alice.ID, got.ID)
		assert.Equal(t, "Alice", got.DisplayName)
		assert.Equal(t, 1, got.Position)
		assert.True(t, got.OnDuty)
		assert.NotZero(t, got.CreatedAt)
	})

	t.Run("should return nil for unknown chat id", func(t *testing.T) {
		got, err := repo.GetByChatID("U999")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("should get participant by position", func(t *testing.T) {
		got, err := repo.GetByPosition(2)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Bob", got.DisplayName)
	})

	t.Run("should return nil for vacant position", func(t *testing.T) {
		got, err := repo.GetByPosition(5)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("should get duty holder", func(t *testing.T) {
		got, err := repo.GetOnDuty()

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "U001", got.ChatUserID)
	})

	t.Run("should reject a second duty holder", func(t *testing.T) {
		bob, err := repo.GetByChatID("U002")
		require.NoError(t, err)
		require.NoError(t, repo.SetOnDuty(bob.ID, true))
		defer func() {
			require.NoError(t, repo.SetOnDuty(bob.ID, false))
		}()

		_, err = repo.GetOnDuty()

		assert.ErrorIs(t, err, domain.ErrRosterCorrupt)
	})

	t.Run("should list participants in rotation order", func(t *testing.T) {
		got, err := repo.ListOrdered()

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Alice", got[0].DisplayName)
		assert.Equal(t, "Bob", got[1].DisplayName)
	})

	t.Run("should count participants", func(t *testing.T) {
		count, err := repo.Count()

		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestParticipantRepo_Updates(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	repo := newParticipantRepo(db.conn)

	alice := createTestParticipant(t, repo, "U001", "Alice", 1, true)
	bob := createTestParticipant(t, repo, "U002", "Bob", 2, false)
	carol := createTestParticipant(t, repo, "U003", "Carol", 3, false)

	t.Run("should move the duty flag", func(t *testing.T) {
		require.NoError(t, repo.SetOnDuty(alice.ID, false))
		require.NoError(t, repo.SetOnDuty(bob.ID, true))

		holder, err := repo.GetOnDuty()
		require.NoError(t, err)
		require.NotNil(t, holder)
		assert.Equal(t, bob.ID, holder.ID)
	})

	t.Run("should update display name", func(t *testing.T) {
		require.NoError(t, repo.UpdateDisplayName(alice.ID, "Alice Smith"))

		got, err := repo.GetByChatID("U001")
		require.NoError(t, err)
		assert.Equal(t, "Alice Smith", got.DisplayName)
	})

	t.Run("should compact positions after a removal", func(t *testing.T) {
		require.NoError(t, repo.Delete(bob.ID))
		require.NoError(t, repo.ShiftPositionsAfter(bob.Position))

		got, err := repo.ListOrdered()
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].Position)
		assert.Equal(t, "Alice Smith", got[0].DisplayName)
		assert.Equal(t, 2, got[1].Position)
		assert.Equal(t, carol.ID, got[1].ID)
	})

	t.Run("delete of unknown id is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Delete(9999))

		count, err := repo.Count()
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
