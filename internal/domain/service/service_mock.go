package service

import (
	"testing"

	"github.com/diegoclair/duty-rotation-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockParticipantRepo *mocks.MockParticipantRepo
	mockRoster          *mocks.MockRosterService
	mockSynchronizer    *mocks.MockMembershipSynchronizer
	mockChatClient      *mocks.MockChatClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	participantRepo := mocks.NewMockParticipantRepo(ctrl)
	dm.EXPECT().Participant().Return(participantRepo).AnyTimes()

	m = allMocks{
		mockDataManager:     dm,
		mockParticipantRepo: participantRepo,
		mockRoster:          mocks.NewMockRosterService(ctrl),
		mockSynchronizer:    mocks.NewMockMembershipSynchronizer(ctrl),
		mockChatClient:      mocks.NewMockChatClient(ctrl),
	}

	// validate service creation
	roster := newRoster(dm)
	require.NotNil(t, roster)

	return
}
