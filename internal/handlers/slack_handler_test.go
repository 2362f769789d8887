package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/duty-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/duty-rotation-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlackHandler_HandleSlashCommand_List(t *testing.T) {
	type args struct {
		command   string
		text      string
		channelID string
		userID    string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(ctx context.Context, m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Should list participants with the duty holder marked",
			args: args{
				command:   "/duty",
				text:      "list",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				participants := []*entity.Participant{
					{ID: 1, ChatUserID: "U001", DisplayName: "Alice", Position: 1, OnDuty: false},
					{ID: 2, ChatUserID: "U002", DisplayName: "Bob", Position: 2, OnDuty: true},
					{ID: 3, ChatUserID: "U003", DisplayName: "Carol", Position: 3, OnDuty: false},
				}

				m.RosterServiceMock.EXPECT().
					List(gomock.Any()).
					Return(participants, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "*Rotation order:*")
				assert.Contains(t, response.Text, "1. Alice\n")
				assert.Contains(t, response.Text, "2. Bob  ← on duty\n")
				assert.Contains(t, response.Text, "3. Carol\n")
			},
		},
		{
			name: "Should explain membership when the rotation is empty",
			args: args{
				command:   "/duty",
				text:      "list",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RosterServiceMock.EXPECT().
					List(gomock.Any()).
					Return([]*entity.Participant{}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Nobody is in the rotation")
				assert.Contains(t, response.Text, "added automatically")
			},
		},
		{
			name: "Should return error response when the roster cannot be loaded",
			args: args{
				command:   "/duty",
				text:      "ls",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RosterServiceMock.EXPECT().
					List(gomock.Any()).
					Return(nil, errors.New("database error")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "❌ Failed to load the rotation")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m, tt.args)
			}

			recorder := test.CreateTestRecorder()
			req := test.CreateSlackRequest(t, tt.args.command, tt.args.text, tt.args.channelID, tt.args.userID, test.SigningSecret)

			handler.HandleSlashCommand(recorder, req)

			if tt.checkResponse != nil {
				tt.checkResponse(t, recorder)
			}
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Status(t *testing.T) {
	type args struct {
		command   string
		text      string
		channelID string
		userID    string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(ctx context.Context, m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Should show holder, size and next notification",
			args: args{
				command:   "/duty",
				text:      "status",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				holder := &entity.Participant{ID: 2, ChatUserID: "U002", DisplayName: "Bob", Position: 2, OnDuty: true}
				participants := []*entity.Participant{
					{ID: 1, ChatUserID: "U001", DisplayName: "Alice", Position: 1},
					holder,
				}

				m.RosterServiceMock.EXPECT().
					OnDuty(gomock.Any()).
					Return(holder, nil).Times(1)

				m.RosterServiceMock.EXPECT().
					List(gomock.Any()).
					Return(participants, nil).Times(1)

				m.DutySchedulerMock.EXPECT().
					NextTrigger().
					Return(time.Date(2025, 7, 14, 8, 30, 0, 0, time.UTC)).Times(1)

				m.DutySchedulerMock.EXPECT().
					Paused().
					Return(false).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "On duty: <@U002>")
				assert.Contains(t, response.Text, "Rotation size: 2")
				assert.Contains(t, response.Text, "Next notification: Mon, 14 Jul 2025 08:30")
				assert.NotContains(t, response.Text, "paused")
			},
		},
		{
			name: "Should report a paused scheduler and an empty holder",
			args: args{
				command:   "/duty",
				text:      "status",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RosterServiceMock.EXPECT().
					OnDuty(gomock.Any()).
					Return(nil, nil).Times(1)

				m.RosterServiceMock.EXPECT().
					List(gomock.Any()).
					Return([]*entity.Participant{}, nil).Times(1)

				m.DutySchedulerMock.EXPECT().
					NextTrigger().
					Return(time.Time{}).Times(1)

				m.DutySchedulerMock.EXPECT().
					Paused().
					Return(true).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "On duty: nobody yet")
				assert.Contains(t, response.Text, "Rotation size: 0")
				assert.NotContains(t, response.Text, "Next notification")
				assert.Contains(t, response.Text, "Notifications are *paused*")
			},
		},
		{
			name: "Should return error response when the holder cannot be loaded",
			args: args{
				command:   "/duty",
				text:      "status",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RosterServiceMock.EXPECT().
					OnDuty(gomock.Any()).
					Return(nil, errors.New("database error")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Contains(t, response.Text, "❌ Failed to load the duty holder")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m, tt.args)
			}

			recorder := test.CreateTestRecorder()
			req := test.CreateSlackRequest(t, tt.args.command, tt.args.text, tt.args.channelID, tt.args.userID, test.SigningSecret)

			handler.HandleSlashCommand(recorder, req)

			if tt.checkResponse != nil {
				tt.checkResponse(t, recorder)
			}
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Skip(t *testing.T) {
	type args struct {
		command   string
		text      string
		channelID string
		userID    string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(ctx context.Context, m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Should advance the rotation and announce the new holder",
			args: args{
				command:   "/duty",
				text:      "skip",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				holder := &entity.Participant{ID: 3, ChatUserID: "U003", DisplayName: "Carol", Position: 3, OnDuty: true}

				m.RosterServiceMock.EXPECT().
					Advance(gomock.Any()).
					Return(nil).Times(1)

				m.RosterServiceMock.EXPECT().
					OnDuty(gomock.Any()).
					Return(holder, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "Duty handed over to <@U003>")
			},
		},
		{
			name: "Should accept next as an alias for skip",
			args: args{
				command:   "/duty",
				text:      "next",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				holder := &entity.Participant{ID: 1, ChatUserID: "U001", DisplayName: "Alice", Position: 1, OnDuty: true}

				m.RosterServiceMock.EXPECT().
					Advance(gomock.Any()).
					Return(nil).Times(1)

				m.RosterServiceMock.EXPECT().
					OnDuty(gomock.Any()).
					Return(holder, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "<@U001>")
			},
		},
		{
			name: "Should return error response when the advance fails",
			args: args{
				command:   "/duty",
				text:      "skip",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RosterServiceMock.EXPECT().
					Advance(gomock.Any()).
					Return(errors.New("database error")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "❌ Failed to advance the rotation")
			},
		},
		{
			name: "Should report when the new holder cannot be loaded after the advance",
			args: args{
				command:   "/duty",
				text:      "skip",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RosterServiceMock.EXPECT().
					Advance(gomock.Any()).
					Return(nil).Times(1)

				m.RosterServiceMock.EXPECT().
					OnDuty(gomock.Any()).
					Return(nil, errors.New("database error")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Rotation advanced, but the new duty holder could not be loaded")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m, tt.args)
			}

			recorder := test.CreateTestRecorder()
			req := test.CreateSlackRequest(t, tt.args.command, tt.args.text, tt.args.channelID, tt.args.userID, test.SigningSecret)

			handler.HandleSlashCommand(recorder, req)

			if tt.checkResponse != nil {
				tt.checkResponse(t, recorder)
			}
		})
	}
}

func TestSlackHandler_HandleSlashCommand_PauseResume(t *testing.T) {
	type args struct {
		command   string
		text      string
		channelID string
		userID    string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(ctx context.Context, m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Should pause notifications",
			args: args{
				command:   "/duty",
				text:      "pause",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutySchedulerMock.EXPECT().
					Pause().Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Duty notifications paused")
				assert.Contains(t, response.Text, "/duty resume")
			},
		},
		{
			name: "Should resume notifications",
			args: args{
				command:   "/duty",
				text:      "resume",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutySchedulerMock.EXPECT().
					Resume().Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Duty notifications resumed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m, tt.args)
			}

			recorder := test.CreateTestRecorder()
			req := test.CreateSlackRequest(t, tt.args.command, tt.args.text, tt.args.channelID, tt.args.userID, test.SigningSecret)

			handler.HandleSlashCommand(recorder, req)

			if tt.checkResponse != nil {
				tt.checkResponse(t, recorder)
			}
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Help(t *testing.T) {
	type args struct {
		command   string
		text      string
		channelID string
		userID    string
	}

	tests := []struct {
		name          string
		args          args
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Should show help",
			args: args{
				command:   "/duty",
				text:      "help",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "*Available Commands:*")
				assert.Contains(t, response.Text, "/duty list")
				assert.Contains(t, response.Text, "/duty skip")
			},
		},
		{
			name: "Should show help when no subcommand is given",
			args: args{
				command:   "/duty",
				text:      "",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Contains(t, response.Text, "*Available Commands:*")
			},
		},
		{
			name: "Should return error response for an unknown subcommand",
			args: args{
				command:   "/duty",
				text:      "banana",
				channelID: "C123456789",
				userID:    "U987654321",
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "❌ unknown command: banana")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			recorder := test.CreateTestRecorder()
			req := test.CreateSlackRequest(t, tt.args.command, tt.args.text, tt.args.channelID, tt.args.userID, test.SigningSecret)

			handler.HandleSlashCommand(recorder, req)

			if tt.checkResponse != nil {
				tt.checkResponse(t, recorder)
			}
		})
	}
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	recorder := test.CreateTestRecorder()
	req := test.CreateSlackRequest(t, "/duty", "list", "C123456789", "U987654321", "wrong-secret")

	handler.HandleSlashCommand(recorder, req)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}
