package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/duty-rotation-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/duty-rotation-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

// SlackHandler serves the /duty admin surface. It only reads the roster and
// triggers manual advances; membership itself is owned by the synchronizer.
type SlackHandler struct {
	roster        contract.RosterService
	scheduler     contract.DutyScheduler
	signingSecret string
}

func New(roster contract.RosterService, scheduler contract.DutyScheduler, signingSecret string) *SlackHandler {
	return &SlackHandler{
		roster:        roster,
		scheduler:     scheduler,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r, cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdList:
		return h.handleList(r)
	case slackcmd.CmdStatus:
		return h.handleStatus(r)
	case slackcmd.CmdSkip:
		return h.handleSkip(r)
	case slackcmd.CmdPause:
		return h.handlePause()
	case slackcmd.CmdResume:
		return h.handleResume()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command. Try `/duty help`.")
	}
}

func (h *SlackHandler) handleList(r *http.Request) *slack.Msg {
	participants, err := h.roster.List(r.Context())
	if err != nil {
		return h.createErrorResponse("Failed to load the rotation")
	}

	if len(participants) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "Nobody is in the rotation. Members of the duty channel are added automatically.",
		}
	}

	var list strings.Builder
	list.WriteString("*Rotation order:*\n")
	for _, participant := range participants {
		marker := ""
		if participant.OnDuty {
			marker = "  ← on duty"
		}
		list.WriteString(fmt.Sprintf("%d. %s%s\n", participant.Position, participant.DisplayName, marker))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleStatus(r *http.Request) *slack.Msg {
	holder, err := h.roster.OnDuty(r.Context())
	if err != nil {
		return h.createErrorResponse("Failed to load the duty holder")
	}

	participants, err := h.roster.List(r.Context())
	if err != nil {
		return h.createErrorResponse("Failed to load the rotation")
	}

	var status strings.Builder
	if holder != nil {
		status.WriteString(fmt.Sprintf("On duty: <@%s>\n", holder.ChatUserID))
	} else {
		status.WriteString("On duty: nobody yet\n")
	}
	status.WriteString(fmt.Sprintf("Rotation size: %d\n", len(participants)))

	if next := h.scheduler.NextTrigger(); !next.IsZero() {
		status.WriteString(fmt.Sprintf("Next notification: %s\n", next.Format("Mon, 02 Jan 2006 15:04")))
	}
	if h.scheduler.Paused() {
		status.WriteString("Notifications are *paused*.\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         status.String(),
	}
}

func (h *SlackHandler) handleSkip(r *http.Request) *slack.Msg {
	if err := h.roster.Advance(r.Context()); err != nil {
		return h.createErrorResponse("Failed to advance the rotation")
	}

	holder, err := h.roster.OnDuty(r.Context())
	if err != nil || holder == nil {
		return h.createErrorResponse("Rotation advanced, but the new duty holder could not be loaded")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("⏭️ Duty handed over to <@%s>", holder.ChatUserID),
	}
}

func (h *SlackHandler) handlePause() *slack.Msg {
	h.scheduler.Pause()
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "⏸️ Duty notifications paused. Use `/duty resume` to turn them back on.",
	}
}

func (h *SlackHandler) handleResume() *slack.Msg {
	h.scheduler.Resume()
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "▶️ Duty notifications resumed.",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
