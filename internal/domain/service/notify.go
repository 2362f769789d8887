package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/duty-rotation-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// dutyChecklist is the fixed set of tasks the duty holder works through each
// week. It is rendered as plain text on the first trigger day and as an
// interactive checkbox message on the second.
var dutyChecklist = []string{
	"Post the weekly status thread",
	"Triage incoming reports and route them",
	"Keep the build green and chase broken merges",
	"Water the office plants",
	"Hand over open items to the next duty holder",
}

// notification is the composed output for one trigger: the roster message and,
// on the second trigger day, a follow-up checklist payload. The roster message
// must be delivered before the follow-up.
type notification struct {
	Text     string
	Followup []slack.Block
}

// composeDutyNotification renders the roster table for the given rotation
// window, anchored at the trigger instant. Week i pairs the participant at
// rotation offset i with the Monday..Friday span of calendar week now+i.
func composeDutyNotification(window []*entity.Participant, trigger time.Time, secondDay bool) notification {
	if len(window) == 0 {
		return notification{
			Text: ":robot_face: *Duty roster*\n\nNobody is in the rotation right now. Duty resumes once the channel has members again.",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, ":calendar: *Duty roster — %s*\n\n", trigger.Format("Monday, 02 Jan 2006"))

	monday := mondayOf(trigger)
	for i, participant := range window {
		weekStart := monday.AddDate(0, 0, 7*i)
		weekEnd := weekStart.AddDate(0, 0, 4)
		_, week := weekStart.ISOWeek()
		fmt.Fprintf(&b, "`W%02d`  %s – %s  %s\n",
			week,
			weekStart.Format("02.01."),
			weekEnd.Format("02.01.2006"),
			participant.DisplayName,
		)
	}

	fmt.Fprintf(&b, "\nOn duty this week: *%s* (<@%s>)", window[0].DisplayName, window[0].ChatUserID)

	n := notification{}
	if secondDay {
		n.Followup = checklistBlocks()
	} else {
		b.WriteString("\n\n*Duty checklist:*\n")
		for _, task := range dutyChecklist {
			fmt.Fprintf(&b, "• %s\n", task)
		}
	}
	n.Text = b.String()

	return n
}

// checklistBlocks renders the checklist as a Block Kit checkbox message so the
// duty holder can tick tasks off in place.
func checklistBlocks() []slack.Block {
	options := make([]*slack.OptionBlockObject, 0, len(dutyChecklist))
	for i, task := range dutyChecklist {
		options = append(options, slack.NewOptionBlockObject(
			fmt.Sprintf("duty_task_%d", i),
			slack.NewTextBlockObject(slack.PlainTextType, task, false, false),
			nil,
		))
	}

	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "*Duty checklist* — tick off what is done before handing over:", false, false),
			nil, nil,
		),
		slack.NewActionBlock("duty_checklist", slack.NewCheckboxGroupsBlockElement("duty_checklist_ack", options...)),
	}
}
