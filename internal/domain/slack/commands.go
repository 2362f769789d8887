package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdList   CommandType = "list"
	CmdStatus CommandType = "status"
	CmdSkip   CommandType = "skip"
	CmdPause  CommandType = "pause"
	CmdResume CommandType = "resume"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "list", "ls":
		cmd.Type = CmdList
	case "status":
		cmd.Type = CmdStatus
	case "skip", "next":
		cmd.Type = CmdSkip
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Rotation:*
• ` + "`/duty list`" + ` - Show the rotation order and the current duty holder
• ` + "`/duty status`" + ` - Show duty holder, roster size and next notification
• ` + "`/duty skip`" + ` - Hand duty to the next person immediately

*Control:*
• ` + "`/duty pause`" + ` - Pause automatic notifications
• ` + "`/duty resume`" + ` - Resume automatic notifications

Membership follows the channel: join the channel to enter the rotation, leave it to drop out.`
}
