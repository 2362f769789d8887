package contract

import "github.com/slack-go/slack"

// ChatClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type ChatClient interface {
	// GetUsersInConversation lists the member IDs of a channel, paginated
	GetUsersInConversation(params *slack.GetUsersInConversationParameters) ([]string, string, error)

	// GetUsersInfo resolves user IDs to full user records
	GetUsersInfo(users ...string) (*[]slack.User, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
