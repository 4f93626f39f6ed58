package notifier

import (
	"fmt"

	"github.com/slack-go/slack"

	"github.com/ip812/portfolio/logger"
)

type Slack struct {
	api *slack.Client
	log logger.Logger
}

func NewSlack(token string, log logger.Logger) *Slack {
	return &Slack{
		api: slack.New(token),
		log: log,
	}
}

func (s *Slack) SendMsg(
	channelID string,
	text string,
) error {
	_, _, err := s.api.PostMessage(
		channelID,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		s.log.Error("failed to send message %v to Slack channel: %s", err, channelID)
		return err
	}
	s.log.Info("message sent successfully to Slack channel: %s", channelID)

	return nil
}

// ContactMessageText formats a contact form submission for Slack.
func ContactMessageText(id uint64, name, email, message string) string {
	return fmt.Sprintf(
		"*New contact message* #%d\n*From:* %s <%s>\n>%s",
		id,
		name,
		email,
		message,
	)
}
