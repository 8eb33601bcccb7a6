package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/fitclub/gym-registration-api/internal/models"
)

type Notifier interface {
	NotifyRegistration(registration models.Registration) error
}

// DiscordNotifier announces new member registrations to a staff channel.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(botToken, channelID string) (*DiscordNotifier, error) {
	if botToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	if channelID == "" {
		return nil, fmt.Errorf("discord channel ID is empty")
	}

	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, err
	}

	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}, nil
}

func (n *DiscordNotifier) NotifyRegistration(registration models.Registration) error {
	message := fmt.Sprintf("🏋️ **New Member Registration**\n**Name:** %s\n**Email:** %s\n**Plan:** %s\n**Trainer:** %s",
		registration.Name,
		registration.Email,
		registration.Membership,
		registration.Trainer,
	)

	if _, err := n.session.ChannelMessageSend(n.channelID, message); err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
