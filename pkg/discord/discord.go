package discord

import (
	"context"
	"fmt"
	"time"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

// SendMessage posts a plain text message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  truncate(content, maxContentLength),
		Username: d.config.DefaultUsername,
	})
}

// SendEmbed posts a single embed built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	embed := Embed{
		Title:       options.Title,
		Description: truncate(options.Description, maxDescriptionLength),
		Color:       colorFor(options.Type),
		Timestamp:   ts.UTC().Format(time.RFC3339),
		Footer:      options.Footer,
		Fields:      options.Fields,
	}
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []Embed{embed},
	})
}

// SendError posts an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	opts := MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
	}
	if err != nil {
		opts.Fields = []EmbedField{{Name: "Error", Value: truncate(err.Error(), 1000)}}
	}
	return d.SendEmbed(ctx, opts)
}

// ReportBug posts an unexpected failure, usually a recovered panic.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       "Bug report",
		Description: "```" + truncate(message, maxDescriptionLength-6) + "```",
	})
}

// Close is a no-op; the webhook client holds no long-lived connection.
func (d *discordImpl) Close() error {
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	_, status, err := d.client.Post(ctx, d.webhookURL(), payload, nil)
	if err != nil {
		d.l.Warnf(ctx, "pkg.discord.send: Post failed: %v", err)
		return err
	}
	if status >= 300 {
		d.l.Warnf(ctx, "pkg.discord.send: unexpected status %d", status)
		return fmt.Errorf("discord: unexpected status %d", status)
	}
	return nil
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
