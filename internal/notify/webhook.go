package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const colorTeal = 0x09B1BA

// WebhookNotifier implements Notifier via Discord-compatible webhooks.
// The destination's ChannelID carries the webhook URL.
type WebhookNotifier struct {
	client  *http.Client
	headers map[string]string
}

// WebhookOption configures a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(w *WebhookNotifier) {
		w.client = c
	}
}

// WithHeaders sets extra headers applied to every webhook request.
func WithHeaders(h map[string]string) WebhookOption {
	return func(w *WebhookNotifier) {
		w.headers = h
	}
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(opts ...WebhookOption) *WebhookNotifier {
	w := &WebhookNotifier{
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// webhookPayload is the Discord webhook JSON structure.
type webhookPayload struct {
	Content string         `json:"content,omitempty"`
	Embeds  []webhookEmbed `json:"embeds"`
}

type webhookEmbed struct {
	Title     string              `json:"title"`
	URL       string              `json:"url,omitempty"`
	Color     int                 `json:"color"`
	Fields    []webhookEmbedField `json:"fields,omitempty"`
	Thumbnail *webhookThumbnail   `json:"thumbnail,omitempty"`
}

type webhookEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type webhookThumbnail struct {
	URL string `json:"url"`
}

// Send posts a single listing as an embed to the destination webhook.
func (w *WebhookNotifier) Send(
	ctx context.Context,
	dest Destination,
	payload ListingPayload,
) error {
	if dest.ChannelID == "" {
		return fmt.Errorf("webhook destination has no URL")
	}

	msg := webhookPayload{
		Embeds: []webhookEmbed{buildEmbed(payload)},
	}
	if dest.UserID != "" {
		msg.Content = fmt.Sprintf("<@%s>", dest.UserID)
	}

	return w.post(ctx, dest.ChannelID, msg)
}

func buildEmbed(p ListingPayload) webhookEmbed {
	embed := webhookEmbed{
		Title: fmt.Sprintf("New listing: %s", p.Title),
		URL:   p.URL,
		Color: colorTeal,
		Fields: []webhookEmbedField{
			{Name: "Price", Value: p.Price, Inline: true},
			{Name: "Brand", Value: orDash(p.Brand), Inline: true},
			{Name: "Size", Value: orDash(p.Size), Inline: true},
			{Name: "Condition", Value: orDash(p.Condition), Inline: true},
			{Name: "Seller", Value: orDash(p.Seller), Inline: true},
			{Name: "Search", Value: p.WatchQuery, Inline: true},
		},
	}

	if p.ImageURL != "" {
		embed.Thumbnail = &webhookThumbnail{URL: p.ImageURL}
	}

	return embed
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (w *WebhookNotifier) post(ctx context.Context, url string, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range w.headers {
		req.Header.Set(k, v)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("webhook rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("webhook returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
