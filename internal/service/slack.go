package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"telehealth-connect/config"
	"telehealth-connect/pkg/metrics"

	"github.com/sirupsen/logrus"
)

var (
	ErrWebhookNotConfigured = errors.New("slack webhook URL is not configured")
	ErrNotificationFailed   = errors.New("failed to send slack notification")
)

// SlackNotifier posts appointment notifications to an incoming-webhook
// URL. It is a best-effort collaborator: callers log failures and move on.
type SlackNotifier struct {
	webhookURL string
	log        *logrus.Logger
	httpClient *http.Client
}

func NewSlackNotifier(cfg config.SlackConfig, log *logrus.Logger) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: cfg.WebhookURL,
		log:        log,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type slackText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

type slackBlock struct {
	Type   string      `json:"type"`
	Text   *slackText  `json:"text,omitempty"`
	Fields []slackText `json:"fields,omitempty"`
}

// Notify posts the scheduled-appointment message. Empty names fall back to
// the placeholders the notification has always carried.
func (n *SlackNotifier) Notify(ctx context.Context, patientName, doctorName, appointmentTime string) error {
	if n.webhookURL == "" {
		metrics.NotificationsSent.WithLabelValues("error").Inc()
		return ErrWebhookNotConfigured
	}

	if patientName == "" {
		patientName = "Not specified"
	}
	if doctorName == "" {
		doctorName = "Dr. Sarah Johnson"
	}
	if appointmentTime == "" {
		appointmentTime = time.Now().Format("1/2/2006, 3:04:05 PM")
	}

	payload := map[string]interface{}{
		"blocks": []slackBlock{
			{
				Type: "header",
				Text: &slackText{Type: "plain_text", Text: "🏥 New Second Opinion Appointment", Emoji: true},
			},
			{
				Type: "section",
				Fields: []slackText{
					{Type: "mrkdwn", Text: "*Patient:*\n" + patientName},
					{Type: "mrkdwn", Text: "*Doctor:*\n" + doctorName},
				},
			},
			{
				Type: "section",
				Fields: []slackText{
					{Type: "mrkdwn", Text: "*Status:*\nSuccessfully Scheduled"},
					{Type: "mrkdwn", Text: "*Time:*\n" + appointmentTime},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.log.Warnf("Slack webhook request failed: %+v", err)
		metrics.NotificationsSent.WithLabelValues("error").Inc()
		return ErrNotificationFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.log.Warnf("Slack webhook returned status %d", resp.StatusCode)
		metrics.NotificationsSent.WithLabelValues("error").Inc()
		return ErrNotificationFailed
	}

	metrics.NotificationsSent.WithLabelValues("success").Inc()
	return nil
}
