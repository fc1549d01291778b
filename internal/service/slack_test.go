package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"telehealth-connect/config"

	"github.com/stretchr/testify/assert"
)

type capturedSlackPayload struct {
	Blocks []struct {
		Type string `json:"type"`
		Text *struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"text"`
		Fields []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"fields"`
	} `json:"blocks"`
}

func TestSlackNotifier_NotifyPostsBlocks(t *testing.T) {
	var captured capturedSlackPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	notifier := NewSlackNotifier(config.SlackConfig{WebhookURL: srv.URL}, newServiceTestLogger())

	err := notifier.Notify(context.Background(), "Alice Wong", "Dr. Maria Lopez", "9/1/2026, 10:00:00 AM")
	assert.NoError(t, err)

	assert.Len(t, captured.Blocks, 3)
	assert.Equal(t, "header", captured.Blocks[0].Type)
	assert.Contains(t, captured.Blocks[0].Text.Text, "New Second Opinion Appointment")
	assert.Contains(t, captured.Blocks[1].Fields[0].Text, "Alice Wong")
	assert.Contains(t, captured.Blocks[1].Fields[1].Text, "Dr. Maria Lopez")
	assert.Contains(t, captured.Blocks[2].Fields[0].Text, "Successfully Scheduled")
	assert.Contains(t, captured.Blocks[2].Fields[1].Text, "9/1/2026, 10:00:00 AM")
}

func TestSlackNotifier_DefaultsApplied(t *testing.T) {
	var captured capturedSlackPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	notifier := NewSlackNotifier(config.SlackConfig{WebhookURL: srv.URL}, newServiceTestLogger())

	err := notifier.Notify(context.Background(), "", "", "")
	assert.NoError(t, err)

	assert.Contains(t, captured.Blocks[1].Fields[0].Text, "Not specified")
	assert.Contains(t, captured.Blocks[1].Fields[1].Text, "Dr. Sarah Johnson")
	// Time always carries a value, defaulted to now
	assert.NotEqual(t, "*Time:*\n", captured.Blocks[2].Fields[1].Text)
}

func TestSlackNotifier_NotConfigured(t *testing.T) {
	notifier := NewSlackNotifier(config.SlackConfig{}, newServiceTestLogger())

	err := notifier.Notify(context.Background(), "Alice", "Dr. Lopez", "")
	assert.ErrorIs(t, err, ErrWebhookNotConfigured)
}

func TestSlackNotifier_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	notifier := NewSlackNotifier(config.SlackConfig{WebhookURL: srv.URL}, newServiceTestLogger())

	err := notifier.Notify(context.Background(), "Alice", "Dr. Lopez", "")
	assert.ErrorIs(t, err, ErrNotificationFailed)
}
