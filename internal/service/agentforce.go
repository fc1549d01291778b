package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"telehealth-connect/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrTokenExchangeFailed   = errors.New("failed to get access token")
	ErrSessionCreationFailed = errors.New("failed to create assistant session")
	ErrMessageSendFailed     = errors.New("failed to send message to assistant")
)

// AgentSession is the credential pair handed back to the UI after a
// successful session handshake.
type AgentSession struct {
	SessionID          string `json:"sessionId"`
	ExternalSessionKey string `json:"externalSessionKey"`
	AccessToken        string `json:"accessToken"`
}

// AgentMessage is one message in an assistant reply.
type AgentMessage struct {
	Message    string `json:"message"`
	Type       string `json:"type,omitempty"`
	SequenceID int64  `json:"sequenceId,omitempty"`
}

// AgentReply carries the parsed messages alongside the raw upstream body
// so the handler can pass the JSON through untouched.
type AgentReply struct {
	Raw      json.RawMessage
	Messages []AgentMessage
}

// AgentForceClient proxies credentials and payloads to the external
// AgentForce conversational service.
type AgentForceClient struct {
	cfg        config.SalesforceConfig
	log        *logrus.Logger
	httpClient *http.Client
}

func NewAgentForceClient(cfg config.SalesforceConfig, log *logrus.Logger) *AgentForceClient {
	return &AgentForceClient{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreateSession exchanges the service-level client credentials for a
// bearer token, then opens a conversation session with the agent.
func (c *AgentForceClient) CreateSession(ctx context.Context) (*AgentSession, error) {
	accessToken, err := c.fetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"externalSessionKey": uuid.New().String(),
		"instanceConfig": map[string]string{
			"endpoint": c.cfg.OrgDomain,
		},
		"tz": "America/Los_Angeles",
		"variables": []map[string]string{
			{
				"name":  "$Context.EndUserLanguage",
				"type":  "Text",
				"value": "en_US",
			},
		},
		"featureSupport": "Streaming",
		"streamingCapabilities": map[string][]string{
			"chunkTypes": {"Text"},
		},
		"bypassUser": true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	sessionURL := fmt.Sprintf("%s/einstein/ai-agent/v1/agents/%s/sessions", c.cfg.APIHost, c.cfg.AgentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sessionURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("AgentForce session request failed: %+v", err)
		return nil, ErrSessionCreationFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warnf("AgentForce session creation returned status %d", resp.StatusCode)
		return nil, ErrSessionCreationFailed
	}

	var sessionData struct {
		SessionID          string `json:"sessionId"`
		ExternalSessionKey string `json:"externalSessionKey"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sessionData); err != nil {
		return nil, ErrSessionCreationFailed
	}

	return &AgentSession{
		SessionID:          sessionData.SessionID,
		ExternalSessionKey: sessionData.ExternalSessionKey,
		AccessToken:        accessToken,
	}, nil
}

// SendMessage forwards a single text turn to an open session.
func (c *AgentForceClient) SendMessage(ctx context.Context, sessionID, accessToken, text string) (*AgentReply, error) {
	payload := map[string]interface{}{
		"message": map[string]interface{}{
			"sequenceId": time.Now().UnixMilli(),
			"type":       "Text",
			"text":       text,
		},
		"variables": []interface{}{},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	messageURL := fmt.Sprintf("%s/einstein/ai-agent/v1/sessions/%s/messages", c.cfg.APIHost, sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, messageURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("AgentForce message request failed: %+v", err)
		return nil, ErrMessageSendFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warnf("AgentForce message returned status %d", resp.StatusCode)
		return nil, ErrMessageSendFailed
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrMessageSendFailed
	}

	var parsed struct {
		Messages []AgentMessage `json:"messages"`
	}
	// Passthrough is the contract; a body we cannot parse still goes back
	// to the caller, just without trigger detection.
	if err := json.Unmarshal(raw, &parsed); err != nil {
		c.log.Warnf("Failed to parse AgentForce reply: %+v", err)
	}

	return &AgentReply{
		Raw:      json.RawMessage(raw),
		Messages: parsed.Messages,
	}, nil
}

func (c *AgentForceClient) fetchAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	tokenURL := c.cfg.OrgDomain + "/services/oauth2/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("AgentForce token request failed: %+v", err)
		return "", ErrTokenExchangeFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warnf("AgentForce token exchange returned status %d", resp.StatusCode)
		return "", ErrTokenExchangeFailed
	}

	var tokenData struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenData); err != nil {
		return "", ErrTokenExchangeFailed
	}

	return tokenData.AccessToken, nil
}
