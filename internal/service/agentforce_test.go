package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"telehealth-connect/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newServiceTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newAgentForceTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/services/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostFormValue("grant_type"))
		assert.Equal(t, "client-id", r.PostFormValue("client_id"))
		assert.Equal(t, "client-secret", r.PostFormValue("client_secret"))

		json.NewEncoder(w).Encode(map[string]string{"access_token": "sf-token"})
	})

	mux.HandleFunc("/einstein/ai-agent/v1/agents/agent-1/sessions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sf-token", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.NotEmpty(t, payload["externalSessionKey"])
		assert.Equal(t, true, payload["bypassUser"])

		json.NewEncoder(w).Encode(map[string]string{
			"sessionId":          "sess-42",
			"externalSessionKey": payload["externalSessionKey"].(string),
		})
	})

	mux.HandleFunc("/einstein/ai-agent/v1/sessions/sess-42/messages", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sf-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"messages": []map[string]interface{}{
				{"message": "Your appointment has been successfully scheduled.", "type": "Inform"},
			},
		})
	})

	return httptest.NewServer(mux)
}

func testSalesforceConfig(baseURL string) config.SalesforceConfig {
	return config.SalesforceConfig{
		OrgDomain:    baseURL,
		APIHost:      baseURL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		AgentID:      "agent-1",
	}
}

func TestAgentForceClient_CreateSession(t *testing.T) {
	srv := newAgentForceTestServer(t)
	defer srv.Close()

	client := NewAgentForceClient(testSalesforceConfig(srv.URL), newServiceTestLogger())

	session, err := client.CreateSession(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "sess-42", session.SessionID)
	assert.NotEmpty(t, session.ExternalSessionKey)
	assert.Equal(t, "sf-token", session.AccessToken)
}

func TestAgentForceClient_CreateSessionTokenFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewAgentForceClient(testSalesforceConfig(srv.URL), newServiceTestLogger())

	_, err := client.CreateSession(context.Background())
	assert.ErrorIs(t, err, ErrTokenExchangeFailed)
}

func TestAgentForceClient_SendMessage(t *testing.T) {
	srv := newAgentForceTestServer(t)
	defer srv.Close()

	client := NewAgentForceClient(testSalesforceConfig(srv.URL), newServiceTestLogger())

	reply, err := client.SendMessage(context.Background(), "sess-42", "sf-token", "book me in")
	assert.NoError(t, err)
	assert.Len(t, reply.Messages, 1)
	assert.Contains(t, reply.Messages[0].Message, "successfully scheduled")
	assert.NotEmpty(t, reply.Raw)
}

func TestAgentForceClient_SendMessageUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewAgentForceClient(testSalesforceConfig(srv.URL), newServiceTestLogger())

	_, err := client.SendMessage(context.Background(), "sess-42", "sf-token", "hi")
	assert.ErrorIs(t, err, ErrMessageSendFailed)
}

func TestAgentForceClient_SendMessageUnparseableBodyStillPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewAgentForceClient(testSalesforceConfig(srv.URL), newServiceTestLogger())

	reply, err := client.SendMessage(context.Background(), "sess-42", "sf-token", "hi")
	assert.NoError(t, err)
	assert.Equal(t, "not json", string(reply.Raw))
	assert.Empty(t, reply.Messages)
}
