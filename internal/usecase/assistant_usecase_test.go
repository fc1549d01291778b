package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"telehealth-connect/internal/delivery/dto"
	"telehealth-connect/internal/service"

	"github.com/stretchr/testify/assert"
)

type fakeAssistantClient struct {
	session *service.AgentSession
	reply   *service.AgentReply
	err     error
}

func (f *fakeAssistantClient) CreateSession(ctx context.Context) (*service.AgentSession, error) {
	return f.session, f.err
}

func (f *fakeAssistantClient) SendMessage(ctx context.Context, sessionID, accessToken, text string) (*service.AgentReply, error) {
	return f.reply, f.err
}

type notifyCall struct {
	patientName string
	doctorName  string
}

type fakeNotifier struct {
	calls chan notifyCall
	err   error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{calls: make(chan notifyCall, 4)}
}

func (f *fakeNotifier) Notify(ctx context.Context, patientName, doctorName, appointmentTime string) error {
	f.calls <- notifyCall{patientName: patientName, doctorName: doctorName}
	return f.err
}

func replyWith(messages ...string) *service.AgentReply {
	parsed := make([]service.AgentMessage, len(messages))
	for i, m := range messages {
		parsed[i] = service.AgentMessage{Message: m}
	}
	raw, _ := json.Marshal(map[string]interface{}{"messages": parsed})
	return &service.AgentReply{Raw: raw, Messages: parsed}
}

func TestAssistantUsecase_CreateSession(t *testing.T) {
	client := &fakeAssistantClient{
		session: &service.AgentSession{
			SessionID:          "sess-1",
			ExternalSessionKey: "key-1",
			AccessToken:        "token-1",
		},
	}
	uc := NewAssistantUsecase(newTestLogger(), client, newFakeNotifier())

	session, err := uc.CreateSession(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "sess-1", session.SessionID)
	assert.Equal(t, "key-1", session.ExternalSessionKey)
	assert.Equal(t, "token-1", session.AccessToken)
}

func TestAssistantUsecase_SendMessagePassesReplyThrough(t *testing.T) {
	reply := replyWith("Hello, how can I help?")
	client := &fakeAssistantClient{reply: reply}
	uc := NewAssistantUsecase(newTestLogger(), client, newFakeNotifier())

	raw, err := uc.SendMessage(context.Background(), &dto.AssistantMessageRequest{
		SessionID:   "sess-1",
		AccessToken: "token-1",
		Message:     "hi",
	})
	assert.NoError(t, err)
	assert.JSONEq(t, string(reply.Raw), string(raw))
}

func TestAssistantUsecase_ScheduledReplyTriggersOneNotification(t *testing.T) {
	notifier := newFakeNotifier()
	client := &fakeAssistantClient{
		reply: replyWith("Your appointment has been Successfully Scheduled for tomorrow."),
	}
	uc := NewAssistantUsecase(newTestLogger(), client, notifier)

	_, err := uc.SendMessage(context.Background(), &dto.AssistantMessageRequest{
		SessionID:   "sess-1",
		AccessToken: "token-1",
		Message:     "book it",
		PatientName: "Alice Wong",
		DoctorName:  "Dr. Maria Lopez",
	})
	assert.NoError(t, err)

	select {
	case call := <-notifier.calls:
		assert.Equal(t, "Alice Wong", call.patientName)
		assert.Equal(t, "Dr. Maria Lopez", call.doctorName)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification, got none")
	}

	select {
	case <-notifier.calls:
		t.Fatal("expected exactly one notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestAssistantUsecase_PlainReplyDoesNotNotify(t *testing.T) {
	notifier := newFakeNotifier()
	client := &fakeAssistantClient{
		reply: replyWith("What time works best for you?"),
	}
	uc := NewAssistantUsecase(newTestLogger(), client, notifier)

	_, err := uc.SendMessage(context.Background(), &dto.AssistantMessageRequest{
		SessionID:   "sess-1",
		AccessToken: "token-1",
		Message:     "hello",
	})
	assert.NoError(t, err)

	select {
	case <-notifier.calls:
		t.Fatal("expected no notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestAssistantUsecase_OnlyFirstMessageIsSniffed(t *testing.T) {
	notifier := newFakeNotifier()
	client := &fakeAssistantClient{
		reply: replyWith("Let me check availability.", "successfully scheduled"),
	}
	uc := NewAssistantUsecase(newTestLogger(), client, notifier)

	_, err := uc.SendMessage(context.Background(), &dto.AssistantMessageRequest{
		SessionID:   "sess-1",
		AccessToken: "token-1",
		Message:     "book",
	})
	assert.NoError(t, err)

	select {
	case <-notifier.calls:
		t.Fatal("second message should not trigger a notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestAssistantUsecase_SendMessageUpstreamError(t *testing.T) {
	upstreamErr := errors.New("upstream down")
	client := &fakeAssistantClient{err: upstreamErr}
	uc := NewAssistantUsecase(newTestLogger(), client, newFakeNotifier())

	_, err := uc.SendMessage(context.Background(), &dto.AssistantMessageRequest{
		SessionID:   "sess-1",
		AccessToken: "token-1",
		Message:     "hi",
	})
	assert.ErrorIs(t, err, upstreamErr)
}

func TestAssistantUsecase_NotifyDelegates(t *testing.T) {
	notifier := newFakeNotifier()
	uc := NewAssistantUsecase(newTestLogger(), &fakeAssistantClient{}, notifier)

	err := uc.Notify(context.Background(), &dto.NotifyRequest{
		PatientName: "Bob",
		DoctorName:  "Dr. Chen",
	})
	assert.NoError(t, err)

	call := <-notifier.calls
	assert.Equal(t, "Bob", call.patientName)
	assert.Equal(t, "Dr. Chen", call.doctorName)
}
