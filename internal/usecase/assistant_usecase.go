package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"telehealth-connect/internal/delivery/dto"
	"telehealth-connect/internal/service"

	"github.com/sirupsen/logrus"
)

// scheduledPhrase is the substring sniffed out of assistant replies to
// detect a booked appointment. The upstream offers no structured signal,
// so free text is all there is to go on.
const scheduledPhrase = "successfully scheduled"

// AssistantClient is the slice of the AgentForce client this usecase needs.
type AssistantClient interface {
	CreateSession(ctx context.Context) (*service.AgentSession, error)
	SendMessage(ctx context.Context, sessionID, accessToken, text string) (*service.AgentReply, error)
}

// ScheduleNotifier receives the appointment notification side effect.
type ScheduleNotifier interface {
	Notify(ctx context.Context, patientName, doctorName, appointmentTime string) error
}

type AssistantUsecase interface {
	CreateSession(ctx context.Context) (*dto.AssistantSessionResponse, error)
	SendMessage(ctx context.Context, req *dto.AssistantMessageRequest) (json.RawMessage, error)
	Notify(ctx context.Context, req *dto.NotifyRequest) error
}

type assistantUsecase struct {
	log      *logrus.Logger
	client   AssistantClient
	notifier ScheduleNotifier
}

func NewAssistantUsecase(log *logrus.Logger, client AssistantClient, notifier ScheduleNotifier) AssistantUsecase {
	return &assistantUsecase{
		log:      log,
		client:   client,
		notifier: notifier,
	}
}

func (u *assistantUsecase) CreateSession(ctx context.Context) (*dto.AssistantSessionResponse, error) {
	session, err := u.client.CreateSession(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AssistantSessionResponse{
		SessionID:          session.SessionID,
		ExternalSessionKey: session.ExternalSessionKey,
		AccessToken:        session.AccessToken,
	}, nil
}

// SendMessage forwards the turn and passes the upstream JSON through. When
// the first reply message reports a scheduled appointment, the Slack
// notification fires once in the background; its outcome never affects the
// caller.
func (u *assistantUsecase) SendMessage(ctx context.Context, req *dto.AssistantMessageRequest) (json.RawMessage, error) {
	reply, err := u.client.SendMessage(ctx, req.SessionID, req.AccessToken, req.Message)
	if err != nil {
		return nil, err
	}

	if len(reply.Messages) > 0 && strings.Contains(strings.ToLower(reply.Messages[0].Message), scheduledPhrase) {
		patientName := req.PatientName
		doctorName := req.DoctorName
		go func() {
			notifyCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
			defer cancel()
			if err := u.notifier.Notify(notifyCtx, patientName, doctorName, ""); err != nil {
				u.log.Warnf("Failed to send scheduling notification (non-fatal): %+v", err)
			}
		}()
	}

	return reply.Raw, nil
}

func (u *assistantUsecase) Notify(ctx context.Context, req *dto.NotifyRequest) error {
	return u.notifier.Notify(ctx, req.PatientName, req.DoctorName, req.AppointmentTime)
}
