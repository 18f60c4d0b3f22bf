package service

import (
	"context"

	"healthconnect/config"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender performs exactly one delivery attempt per call. No retry.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
	Enabled() bool
}

type twilioSMSSender struct {
	cfg    config.SMSConfig
	client *twilio.RestClient
}

func NewSMSSender(cfg config.SMSConfig) SMSSender {
	s := &twilioSMSSender{cfg: cfg}
	if cfg.Enabled() {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
	}
	return s
}

func (s *twilioSMSSender) Enabled() bool {
	return s.cfg.Enabled()
}

func (s *twilioSMSSender) Send(ctx context.Context, to, body string) error {
	if s.client == nil {
		return ErrNotConfigured
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.cfg.FromNumber)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
