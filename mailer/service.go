package mailer

import (
	"context"
	"strings"

	"github.com/maxwellflitton/adminauth/ratelimit"
	"github.com/maxwellflitton/adminauth/secrets"
)

// ProductionSecret names the toggle that controls real delivery. Unless it
// resolves to "TRUE" (case-insensitive), sends are acknowledged without
// touching the provider, so development and test environments never mail
// real addresses.
const ProductionSecret = "PRODUCTION"

// Service sends the account email flows. Every send passes the per-email
// rate limit before a template is built.
type Service struct {
	limiter *ratelimit.Limiter
	sender  Sender
	secrets secrets.Provider
}

// NewService wires a mail service from its parts.
func NewService(limiter *ratelimit.Limiter, sender Sender, provider secrets.Provider) *Service {
	return &Service{limiter: limiter, sender: sender, secrets: provider}
}

// SendConfirmation emails an account confirmation link carrying the unique
// id the confirm endpoint resolves back to the pending user.
func (s *Service) SendConfirmation(ctx context.Context, email, uniqueID string) (bool, error) {
	return s.send(ctx, email, uniqueID, ConfirmationMergeVar, ConfirmationTemplate)
}

// SendPasswordReset emails a password reset link carrying the reset token.
func (s *Service) SendPasswordReset(ctx context.Context, email, uniqueID string) (bool, error) {
	return s.send(ctx, email, uniqueID, PasswordResetMergeVar, PasswordResetTemplate)
}

func (s *Service) send(ctx context.Context, email, uniqueID, mergeVarName, templateName string) (bool, error) {
	if err := s.limiter.CheckAndRecord(ctx, email); err != nil {
		return false, err
	}

	template, err := BuildTemplate(s.secrets, email, uniqueID, mergeVarName, templateName)
	if err != nil {
		return false, err
	}

	if !s.production() {
		return true, nil
	}
	return s.sender.Send(ctx, template)
}

func (s *Service) production() bool {
	value, err := s.secrets.Get(ProductionSecret)
	if err != nil {
		return false
	}
	return strings.ToUpper(strings.TrimSpace(value)) == "TRUE"
}
