// Package mailer sends transactional account emails through the Mailchimp
// transactional (Mandrill) template API, gated by a per-email rate limit.
package mailer

import (
	"github.com/maxwellflitton/adminauth/secrets"
)

// APIKeySecret names the secret holding the Mailchimp transactional API key.
const APIKeySecret = "MAILCHIMP_API_KEY"

// Template names and merge variables for the account email flows.
const (
	ConfirmationTemplate = "confirmation-email"
	ConfirmationMergeVar = "CONFIRMATION_URL"

	PasswordResetTemplate = "password-reset"
	PasswordResetMergeVar = "PASSWORD_RESET_URL"
)

// ToContent addresses one recipient in a template message.
type ToContent struct {
	Email string `json:"email"`
	Type  string `json:"type"`
}

// GlobalMergeVar is a named substitution applied across the template.
type GlobalMergeVar struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Message carries the recipients and merge variables of one send.
type Message struct {
	To              []ToContent      `json:"to"`
	GlobalMergeVars []GlobalMergeVar `json:"global_merge_vars"`
}

// Template is the send-template request body expected by the Mandrill
// messages API.
type Template struct {
	APIKey          string        `json:"api_key"`
	TemplateName    string        `json:"template_name"`
	TemplateContent []interface{} `json:"template_content"`
	Message         Message       `json:"message"`
}

// BuildTemplate assembles a single-recipient template request carrying one
// merge variable. The API key comes from the secret provider.
func BuildTemplate(provider secrets.Provider, email, content, mergeVarName, templateName string) (*Template, error) {
	apiKey, err := provider.Get(APIKeySecret)
	if err != nil {
		return nil, err
	}

	return &Template{
		APIKey:          apiKey,
		TemplateName:    templateName,
		TemplateContent: []interface{}{},
		Message: Message{
			To:              []ToContent{{Email: email, Type: "to"}},
			GlobalMergeVars: []GlobalMergeVar{{Name: mergeVarName, Content: content}},
		},
	}, nil
}
