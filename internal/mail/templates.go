// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

type Kind string

const (
	KindSignupConfirmation Kind = "signup_confirmation"
	KindEmailConfirmation  Kind = "email_confirmation"
	KindInvitation         Kind = "invitation"
	KindMemberAdded        Kind = "member_added"
	KindPasswordReset      Kind = "password_reset"
)

// TemplateData is the payload stored with an outbox message.
type TemplateData struct {
	Name       string `json:"name"`
	TenantName string `json:"tenantName,omitempty"`
	Link       string `json:"link,omitempty"`
}

type mailTemplate struct {
	subject string
	body    *template.Template
}

const layout = `<!DOCTYPE html>
<html><body style="font-family: sans-serif">
<p>Hi {{.Name}},</p>
{{block "content" .}}{{end}}
</body></html>`

func parse(content string) *template.Template {
	return template.Must(template.Must(template.New("layout").Parse(layout)).New("content").Parse(content))
}

var templates = map[Kind]mailTemplate{
	KindSignupConfirmation: {
		subject: "Confirm your account",
		body:    parse(`<p>Thanks for creating {{.TenantName}}. Confirm your email to activate it:</p><p><a href="{{.Link}}">Activate account</a></p>`),
	},
	KindEmailConfirmation: {
		subject: "Confirm your email",
		body:    parse(`<p>Confirm your email address:</p><p><a href="{{.Link}}">Confirm email</a></p>`),
	},
	KindInvitation: {
		subject: "You have been invited",
		body:    parse(`<p>You were invited to join {{.TenantName}}. Accept the invitation and choose a password:</p><p><a href="{{.Link}}">Accept invitation</a></p>`),
	},
	KindMemberAdded: {
		subject: "You were added to a new organization",
		body:    parse(`<p>You now have access to {{.TenantName}}. Sign in with your existing credentials.</p>`),
	},
	KindPasswordReset: {
		subject: "Reset your password",
		body:    parse(`<p>Someone asked to reset your password. If it was you, follow the link:</p><p><a href="{{.Link}}">Reset password</a></p>`),
	},
}

func Subject(kind Kind) (string, error) {
	t, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("unknown email kind %q", kind)
	}

	return t.subject, nil
}

// Render executes the body template of kind, values are HTML escaped.
func Render(kind Kind, data TemplateData) (string, error) {
	t, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("unknown email kind %q", kind)
	}

	var buf bytes.Buffer
	if err := t.body.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("failed to render %s email: %w", kind, err)
	}

	return buf.String(), nil
}
