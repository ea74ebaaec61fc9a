package sendsculpt

// SendEmailRequest is the input to Client.Send.
// Optional fields left nil (or empty) are omitted from the payload, never sent as null.
type SendEmailRequest struct {
	TemplateData map[string]any // Template variables; requires TemplateID
	BodyHTML     *string        // HTML body; conflicts with TemplateID
	BodyText     *string        // Plain text body; conflicts with TemplateID
	TemplateID   *string        // Server-side template to render
	SenderName   *string        // Friendly sender display name
	Subject      string         // Subject line (required)
	FromEmail    string         // Sender address on a verified domain (required)
	To           []string       // Recipients (at least one required)
	CC           []string       // Carbon copy recipients
	BCC          []string       // Blind carbon copy recipients
	ReplyTo      []string       // Reply-to addresses
	Attachments  []Attachment   // File attachments, sent in order
}

// String returns a pointer to s, for optional request fields.
func String(s string) *string {
	return &s
}

// validate checks required fields and mutually exclusive combinations.
// It performs no I/O.
func (r *SendEmailRequest) validate() error {
	if len(r.To) == 0 {
		return configError("to is required")
	}
	if r.Subject == "" {
		return configError("subject is required")
	}
	if r.FromEmail == "" {
		return configError("from_email is required")
	}
	if len(r.TemplateData) > 0 && r.TemplateID == nil {
		return configError("template_data and template_id must be provided together")
	}
	if r.TemplateID != nil && (r.BodyHTML != nil || r.BodyText != nil) {
		return configError("template_id and body_html/body_text cannot be provided together")
	}
	return nil
}

// payload is the JSON body posted to /send.
type payload struct {
	TemplateData map[string]any   `json:"template_data,omitempty"`
	BodyHTML     *string          `json:"body_html,omitempty"`
	BodyText     *string          `json:"body_text,omitempty"`
	TemplateID   *string          `json:"template_id,omitempty"`
	SenderName   *string          `json:"sender_name,omitempty"`
	Subject      string           `json:"subject"`
	FromEmail    string           `json:"from_email"`
	Environment  Environment      `json:"environment"`
	To           []string         `json:"to"`
	CC           []string         `json:"cc,omitempty"`
	BCC          []string         `json:"bcc,omitempty"`
	ReplyTo      []string         `json:"reply_to,omitempty"`
	Attachments  []wireAttachment `json:"attachments,omitempty"`
}

// buildPayload validates the request, normalizes attachments and assembles the body.
func (r *SendEmailRequest) buildPayload(env Environment) (*payload, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	attachments, err := normalizeAttachments(r.Attachments)
	if err != nil {
		return nil, err
	}

	return &payload{
		To:           r.To,
		Subject:      r.Subject,
		FromEmail:    r.FromEmail,
		BodyHTML:     r.BodyHTML,
		BodyText:     r.BodyText,
		CC:           r.CC,
		BCC:          r.BCC,
		TemplateID:   r.TemplateID,
		TemplateData: r.TemplateData,
		ReplyTo:      r.ReplyTo,
		Attachments:  attachments,
		SenderName:   r.SenderName,
		Environment:  env,
	}, nil
}
