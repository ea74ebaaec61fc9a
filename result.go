package sendsculpt

// SendEmailResult is the decoded success response, passed through as-is.
// The API returns at least message_id and status; any extra fields are kept.
type SendEmailResult map[string]any

// MessageID returns the message_id field, or "" if missing.
func (r SendEmailResult) MessageID() string {
	return r.str("message_id")
}

// Status returns the status field, or "" if missing.
func (r SendEmailResult) Status() string {
	return r.str("status")
}

func (r SendEmailResult) str(key string) string {
	v, _ := r[key].(string)
	return v
}
