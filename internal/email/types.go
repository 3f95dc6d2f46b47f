package email

// Attachment carries a file at the API boundary. Content is base64-encoded
// and decoded during message construction.
type Attachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	ContentType string `json:"contentType,omitempty"`
}

// SendRequest is a single-recipient send.
type SendRequest struct {
	Sender      string       `json:"sender,omitempty"` // Named sender identity; empty selects the default.
	To          string       `json:"to"`
	Cc          []string     `json:"cc,omitempty"`
	Bcc         []string     `json:"bcc,omitempty"`
	Subject     string       `json:"subject"`
	Text        string       `json:"text,omitempty"`
	HTML        string       `json:"html,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// BulkRequest sends the same content to multiple recipients.
type BulkRequest struct {
	Sender      string       `json:"sender,omitempty"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	Text        string       `json:"text,omitempty"`
	HTML        string       `json:"html,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// TemplateRequest sends a rendered generic template.
type TemplateRequest struct {
	Sender    string         `json:"sender,omitempty"`
	To        string         `json:"to"`
	Cc        []string       `json:"cc,omitempty"`
	Bcc       []string       `json:"bcc,omitempty"`
	Template  string         `json:"template"`
	Variables map[string]any `json:"variables,omitempty"`
	Subject   string         `json:"subject"`
}

// PortfolioRequest triggers the paired acknowledgement plus operator
// notification flow.
type PortfolioRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// WelcomeRequest triggers the fixed welcome notification.
type WelcomeRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	LoginURL string `json:"loginUrl"`
}

// Result is the outcome of one logical send.
type Result struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
}

// BulkResult aggregates per-recipient outcomes in request order.
// Sent+Failed always equals len(Results).
type BulkResult struct {
	Success bool     `json:"success"`
	Sent    int      `json:"sent"`
	Failed  int      `json:"failed"`
	Results []Result `json:"results"`
}

// ConnectionTestResult reports transport reachability.
type ConnectionTestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
