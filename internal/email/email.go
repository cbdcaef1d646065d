package email

// Sender delivers a contact-form submission to the operator inbox.
type Sender interface {
	SendContactMessage(name, from, message string) error
}

// Config holds the SMTP transport settings for the contact relay.
type Config struct {
	SMTPHost string
	SMTPPort int
	Username string
	Password string
	FromName string
	// Inbox is the fixed operator address every submission is sent to.
	Inbox string
}
