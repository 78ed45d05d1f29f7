package mailer

// ContactNotification is the JSON payload put on the RabbitMQ queue when a
// contact message arrives. The worker renders it into the admin email.
type ContactNotification struct {
	MessageID string `json:"message_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	SentAt    string `json:"sent_at"`
}
