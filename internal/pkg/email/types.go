package email

// Sender delivers transactional mail. Implementations must be safe for
// concurrent use; callers fire sends from goroutines.
type Sender interface {
	SendConfirmation(toEmail, token string) error
	SendPasswordReset(toEmail, token string) error
}
