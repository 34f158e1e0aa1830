package constants

// NATS subjects
const (
	SubjectAuthLogin = "auth.login"
)
