package util

// Messages surfaced through the Result envelope. Auth failures share one
// generic message so callers cannot tell which half of a credential pair was
// wrong.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgNotConfigured      = "Database not configured"
	MsgDemoMode           = "Demo mode: no database configured"
)
