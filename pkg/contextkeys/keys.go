package contextkeys

type contextKey string

const (
	AdminEmailKey contextKey = "adminEmail"
	RequestIDKey  contextKey = "requestID"
)
