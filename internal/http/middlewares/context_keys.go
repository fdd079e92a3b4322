package middlewares

const (
	ctxUserIDKey    = "auth.userID"
	CtxRequestIDKey = "request_id"
)
