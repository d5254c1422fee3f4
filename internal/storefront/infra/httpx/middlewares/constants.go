package middlewares

// contextKey is an unexported type for context keys in this package.
// Using a custom type prevents collisions with keys from other packages
// that might use the same underlying string value.
type contextKey string

const (
	HeaderXRequestId = "x-request-id"

	// SessionCookie names the cookie that pins a browser to its server-side
	// session state.
	SessionCookie = "storefront_session"

	// ContextKeyRequestID is the context key for the request ID.
	ContextKeyRequestID contextKey = HeaderXRequestId
	// ContextKeySession is the context key for the resolved *session.Session.
	ContextKeySession contextKey = "storefront-session"
)
