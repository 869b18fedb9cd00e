package client

import "net/http"

// ResponseHook inspects every response the client receives, before status
// handling. Hooks run in registration order and must not read the body.
// They exist so cross-cutting reactions (session invalidation on 401) stay
// separate from the transport and testable on their own.
type ResponseHook func(resp *http.Response)

// SessionClearer is the slice of the session store the unauthorized hook
// needs: a way to wipe credentials.
type SessionClearer interface {
	ClearAuth() error
}

// UnauthorizedHook returns a hook that clears the session and triggers
// navigation back to the login page whenever the backend answers 401.
// The hook is a side effect only; the failing request's error still
// reaches its caller. Both the clear and the navigate must tolerate being
// invoked once per concurrent in-flight 401.
func UnauthorizedHook(sess SessionClearer, navigate func()) ResponseHook {
	return func(resp *http.Response) {
		if resp.StatusCode != http.StatusUnauthorized {
			return
		}
		sess.ClearAuth() //nolint:errcheck // a failed save must not mask the 401
		if navigate != nil {
			navigate()
		}
	}
}
