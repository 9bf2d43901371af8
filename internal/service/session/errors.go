package session

import "errors"

var (
	// ErrAuthRequired aborts a join: there is no user identity to attribute
	// the session to, the caller must re-authenticate.
	ErrAuthRequired = errors.New("no authenticated user")

	// ErrQuotaExceeded blocks sends while the daily dialog limit is reached.
	// The session stays readable.
	ErrQuotaExceeded = errors.New("daily dialog limit reached")

	// ErrUploadFailed aborts a media-only send whose attachment upload failed.
	ErrUploadFailed = errors.New("failed to upload attachment")

	ErrNotOwner      = errors.New("message belongs to another user")
	ErrNotFound      = errors.New("message not found")
	ErrSessionClosed = errors.New("session is not active")
)
