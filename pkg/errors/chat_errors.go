package errors

var (
	// Domain errors — used in usecase/repository
	ErrEmptyContent         = InvalidArg("message content cannot be empty")
	ErrSelfMessage          = InvalidArg("sender and receiver must be different users")
	ErrInvalidContext       = InvalidArg("context must be one of basic, love, business")
	ErrInvalidParticipant   = InvalidArg("participant id cannot be empty")
	ErrInvalidExpiryDays    = InvalidArg("expiry days cannot be negative")
	ErrMessageNotFound      = NotFound("message not found")
	ErrConversationNotFound = NotFound("conversation not found")
	ErrNotMessageOwner      = Forbidden("only the sender can delete a message")
	ErrReplyTargetMissing   = NotFound("replied-to message not found in this conversation")
)

func ErrSendFailed(cause error) error {
	return Wrap(CodeInternal, "failed to send message", cause)
}

func ErrConversationLookupFailed(cause error) error {
	return Wrap(CodeInternal, "failed to resolve conversation", cause)
}

func ErrStoreUnavailable(cause error) error {
	return Wrap(CodeUnavailable, "message store unavailable", cause)
}
