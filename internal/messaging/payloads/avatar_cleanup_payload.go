package payloads

// AvatarCleanupPayload carries the object key of a replaced avatar file.
// It is published only after the new avatar reference has been durably
// saved, so the worker can delete the old object without racing the update.
type AvatarCleanupPayload struct {
	UserID    string `json:"user_id"`
	ObjectKey string `json:"object_key"`
}
