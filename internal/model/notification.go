package model

// NewMessageNotification is the fire-and-forget notice produced for the
// other participant when a message lands in a dialog.
type NewMessageNotification struct {
	RecipientID    string `json:"recipient_id"`
	SenderID       string `json:"sender_id"`
	SenderNickname string `json:"sender_nickname"`
	Preview        string `json:"preview"`
}
