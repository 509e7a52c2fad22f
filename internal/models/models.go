package models

import "time"

type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type Chat struct {
	ID        string    `json:"chat_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Message struct {
	ID        int64  `json:"-"`
	ChatID    string `json:"-"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	// MediaPath is the on-disk path of the attachment, empty when the
	// message has none. Exposed to clients as a MediaRef URL instead.
	MediaPath string `json:"-"`
}

// MediaRef is the client-facing pointer to a stored attachment.
type MediaRef struct {
	URL string `json:"url"`
}
