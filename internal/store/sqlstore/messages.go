package sqlstore

import (
	"database/sql"
	"time"

	"github.com/pliu/hiver/internal/models"
)

// SaveMessage inserts a message row stamped with the current UTC time.
// mediaPath is empty when the message has no attachment; the chat id is
// not checked against the chats table.
func (s *SQLStore) SaveMessage(chatID, sender, text, mediaPath string) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	media := sql.NullString{String: mediaPath, Valid: mediaPath != ""}
	_, err := s.db.Exec(
		"INSERT INTO messages (chat_id, sender, text, timestamp, media_path) VALUES (?, ?, ?, ?, ?)",
		chatID, sender, text, timestamp, media,
	)
	return err
}

// GetChatMessages returns the chat's messages in insertion order.
func (s *SQLStore) GetChatMessages(chatID string) ([]models.Message, error) {
	rows, err := s.db.Query(
		"SELECT id, chat_id, sender, text, timestamp, media_path FROM messages WHERE chat_id = ? ORDER BY id",
		chatID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		var media sql.NullString
		if err := rows.Scan(&m.ID, &m.ChatID, &m.Sender, &m.Text, &m.Timestamp, &media); err != nil {
			return nil, err
		}
		m.MediaPath = media.String
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
