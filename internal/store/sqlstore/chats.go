package sqlstore

import "time"

func (s *SQLStore) ListChats() ([]string, error) {
	rows, err := s.db.Query("SELECT chat_id FROM chats")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		chats = append(chats, id)
	}
	return chats, rows.Err()
}

func (s *SQLStore) CreateChat(chatID string) error {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM chats WHERE chat_id = ?)", chatID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrChatExists
	}

	createdAt := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.Exec("INSERT INTO chats (chat_id, created_at) VALUES (?, ?)", chatID, createdAt)
	return err
}

// DeleteChat removes the chat's messages and the chat row. Deleting a chat
// that was never created is not an error.
func (s *SQLStore) DeleteChat(chatID string) error {
	if _, err := s.db.Exec("DELETE FROM messages WHERE chat_id = ?", chatID); err != nil {
		return err
	}
	_, err := s.db.Exec("DELETE FROM chats WHERE chat_id = ?", chatID)
	return err
}
