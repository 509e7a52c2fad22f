package store

import "github.com/pliu/hiver/internal/models"

type Store interface {
	// User operations
	CreateUser(username, passwordHash string) error
	GetUserByUsername(username string) (*models.User, error)

	// Chat operations
	ListChats() ([]string, error)
	CreateChat(chatID string) error
	DeleteChat(chatID string) error

	// Message operations
	SaveMessage(chatID, sender, text, mediaPath string) error
	GetChatMessages(chatID string) ([]models.Message, error)
}
