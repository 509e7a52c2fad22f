package sqlstore

import (
	"errors"
	"testing"
)

func TestCreateChat(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	if err := testStore.CreateChat("room1"); err != nil {
		t.Errorf("Failed to create chat: %v", err)
	}

	err := testStore.CreateChat("room1")
	if !errors.Is(err, ErrChatExists) {
		t.Errorf("Expected ErrChatExists for duplicate chat, got %v", err)
	}
}

func TestListChats(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	chats, err := testStore.ListChats()
	if err != nil {
		t.Errorf("ListChats failed: %v", err)
	}
	if len(chats) != 0 {
		t.Errorf("Expected no chats, got %d", len(chats))
	}

	testStore.CreateChat("room1")
	testStore.CreateChat("room2")

	chats, err = testStore.ListChats()
	if err != nil {
		t.Errorf("ListChats failed: %v", err)
	}
	if len(chats) != 2 {
		t.Errorf("Expected 2 chats, got %d", len(chats))
	}
}

func TestDeleteChat(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	testStore.CreateChat("room1")
	testStore.SaveMessage("room1", "alice", "hello", "")
	testStore.SaveMessage("room1", "bob", "hi", "")

	if err := testStore.DeleteChat("room1"); err != nil {
		t.Errorf("Failed to delete chat: %v", err)
	}

	chats, _ := testStore.ListChats()
	if len(chats) != 0 {
		t.Errorf("Expected chat to be removed, still have %d", len(chats))
	}

	messages, _ := testStore.GetChatMessages("room1")
	if len(messages) != 0 {
		t.Error("Expected messages to be deleted with the chat")
	}
}

func TestDeleteChatNonexistent(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	if err := testStore.DeleteChat("never-created"); err != nil {
		t.Errorf("Expected deleting an unknown chat to succeed, got %v", err)
	}
}
