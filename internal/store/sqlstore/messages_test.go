package sqlstore

import "testing"

func TestSaveMessage(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	testStore.CreateChat("room1")

	if err := testStore.SaveMessage("room1", "alice", "hello", ""); err != nil {
		t.Errorf("Failed to save message: %v", err)
	}

	messages, err := testStore.GetChatMessages("room1")
	if err != nil {
		t.Errorf("Failed to get messages: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if messages[0].Sender != "alice" || messages[0].Text != "hello" {
		t.Errorf("Unexpected message content: %+v", messages[0])
	}
	if messages[0].Timestamp == "" {
		t.Error("Expected message to be timestamped")
	}
	if messages[0].MediaPath != "" {
		t.Errorf("Expected no media path, got '%s'", messages[0].MediaPath)
	}
}

func TestSaveMessageWithMediaPath(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	if err := testStore.SaveMessage("room1", "alice", "", "media/room1/photo.png"); err != nil {
		t.Errorf("Failed to save message: %v", err)
	}

	messages, _ := testStore.GetChatMessages("room1")
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if messages[0].MediaPath != "media/room1/photo.png" {
		t.Errorf("Expected media path to round-trip, got '%s'", messages[0].MediaPath)
	}
}

func TestGetChatMessagesOrder(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	// Interleave two chats; each must keep its own insertion order.
	testStore.SaveMessage("room1", "alice", "first", "")
	testStore.SaveMessage("room2", "bob", "other chat", "")
	testStore.SaveMessage("room1", "bob", "second", "")
	testStore.SaveMessage("room1", "alice", "third", "")

	messages, err := testStore.GetChatMessages("room1")
	if err != nil {
		t.Fatalf("Failed to get messages: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}
	want := []string{"first", "second", "third"}
	for i, text := range want {
		if messages[i].Text != text {
			t.Errorf("Expected message %d to be '%s', got '%s'", i, text, messages[i].Text)
		}
	}
}

func TestGetChatMessagesUnknownChat(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	messages, err := testStore.GetChatMessages("nope")
	if err != nil {
		t.Errorf("GetChatMessages failed: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("Expected no messages, got %d", len(messages))
	}
}
