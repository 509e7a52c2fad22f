package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/pliu/hiver/internal/media"
	"github.com/pliu/hiver/internal/store"
	"github.com/pliu/hiver/internal/store/sqlstore"
)

type ChatHandler struct {
	Store store.Store
	Media *media.Store
}

type chatRequest struct {
	ChatID string `json:"chat_id"`
}

func (h *ChatHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.Store.ListChats()
	if err != nil {
		internalError(w, "list chats", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"chats": chats})
}

func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChatID == "" {
		writeError(w, http.StatusBadRequest, "Missing chat_id")
		return
	}

	if err := h.Store.CreateChat(req.ChatID); err != nil {
		if errors.Is(err, sqlstore.ErrChatExists) {
			writeError(w, http.StatusBadRequest, "Chat already exists")
			return
		}
		internalError(w, "create chat", err)
		return
	}

	writeStatus(w, http.StatusCreated, "Chat created")
}

// DeleteChat sweeps the chat's messages, its registry row, and its media
// directory. It is best-effort: a chat that never existed still yields 200.
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	// A missing or undecodable id means an empty sweep, not an error.
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.Store.DeleteChat(req.ChatID); err != nil {
		internalError(w, "delete chat", err)
		return
	}
	if err := h.Media.Purge(req.ChatID); err != nil {
		// Rows are already gone; report the sweep failure but keep the
		// contract that delete_chat does not fail on missing state.
		log.Warn().Err(err).Str("chat_id", req.ChatID).Msg("media purge")
	}

	writeStatus(w, http.StatusOK, "Chat deleted")
}
