package handlers

import (
	"errors"
	"net/http"
	"path"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/pliu/hiver/internal/media"
	"github.com/pliu/hiver/internal/metrics"
	"github.com/pliu/hiver/internal/models"
	"github.com/pliu/hiver/internal/store"
)

// maxUploadMemory bounds the in-memory part of multipart parsing; larger
// file parts spill to temp files.
const maxUploadMemory = 32 << 20

type MessageHandler struct {
	Store store.Store
	Media *media.Store
}

type messageView struct {
	Sender    string           `json:"sender"`
	Text      string           `json:"text"`
	Timestamp string           `json:"timestamp"`
	Media     *models.MediaRef `json:"media"`
}

// SendMessage stores a message and, when a file part is present, its
// attachment. The file is written before the row is inserted so a stored
// message never references a file that failed to land.
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	chatID := r.FormValue("chat_id")
	sender := r.FormValue("sender")
	text := r.FormValue("text")

	mediaPath := ""
	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		mediaPath, err = h.Media.Save(chatID, header.Filename, file)
		if err != nil {
			internalError(w, "save media", err)
			return
		}
		metrics.MediaUploadsTotal.Inc()
	case errors.Is(err, http.ErrMissingFile):
		// text-only message
	default:
		writeError(w, http.StatusBadRequest, "invalid file part")
		return
	}

	if err := h.Store.SaveMessage(chatID, sender, text, mediaPath); err != nil {
		internalError(w, "save message", err)
		return
	}
	metrics.MessagesTotal.Inc()

	writeStatus(w, http.StatusOK, "Message sent")
}

// GetMessages returns the chat's messages in the order they were sent.
func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	chatID := r.URL.Query().Get("chat_id")

	messages, err := h.Store.GetChatMessages(chatID)
	if err != nil {
		internalError(w, "get messages", err)
		return
	}

	views := make([]messageView, 0, len(messages))
	for _, m := range messages {
		v := messageView{Sender: m.Sender, Text: m.Text, Timestamp: m.Timestamp}
		if m.MediaPath != "" {
			v.Media = &models.MediaRef{
				URL: path.Join("/media", chatID, filepath.Base(m.MediaPath)),
			}
		}
		views = append(views, v)
	}

	writeJSON(w, http.StatusOK, map[string][]messageView{"messages": views})
}

// ServeMedia streams a stored attachment; the content type is inferred
// from the filename.
func (h *MessageHandler) ServeMedia(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chatID, filename := vars["chat_id"], vars["filename"]

	f, info, err := h.Media.Open(chatID, filename)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			writeError(w, http.StatusNotFound, "file not found")
			return
		}
		internalError(w, "serve media", err)
		return
	}
	defer f.Close()

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
