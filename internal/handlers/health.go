package handlers

import "net/http"

func Health(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusOK, "ok")
}
