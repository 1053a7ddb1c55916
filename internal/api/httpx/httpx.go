package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response wrapper every endpoint uses. Status mirrors the
// HTTP status code.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	User    any    `json:"user,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func write(w http.ResponseWriter, status int, e Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(e)
}

func WriteUser(w http.ResponseWriter, status int, msg string, user any) {
	write(w, status, Envelope{Status: status, Message: msg, User: user})
}

func WriteData(w http.ResponseWriter, status int, msg string, data any) {
	write(w, status, Envelope{Status: status, Message: msg, Data: data})
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	write(w, status, Envelope{Status: status, Message: msg})
}
