package response

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookieName = "flash"

type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashInfo    FlashLevel = "info"
	FlashWarning FlashLevel = "warning"
	FlashError   FlashLevel = "error"
)

// Flash is a message that survives exactly one redirect.
type Flash struct {
	Level   FlashLevel `json:"level"`
	Message string     `json:"message"`
}

func SetFlash(w http.ResponseWriter, level FlashLevel, message string) {
	raw, err := json.Marshal(Flash{Level: level, Message: message})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ConsumeFlash returns the pending flash, if any, and clears it.
func ConsumeFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flash Flash
	if err := json.Unmarshal(raw, &flash); err != nil || flash.Message == "" {
		return nil
	}
	return &flash
}
