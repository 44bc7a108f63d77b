package sessions

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "kanak_session"
	sessionKeyValue   = "session_key"
)

// Store wraps a cookie session store and hands out the opaque per-visitor
// session key the cart is bound to.
type Store struct {
	cookie *sessions.CookieStore
}

func NewStore(keyPairs ...[]byte) *Store {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookie: store}
}

// SessionKey returns the visitor's session key, minting and saving one on
// first touch. Repeated calls for the same visitor return the same key.
func (s *Store) SessionKey(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := s.cookie.Get(r, sessionCookieName)
	if err != nil && !session.IsNew {
		return "", err
	}

	if key, ok := session.Values[sessionKeyValue].(string); ok && key != "" {
		return key, nil
	}

	key := uuid.New().String()
	session.Values[sessionKeyValue] = key
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return key, nil
}

// Clear drops the visitor's session cookie.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.cookie.Get(r, sessionCookieName)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
