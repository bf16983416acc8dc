package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "catalog-admin-session"

	userIDSessionKey   = "userID"
	usernameSessionKey = "username"
)

type SessionStore interface {
	GetUserID(r *http.Request) uint
	GetUsername(r *http.Request) string

	SignIn(w http.ResponseWriter, r *http.Request, userID uint, username string) error
	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		log.Printf("Error getting session: %v", err)
	}
	return session
}

func (c *CookieSessionStore) GetUserID(r *http.Request) uint {
	session := c.getSession(r)
	if session == nil {
		return 0
	}
	userID, ok := session.Values[userIDSessionKey].(uint)
	if !ok {
		return 0
	}
	return userID
}

func (c *CookieSessionStore) GetUsername(r *http.Request) string {
	session := c.getSession(r)
	if session == nil {
		return ""
	}
	username, ok := session.Values[usernameSessionKey].(string)
	if !ok {
		return ""
	}
	return username
}

// SignIn rebuilds the session from scratch so anything carried by the
// pre-login cookie is discarded, then stores the authenticated identity.
func (c *CookieSessionStore) SignIn(w http.ResponseWriter, r *http.Request, userID uint, username string) error {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	session.Values = make(map[interface{}]interface{})
	session.Values[userIDSessionKey] = userID
	session.Values[usernameSessionKey] = username
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
