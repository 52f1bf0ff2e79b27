// internal/interfaces/http/handlers/session.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-cart/internal/config"
	"github.com/your-org/storefront-cart/internal/domain/cart"
	"github.com/your-org/storefront-cart/internal/domain/checkout"
)

// SessionStorage keeps the cart blob and the selected method of each browsing session
type SessionStorage interface {
	cart.Storage
	checkout.MethodStorage
}

// Sessions opens the checkout session behind a request's session cookie
type Sessions struct {
	storage   SessionStorage
	calc      *checkout.Calculator
	cookie    config.SessionConfig
	logger    logrus.FieldLogger
	listeners []checkout.Listener
}

// NewSessions creates a session opener. Listeners are attached to every opened session.
func NewSessions(storage SessionStorage, calc *checkout.Calculator, cookie config.SessionConfig, logger logrus.FieldLogger, listeners ...checkout.Listener) *Sessions {
	if cookie.CookieName == "" {
		cookie.CookieName = "session_id"
	}
	return &Sessions{
		storage:   storage,
		calc:      calc,
		cookie:    cookie,
		logger:    logger,
		listeners: listeners,
	}
}

// Open loads the cart and fulfillment method of the request's session
func (s *Sessions) Open(c *gin.Context) *checkout.Session {
	ctx := c.Request.Context()
	sessionID := s.getOrCreateSessionID(c)

	logger := s.logger
	if requestID, ok := c.Get("request_id"); ok {
		logger = logger.WithField("request_id", requestID)
	}

	store := cart.Load(ctx, s.storage, sessionID, logger)
	return checkout.OpenSession(ctx, store, s.storage, s.calc, logger, s.listeners...)
}

// getOrCreateSessionID gets session ID from cookie or creates a new one
func (s *Sessions) getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(s.cookie.CookieName)
	if err == nil && sessionID != "" {
		return sessionID
	}

	sessionID = uuid.New().String()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookie.CookieName, sessionID, int(s.cookie.TTL.Seconds()), "/", "", s.cookie.Secure, true)

	return sessionID
}
