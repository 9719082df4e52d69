package session

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"tourquote/internal/dto"
)

type Controller struct {
	store  Store
	logger *zap.Logger
}

func NewController(store Store, logger *zap.Logger) *Controller {
	return &Controller{
		store:  store,
		logger: logger,
	}
}

// HandleGetSession returns the identity for the bearer token, or 401 when the
// request carries no resolvable session.
func (c *Controller) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	if id, ok := FromContext(r.Context()); ok {
		c.writeJSON(w, http.StatusOK, dto.SessionResponse{
			ID:   id.ID,
			Role: id.Role,
		})
		return
	}

	token := bearerToken(r)
	if token == "" {
		c.writeUnauthenticated(w)
		return
	}

	id, err := c.store.Resolve(r.Context(), token)
	if err != nil {
		c.writeUnauthenticated(w)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.SessionResponse{
		ID:   id.ID,
		Role: id.Role,
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (c *Controller) writeUnauthenticated(w http.ResponseWriter) {
	c.writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{
		Error:     "UNAUTHENTICATED",
		Message:   "no active session",
		Timestamp: time.Now().UTC(),
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
