package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"parley/internal/notifier"
	"parley/pkg/errors"
)

// Connect handles GET /ws: upgrades the connection and streams the
// caller's events until they hang up.
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		h.writeError(w, errors.InvalidArg("invalid userId"))
		return
	}

	notifier.ServeWS(h.hub, h.logger, w, r, userID)
}
