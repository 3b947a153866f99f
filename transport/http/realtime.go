package http

import (
	"net/http"

	"github.com/nakamauwu/parcelmate/errs"
	"github.com/nakamauwu/parcelmate/realtime"
)

// realtime upgrades to a websocket joined to the channel of the authenticated user.
func (h *Handler) realtime(w http.ResponseWriter, r *http.Request) {
	user := actor(r)
	if !user.Valid() {
		h.respondErr(w, r, errs.Unauthenticated)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an http error.
		h.logger.Warn("could not upgrade websocket", "err", err)
		return
	}

	client := realtime.NewClient(h.Hub, conn, user)
	if err := client.Serve(); err != nil {
		h.logger.Error("could not serve realtime client", "user_id", user.ID, "err", err)
	}
}
