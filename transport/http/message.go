package http

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/matryer/way"
	"github.com/nakamauwu/parcelmate/types"
)

func (h *Handler) conversations(w http.ResponseWriter, r *http.Request) {
	cc, err := h.svc.Conversations(r.Context(), actor(r))
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	if cc == nil {
		cc = []types.Conversation{} // non null array
	}

	h.respond(w, cc, http.StatusOK)
}

func (h *Handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.UnreadCount(r.Context(), actor(r))
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, map[string]int64{"unreadCount": n}, http.StatusOK)
}

func (h *Handler) thread(w http.ResponseWriter, r *http.Request) {
	ref, err := postRef(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	ctx := r.Context()
	mm, err := h.svc.Thread(ctx, actor(r), types.RetrieveThread{
		Post:        ref,
		OtherUserID: way.Param(ctx, "other_user_id"),
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	if mm == nil {
		mm = []types.Message{} // non null array
	}

	h.respond(w, mm, http.StatusOK)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var in types.CreateMessage
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondErr(w, r, errBadRequest)
		return
	}

	ref, err := postRef(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	ctx := r.Context()
	in.Post = ref
	in.ReceiverID = way.Param(ctx, "other_user_id")
	out, err := h.svc.SendMessage(ctx, actor(r), in)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}

// messageStream pushes the messages of the user as server-sent events.
func (h *Handler) messageStream(w http.ResponseWriter, r *http.Request) {
	if a, _, err := mime.ParseMediaType(r.Header.Get("Accept")); err != nil || a != "text/event-stream" {
		h.respondErr(w, r, errBadRequest)
		return
	}

	f, ok := w.(http.Flusher)
	if !ok {
		h.respondErr(w, r, errStreamingUnsupported)
		return
	}

	ctx := r.Context()
	mm, err := h.svc.MessageStream(ctx, actor(r))
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	header := w.Header()
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("Content-Type", "text/event-stream; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	f.Flush()

	for {
		select {
		case m, ok := <-mm:
			if !ok {
				return
			}

			h.writeSSE(w, m)
			f.Flush()
		case <-ctx.Done():
			return
		}
	}
}
