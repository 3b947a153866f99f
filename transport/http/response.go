package http

import (
	"encoding/json"
	"net/http"

	"github.com/matryer/way"
	"github.com/nakamauwu/parcelmate/types"
)

func (h *Handler) submitResponse(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var in types.SubmitResponse
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondErr(w, r, errBadRequest)
		return
	}

	ref, err := postRef(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	in.Post = ref
	out, err := h.svc.SubmitResponse(r.Context(), actor(r), in)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}

func (h *Handler) postResponses(w http.ResponseWriter, r *http.Request) {
	ref, err := postRef(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	rr, err := h.svc.PostResponses(r.Context(), actor(r), ref)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	if rr == nil {
		rr = []types.Response{} // non null array
	}

	h.respond(w, rr, http.StatusOK)
}

func (h *Handler) acceptResponse(w http.ResponseWriter, r *http.Request) {
	ref, err := postRef(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	ctx := r.Context()
	out, err := h.svc.AcceptResponse(ctx, actor(r), types.AcceptResponse{
		Post:       ref,
		ResponseID: way.Param(ctx, "response_id"),
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *Handler) userResponses(w http.ResponseWriter, r *http.Request) {
	rr, err := h.svc.UserResponses(r.Context(), actor(r))
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	if rr == nil {
		rr = []types.Response{} // non null array
	}

	h.respond(w, rr, http.StatusOK)
}
