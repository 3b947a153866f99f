package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/matryer/way"
	"github.com/nakamauwu/parcelmate/service"
	"github.com/nakamauwu/parcelmate/types"
)

func (h *Handler) createSenderPost(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var in types.CreateSenderPost
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondErr(w, r, errBadRequest)
		return
	}

	out, err := h.svc.CreateSenderPost(r.Context(), actor(r), in)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}

func (h *Handler) createTravellerPost(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var in types.CreateTravellerPost
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondErr(w, r, errBadRequest)
		return
	}

	out, err := h.svc.CreateTravellerPost(r.Context(), actor(r), in)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}

func (h *Handler) attachSenderPostImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxPostImageBytes+(1<<20))
	if err := r.ParseMultipartForm(service.MaxPostImageBytes); err != nil {
		h.respondErr(w, r, errBadRequest)
		return
	}

	defer r.MultipartForm.RemoveAll()

	f, _, err := r.FormFile("image")
	if err != nil {
		h.respondErr(w, r, types.ErrImageRequired)
		return
	}

	defer f.Close()

	ctx := r.Context()
	out, err := h.svc.AttachSenderPostImage(ctx, actor(r), types.AttachPostImage{
		Ref:   types.PostRef{Kind: types.PostKindSender, ID: way.Param(ctx, "post_id")},
		Image: f,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *Handler) openPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in, err := parseListOpenPosts(q)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	page, err := h.svc.OpenPosts(r.Context(), in)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	if page.Items == nil {
		page.Items = []types.Post{} // non null array
	}

	h.respond(w, page, http.StatusOK)
}

func parseListOpenPosts(q url.Values) (types.ListOpenPosts, error) {
	var in types.ListOpenPosts

	kind, err := types.ParsePostKind(q.Get("kind"))
	if err != nil {
		return in, err
	}

	in.Kind = kind

	if q.Has("q") {
		in.Query = new(q.Get("q"))
	}

	if in.PaymentMin, err = parseFloatParam(q, "payment_min"); err != nil {
		return in, err
	}

	if in.PaymentMax, err = parseFloatParam(q, "payment_max"); err != nil {
		return in, err
	}

	if in.From, err = parseTimeParam(q, "from"); err != nil {
		return in, err
	}

	if in.To, err = parseTimeParam(q, "to"); err != nil {
		return in, err
	}

	if in.PageArgs, err = parsePageArgs(q); err != nil {
		return in, err
	}

	return in, nil
}

// postRef from the :kind and :post_id path params.
func postRef(r *http.Request) (types.PostRef, error) {
	ctx := r.Context()
	kind, err := types.ParsePostKind(way.Param(ctx, "kind"))
	if err != nil {
		return types.PostRef{}, err
	}

	return types.PostRef{Kind: kind, ID: way.Param(ctx, "post_id")}, nil
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	ref, err := postRef(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	p, err := h.svc.Post(r.Context(), ref)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, p, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var in types.UpdatePost
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondErr(w, r, errBadRequest)
		return
	}

	ref, err := postRef(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	in.Ref = ref
	out, err := h.svc.UpdatePost(r.Context(), actor(r), in)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ref, err := postRef(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	err = h.svc.DeletePost(r.Context(), actor(r), types.DeletePost{Ref: ref})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userPosts(w http.ResponseWriter, r *http.Request) {
	kind, err := types.ParsePostKind(r.URL.Query().Get("kind"))
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	pp, err := h.svc.PostsByOwner(r.Context(), actor(r), types.ListUserPosts{Kind: kind})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	if pp == nil {
		pp = []types.Post{} // non null array
	}

	h.respond(w, pp, http.StatusOK)
}
