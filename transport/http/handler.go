package http

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/nakamauwu/parcelmate/auth"
	"github.com/nakamauwu/parcelmate/realtime"
	"github.com/nakamauwu/parcelmate/service"
	"github.com/nakamauwu/parcelmate/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	Service  *service.Service
	Tokens   *auth.Codec
	Hub      *realtime.Hub
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
	// CheckOrigin of websocket upgrades. Nil allows same origin only.
	CheckOrigin func(r *http.Request) bool

	svc      *service.Service
	logger   *slog.Logger
	upgrader websocket.Upgrader
	handler  http.Handler
	once     sync.Once
}

func (h *Handler) init() {
	h.svc = h.Service
	h.logger = h.Logger
	if h.logger == nil {
		h.logger = slog.New(slog.DiscardHandler)
	}

	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.CheckOrigin,
	}

	api := way.NewRouter()
	api.HandleFunc("POST", "/api/sender_posts", h.createSenderPost)
	api.HandleFunc("POST", "/api/traveller_posts", h.createTravellerPost)
	api.HandleFunc("POST", "/api/sender_posts/:post_id/image", h.attachSenderPostImage)
	api.HandleFunc("GET", "/api/posts", h.openPosts)
	api.HandleFunc("GET", "/api/posts/:kind/:post_id", h.post)
	api.HandleFunc("PATCH", "/api/posts/:kind/:post_id", h.updatePost)
	api.HandleFunc("DELETE", "/api/posts/:kind/:post_id", h.deletePost)
	api.HandleFunc("GET", "/api/me/posts", h.userPosts)
	api.HandleFunc("POST", "/api/posts/:kind/:post_id/responses", h.submitResponse)
	api.HandleFunc("GET", "/api/posts/:kind/:post_id/responses", h.postResponses)
	api.HandleFunc("POST", "/api/posts/:kind/:post_id/responses/:response_id/accept", h.acceptResponse)
	api.HandleFunc("GET", "/api/me/responses", h.userResponses)
	api.HandleFunc("GET", "/api/conversations", h.conversations)
	api.HandleFunc("GET", "/api/conversations/unread_count", h.unreadCount)
	api.HandleFunc("GET", "/api/conversations/:kind/:post_id/:other_user_id", h.thread)
	api.HandleFunc("POST", "/api/conversations/:kind/:post_id/:other_user_id/messages", h.sendMessage)
	api.HandleFunc("GET", "/api/messages", h.messageStream)
	api.HandleFunc("GET", "/api/realtime", h.realtime)
	api.NotFound = http.HandlerFunc(h.notFound)

	r := way.NewRouter()
	if h.Gatherer != nil {
		r.Handle("GET", "/metrics", promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{}))
	}
	r.Handle("*", "/api...", h.withAuth(api))
	r.NotFound = http.HandlerFunc(h.notFound)

	h.handler = r
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.once.Do(h.init)
	h.handler.ServeHTTP(w, r)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.respondErr(w, r, errNotFound)
}

// actor is the authenticated user of the request, or the zero user.
// Service calls reject the zero user as unauthenticated.
func actor(r *http.Request) types.User {
	return auth.UserFrom(r.Context())
}
