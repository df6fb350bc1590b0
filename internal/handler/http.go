package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rfnaufal/snake-spectacle/internal/domain"
	"github.com/rfnaufal/snake-spectacle/internal/service"
	"github.com/rfnaufal/snake-spectacle/internal/session"
	"github.com/rfnaufal/snake-spectacle/internal/websocket"
)

// Handler provides HTTP handlers for the snake backend API
type Handler struct {
	service  *service.GameService
	sessions *session.Resolver
	hub      *websocket.Hub
	origins  []string
	logger   *slog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	svc *service.GameService,
	sessions *session.Resolver,
	hub *websocket.Hub,
	origins []string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		service:  svc,
		sessions: sessions,
		hub:      hub,
		origins:  origins,
		logger:   logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Router creates and configures the HTTP router
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(corsMiddleware(h.origins))

	// Health check
	r.Get("/health", h.HealthCheck)
	r.Get("/ready", h.ReadyCheck)

	// WebSocket endpoint for spectators
	r.Get("/ws", h.HandleWebSocket)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.Get("/me", h.Me)
		})

		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/", h.GetLeaderboard)
			r.Post("/", h.SubmitScore)
		})

		r.Route("/live-players", func(r chi.Router) {
			r.Get("/", h.GetLivePlayers)
			r.Get("/{playerID}", h.GetLivePlayer)
		})

		// WebSocket info endpoint
		r.Get("/ws/stats", h.GetWebSocketStats)
	})

	return r
}

// corsMiddleware allows the configured frontend origins with credentials,
// which the cookie session needs cross-origin.
func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeSuccess writes a successful JSON response
func (h *Handler) writeSuccess(w http.ResponseWriter, data interface{}) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

// writeFailure writes a business-rule failure. These ship HTTP 200 with
// success=false; clients assert on the body, not the status code.
func (h *Handler) writeFailure(w http.ResponseWriter, err error) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: false,
		Error:   err.Error(),
	})
}

// writeError writes an error JSON response with the given status
func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, APIResponse{
		Success: false,
		Error:   err.Error(),
	})
}

// HandleWebSocket handles WebSocket upgrade requests
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWs(h.hub, h.logger, w, r)
}

// GetWebSocketStats returns spectator connection statistics
func (h *Handler) GetWebSocketStats(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, map[string]interface{}{
		"total_connections": h.hub.GetTotalConnections(),
	})
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, map[string]string{"status": "healthy"})
}

// ReadyCheck returns service readiness status
func (h *Handler) ReadyCheck(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, map[string]string{"status": "ready"})
}

// Signup handles user registration. A fresh email yields 201 with the new
// user and a session cookie; a taken email or missing username yields a
// failure envelope.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}
	if creds.Email == "" || creds.Password == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	user, err := h.service.Signup(creds)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	h.sessions.Issue(w, user)
	h.writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    user,
	})
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}
	if creds.Email == "" || creds.Password == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	user, err := h.service.Login(creds)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	h.sessions.Issue(w, user)
	h.writeSuccess(w, user)
}

// Logout clears the session cookie. Always succeeds, even without a session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true})
}

// Me returns the authenticated user's profile
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessions.Resolve(r)
	if !ok {
		h.writeFailure(w, domain.ErrNotAuthenticated)
		return
	}
	h.writeSuccess(w, user)
}

// GetLeaderboard returns entries sorted by score descending. The optional
// mode query parameter is passed through as-is; an unknown mode simply
// matches nothing.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	mode := domain.Mode(r.URL.Query().Get("mode"))
	h.writeSuccess(w, h.service.Leaderboard(mode))
}

// SubmitScore records a score for the authenticated user
func (h *Handler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.Resolve(r)

	// Score is a pointer so a body omitting the field is distinguishable
	// from an explicit zero
	var submission struct {
		Score *int        `json:"score"`
		Mode  domain.Mode `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}
	// Shape validation precedes the auth check, like any body parse failure
	if submission.Score == nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}
	if !submission.Mode.Valid() {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidMode)
		return
	}

	entry, err := h.service.SubmitScore(user, domain.ScoreSubmission{
		Score: *submission.Score,
		Mode:  submission.Mode,
	})
	if err != nil {
		if domain.IsBusinessError(err) {
			h.writeFailure(w, err)
			return
		}
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	h.writeSuccess(w, entry)
}

// GetLivePlayers returns all live-player snapshots
func (h *Handler) GetLivePlayers(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, h.service.LivePlayers())
}

// GetLivePlayer returns a single live-player snapshot by id
func (h *Handler) GetLivePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	player, err := h.service.LivePlayer(playerID)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	h.writeSuccess(w, player)
}
