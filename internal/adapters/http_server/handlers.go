package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/stayfront/mockstay/internal/app"
	"github.com/stayfront/mockstay/internal/domain"
)

type Handlers struct {
	Auth   *app.AuthService
	Q      *app.QueryService
	C      *app.CommandService
	Assets string // static asset root
}

// apiEnvelope is the error shape shared by every failing API response.
type apiEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// The original frontend calls the PHP-style paths (/api/auth.php), newer
// clients the bare ones; both route to the same handlers.
var pathAliases = map[string][]string{
	"auth":     {"/api/auth", "/api/auth.php"},
	"hotels":   {"/api/hotels", "/api/hotels.php"},
	"bookings": {"/api/bookings", "/api/bookings.php"},
	"reviews":  {"/api/reviews", "/api/reviews.php"},
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	for _, p := range pathAliases["auth"] {
		s.mux.Get(p, h.checkSession)
		s.mux.Post(p, h.authAction)
	}
	for _, p := range pathAliases["hotels"] {
		s.mux.Get(p, h.getHotels)
	}
	for _, p := range pathAliases["bookings"] {
		s.mux.Get(p, h.listBookings)
		s.mux.Post(p, h.createBooking)
	}
	for _, p := range pathAliases["reviews"] {
		s.mux.Get(p, h.listReviews)
		s.mux.Post(p, h.createReview)
	}

	// PUT/DELETE anywhere under /api are acknowledged stubs.
	s.mux.Put("/api/*", h.updateStub)
	s.mux.Delete("/api/*", h.deleteStub)

	// Everything unmatched: JSON 404 under /api, static assets elsewhere.
	s.mux.NotFound(h.fallback)
	s.mux.MethodNotAllowed(h.fallback)
}

// ---- response plumbing ----

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiEnvelope{Success: false, Message: msg})
}

// decodeBody reads a JSON request body; an empty body counts as {}.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == io.EOF {
		return nil
	}
	return err
}

func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

// ---- auth ----

func (h *Handlers) checkSession(w http.ResponseWriter, r *http.Request) {
	u, err := h.Auth.Authenticate(r.Context(), bearerToken(r))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Success bool        `json:"success"`
		User    app.Profile `json:"user"`
	}{true, app.NewProfile(u)})
}

type sessionPayload struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	User      domain.User `json:"user"`
	SessionID string      `json:"session_id"`
}

func (h *Handlers) authAction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action   string `json:"action"`
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	switch req.Action {
	case "login":
		u, token, err := h.Auth.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeJSON(w, http.StatusOK, sessionPayload{true, "Login successful", u, token})

	case "register":
		u, token, err := h.Auth.Register(r.Context(), app.RegisterRequest{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			FullName: req.FullName,
			Phone:    req.Phone,
		})
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateUser) {
				writeError(w, http.StatusBadRequest, "Username already exists")
				return
			}
			writeError(w, http.StatusInternalServerError, "Registration failed")
			return
		}
		writeJSON(w, http.StatusOK, sessionPayload{true, "Registration successful", u, token})

	case "logout":
		if err := h.Auth.Logout(r.Context(), bearerToken(r)); err != nil {
			log.Warn().Err(err).Msg("logout failed")
		}
		writeJSON(w, http.StatusOK, apiEnvelope{Success: true, Message: "Logged out"})

	default:
		writeError(w, http.StatusBadRequest, "Unknown action")
	}
}

// ---- hotels ----

func (h *Handlers) getHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if idStr := q.Get("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid hotel ID")
			return
		}
		detail, err := h.Q.HotelDetail(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "Hotel not found")
			return
		}
		writeJSON(w, http.StatusOK, struct {
			Success bool            `json:"success"`
			Data    app.HotelDetail `json:"data"`
		}{true, detail})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool               `json:"success"`
		Data    []app.HotelSummary `json:"data"`
	}{true, h.Q.SearchHotels(q.Get("city"))})
}

// ---- bookings ----

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	u, err := h.Auth.Authenticate(r.Context(), bearerToken(r))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Success  bool              `json:"success"`
		Bookings []app.BookingView `json:"bookings"`
	}{true, h.Q.UserBookings(u.ID)})
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	u, err := h.Auth.Authenticate(r.Context(), bearerToken(r))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	var req app.BookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	b := h.C.CreateBooking(u, req)
	writeJSON(w, http.StatusOK, struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Booking domain.Booking `json:"booking"`
	}{true, "Booking created", b})
}

// ---- reviews ----

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	// Absent or garbage hotel_id degrades to 0, i.e. an empty list.
	hotelID, _ := strconv.Atoi(r.URL.Query().Get("hotel_id"))
	writeJSON(w, http.StatusOK, struct {
		Success bool            `json:"success"`
		Reviews []domain.Review `json:"reviews"`
	}{true, h.Q.HotelReviews(hotelID)})
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	u, err := h.Auth.Authenticate(r.Context(), bearerToken(r))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	var req app.ReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	rev := h.C.CreateReview(u, req)
	writeJSON(w, http.StatusOK, struct {
		Success bool          `json:"success"`
		Message string        `json:"message"`
		Review  domain.Review `json:"review"`
	}{true, "Review added", rev})
}

// ---- stubs & fallback ----

func (h *Handlers) updateStub(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apiEnvelope{Success: true, Message: "Update successful"})
}

func (h *Handlers) deleteStub(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apiEnvelope{Success: true, Message: "Delete successful"})
}

// fallback handles everything chi did not match: PUT and DELETE are
// acknowledged stubs on any path, unmatched API paths get the JSON
// not-found payload, and anything else is treated as a static asset request.
func (h *Handlers) fallback(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		h.updateStub(w, r)
		return
	case http.MethodDelete:
		h.deleteStub(w, r)
		return
	}
	if strings.HasPrefix(r.URL.Path, "/api/") || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
		return
	}
	h.serveAsset(w, r)
}
