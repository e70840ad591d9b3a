package httpapi

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/dmitrijs2005/bookline/internal/common"
	"github.com/dmitrijs2005/bookline/internal/server/auth"
	"github.com/dmitrijs2005/bookline/internal/server/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/style.css
var styleCSS []byte

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var bookingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "bookings_created_total",
	Help: "Bookings accepted through the public form.",
})

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error(r.Context(), "template render failed", "template", name, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "home.html", struct{ Services []string }{models.Services})
}

func (s *Server) handleStyle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(styleCSS)
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form"})
		return
	}

	req := &models.BookingRequest{
		Name:            r.PostFormValue("name"),
		Phone:           r.PostFormValue("phone"),
		Email:           r.PostFormValue("email"),
		Service:         r.PostFormValue("service"),
		AppointmentTime: r.PostFormValue("appointment_time"),
		Notes:           r.PostFormValue("notes"),
	}

	id, err := s.service.Submit(r.Context(), req)
	if err != nil {
		var verr *common.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing " + verr.Field})
			return
		}
		s.logger.Error(r.Context(), "booking failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not save booking"})
		return
	}

	bookingsCreatedTotal.Inc()
	s.renderPage(w, r, "thanks.html", struct{ ID int64 }{id})
}

func (s *Server) handleAdminPage(w http.ResponseWriter, r *http.Request) {
	list, err := s.service.ListAll(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "admin listing failed", "error", err)
		http.Error(w, "could not load bookings", http.StatusInternalServerError)
		return
	}
	s.renderPage(w, r, "admin.html", struct{ Bookings []*models.Booking }{list})
}

func (s *Server) handleAppointments(w http.ResponseWriter, r *http.Request) {
	list, err := s.service.ListAll(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "api listing failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not load bookings"})
		return
	}
	if list == nil {
		list = []*models.Booking{}
	}
	writeJSON(w, http.StatusOK, list)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Username != s.config.AdminUser || !auth.CheckPassword(s.config.AdminPasswordHash, req.Password) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(req.Username, []byte(s.config.JWTSecret), s.config.TokenValidityDuration)
	if err != nil {
		s.logger.Error(r.Context(), "token generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not issue token"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
