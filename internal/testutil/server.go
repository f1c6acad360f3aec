package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"marketplace-storefront/internal/data/entity"
)

const sessionCookie = "SESSION"

// Server adalah stub backend marketplace untuk test: login berbasis
// cookie session, katalog statis, plus hit counter per route supaya
// test cache bisa membuktikan fetch tidak terjadi dua kali.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	hits     map[string]int
	sessions map[string]string // cookie value -> email

	// Users dikunci per email, Password berlaku untuk semua.
	Users    map[string]entity.User
	Password string

	Products []entity.Product

	// FailLogout memaksa /auth/logout balas 500.
	FailLogout bool
}

func NewServer() *Server {
	s := &Server{
		hits:     make(map[string]int),
		sessions: make(map[string]string),
		Users:    make(map[string]entity.User),
		Password: "secret",
	}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)
		r.Get("/auth/profile", s.handleProfile)
		r.Get("/products", s.handleProducts)
		r.Get("/products/{id}", s.handleProduct)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL mengembalikan base URL termasuk prefix API, siap dipakai
// sebagai APIConfig.BaseURL.
func (s *Server) BaseURL() string {
	return s.URL + "/api/v1"
}

// Hits mengembalikan berapa kali path (tanpa prefix /api/v1) dipanggil.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// AddUser mendaftarkan user yang bisa login lewat stub.
func (s *Server) AddUser(u entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Users[u.Email] = u
}

func (s *Server) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits[r.URL.Path[len("/api/v1"):]]++
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.record(r)

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request")
		return
	}

	s.mu.Lock()
	user, ok := s.Users[body.Email]
	if !ok || body.Password != s.Password {
		s.mu.Unlock()
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	token := uuid.NewString()
	s.sessions[token] = body.Email
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: token, Path: "/"})
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.record(r)

	if s.FailLogout {
		writeError(w, http.StatusInternalServerError, "Logout failed")
		return
	}

	if c, err := r.Cookie(sessionCookie); err == nil {
		s.mu.Lock()
		delete(s.sessions, c.Value)
		s.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	s.record(r)

	user, ok := s.currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	s.record(r)

	page := entity.ProductPage{
		Content:       s.Products,
		TotalElements: int64(len(s.Products)),
		TotalPages:    1,
		Size:          len(s.Products),
		First:         true,
		Last:          true,
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	s.record(r)

	id := chi.URLParam(r, "id")
	for _, p := range s.Products {
		if p.ID == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Product not found")
}

func (s *Server) currentUser(r *http.Request) (entity.User, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return entity.User{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.sessions[c.Value]
	if !ok {
		return entity.User{}, false
	}
	user, ok := s.Users[email]
	return user, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
