package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Rajamurugan09/ai-course-builder/internal/auth"
	"github.com/Rajamurugan09/ai-course-builder/internal/generate"
	"github.com/Rajamurugan09/ai-course-builder/internal/models"
	"github.com/Rajamurugan09/ai-course-builder/internal/store"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type Handler struct {
	store     store.Store
	auth      *auth.Service
	generator generate.Generator
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
}

type generateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type errorResponse struct {
	Error responseError `json:"error"`
}

type responseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewHandler(store store.Store, auth *auth.Service, generator generate.Generator) *Handler {
	return &Handler{store: store, auth: auth, generator: generator}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.handleHealth)
	mux.HandleFunc("/auth/register", h.handleRegister)
	mux.HandleFunc("/auth/token", h.handleToken)
	mux.HandleFunc("/auth/me", h.handleMe)
	mux.HandleFunc("/courses", h.handleCourses)
	mux.HandleFunc("/courses/generate", h.handleGenerateCourse)
	mux.HandleFunc("/courses/", h.handleCourseByID)
	return mux
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req registerRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON payload")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "username and password are required")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		status, code, msg := mapError(err)
		writeError(w, status, code, msg)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Username: user.Username})
}

func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid form payload")
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := strings.TrimSpace(r.PostFormValue("password"))
	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "username and password are required")
		return
	}

	user, err := h.auth.Authenticate(r.Context(), username, password)
	if err != nil {
		status, code, msg := mapError(err)
		writeError(w, status, code, msg)
		return
	}

	token, _, err := h.auth.MintToken(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	principal, ok := principalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}

	user, err := h.store.GetUserByID(r.Context(), principal.UserID)
	if err != nil {
		status, code, msg := mapError(err)
		writeError(w, status, code, msg)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

func (h *Handler) handleCourses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListCourses(w, r)
	case http.MethodPost:
		h.handleCreateCourse(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleListCourses(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}

	skip, ok := queryInt(r, "skip", 0)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "skip must be a non-negative integer")
		return
	}
	limit, ok := queryInt(r, "limit", defaultListLimit)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer")
		return
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	courses, err := h.store.ListCourses(r.Context(), principal.UserID, skip, limit)
	if err != nil {
		status, code, msg := mapError(err)
		writeError(w, status, code, msg)
		return
	}
	if courses == nil {
		courses = []models.Course{}
	}

	writeJSON(w, http.StatusOK, courses)
}

func (h *Handler) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}

	var req createCourseRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON payload")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		return
	}

	course, err := h.store.CreateCourse(r.Context(), store.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     principal.UserID,
	})
	if err != nil {
		status, code, msg := mapError(err)
		writeError(w, status, code, msg)
		return
	}

	writeJSON(w, http.StatusCreated, course)
}

func (h *Handler) handleCourseByID(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}

	idRaw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/courses/"), "/")
	if idRaw == "" || strings.Contains(idRaw, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	courseID, err := strconv.ParseInt(idRaw, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "course_not_found", "course not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGetCourse(w, r, courseID, principal)
	case http.MethodPut:
		h.handleUpdateCourse(w, r, courseID, principal)
	case http.MethodDelete:
		h.handleDeleteCourse(w, r, courseID, principal)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleGetCourse(w http.ResponseWriter, r *http.Request, courseID int64, principal auth.Principal) {
	course, err := h.store.GetCourse(r.Context(), courseID, principal.UserID)
	if err != nil {
		status, code, msg := mapError(err)
		writeError(w, status, code, msg)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (h *Handler) handleUpdateCourse(w http.ResponseWriter, r *http.Request, courseID int64, principal auth.Principal) {
	var req updateCourseRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON payload")
		return
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "title must not be empty")
		return
	}

	course, err := h.store.UpdateCourse(r.Context(), store.UpdateCourseInput{
		CourseID:    courseID,
		OwnerID:     principal.UserID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
	})
	if err != nil {
		status, code, msg := mapError(err)
		writeError(w, status, code, msg)
		return
	}

	writeJSON(w, http.StatusOK, course)
}

func (h *Handler) handleDeleteCourse(w http.ResponseWriter, r *http.Request, courseID int64, principal auth.Principal) {
	if err := h.store.DeleteCourse(r.Context(), courseID, principal.UserID); err != nil {
		status, code, msg := mapError(err)
		writeError(w, status, code, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGenerateCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	principal, ok := principalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}

	var req generateCourseRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON payload")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		return
	}

	prompt := generate.BuildPrompt(req.Title, req.Description, req.Prompt)
	content, err := h.generator.Generate(r.Context(), prompt)
	if err != nil {
		writeError(w, http.StatusBadGateway, "generation_failed", "course content generation failed")
		return
	}

	course, err := h.store.CreateCourse(r.Context(), store.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     content,
		OwnerID:     principal.UserID,
	})
	if err != nil {
		status, code, msg := mapError(err)
		writeError(w, status, code, msg)
		return
	}

	writeJSON(w, http.StatusCreated, course)
}

func queryInt(r *http.Request, key string, fallback int) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}

func mapError(err error) (int, string, string) {
	switch {
	case errors.Is(err, store.ErrDuplicateUsername):
		return http.StatusBadRequest, "duplicate_username", "username already registered"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials", "incorrect username or password"
	case errors.Is(err, store.ErrCourseNotFound):
		return http.StatusNotFound, "course_not_found", "course not found"
	case errors.Is(err, store.ErrUserNotFound):
		return http.StatusUnauthorized, "unauthorized", "invalid token"
	default:
		return http.StatusInternalServerError, "internal_error", "internal server error"
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: responseError{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}
