package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"account-service/internal/api/httpx"
	"account-service/internal/api/validate"
	"account-service/internal/config"
	"account-service/internal/metrics"
	"account-service/internal/middleware"
	"account-service/internal/services"
)

type userInfoReq struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	NewUsername string `json:"newUsername"`
	Age         *int   `json:"age"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

func NewRouter(cfg config.Config, as *services.AccountService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", func(w http.ResponseWriter, r *http.Request) {
			var req struct{ Username, Password string }
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			if err := validate.Credentials(req.Username, req.Password); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			u, err := as.Register(r.Context(), req.Username, req.Password)
			if err != nil {
				httpx.WriteError(w, authStatus(err), errMessage(err))
				return
			}
			metrics.RegistrationsTotal.Inc()
			httpx.WriteUser(w, http.StatusOK, "user registered", map[string]any{"username": u.Username})
		})

		r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
			var req struct{ Username, Password string }
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			u, err := as.Login(r.Context(), req.Username, req.Password)
			if err != nil {
				metrics.LoginsTotal.WithLabelValues("failure").Inc()
				httpx.WriteError(w, authStatus(err), errMessage(err))
				return
			}
			metrics.LoginsTotal.WithLabelValues("success").Inc()
			httpx.WriteUser(w, http.StatusOK, "login successful", map[string]any{
				"id":       u.ID,
				"username": u.Username,
			})
		})
	})

	r.Route("/my", func(r chi.Router) {
		r.Get("/userInfo", func(w http.ResponseWriter, r *http.Request) {
			req, err := decodeUserInfo(r)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			p, err := as.GetProfile(r.Context(), req.Username, req.Password)
			if err != nil {
				httpx.WriteError(w, profileStatus(err), errMessage(err))
				return
			}
			httpx.WriteData(w, http.StatusOK, "profile fetched", p)
		})

		r.Post("/userInfo", func(w http.ResponseWriter, r *http.Request) {
			req, err := decodeUserInfo(r)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			if req.NewUsername != "" {
				if ef := validate.Username(req.NewUsername); ef != nil {
					httpx.WriteError(w, http.StatusBadRequest, validate.Errs{*ef}.Error())
					return
				}
			}
			p, err := as.UpdateProfile(r.Context(), req.Username, req.Password, services.ProfileUpdate{
				Username: req.NewUsername,
				Age:      req.Age,
				Phone:    req.Phone,
				Email:    req.Email,
			})
			if err != nil {
				httpx.WriteError(w, profileStatus(err), errMessage(err))
				return
			}
			metrics.ProfileUpdatesTotal.Inc()
			httpx.WriteData(w, http.StatusOK, "profile updated", p)
		})
	})

	return r
}

// decodeUserInfo reads credentials (and optional update fields) from the JSON
// body; GET requests without a body may pass credentials as query params.
func decodeUserInfo(r *http.Request) (userInfoReq, error) {
	var req userInfoReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	if req.Username == "" && r.Method == http.MethodGet {
		q := r.URL.Query()
		req.Username = q.Get("username")
		req.Password = q.Get("password")
	}
	return req, nil
}

// authStatus maps service errors for the register/login endpoints.
func authStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrStoreUnavailable):
		return http.StatusInternalServerError
	default: // invalid input, invalid credentials, username taken
		return http.StatusBadRequest
	}
}

// profileStatus maps service errors for the profile endpoints, where any
// credential failure is a 401.
func profileStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidInput):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUsernameTaken):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return "username and password are required"
	case errors.Is(err, services.ErrInvalidCredentials):
		return "invalid username or password"
	case errors.Is(err, services.ErrUserNotFound):
		return "user does not exist"
	case errors.Is(err, services.ErrUsernameTaken):
		return "username already exists"
	default:
		return "service temporarily unavailable"
	}
}
