package auth

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// LoginConfig holds the doctor-portal credentials and token parameters.
// PasswordHash is a bcrypt hash; the plaintext is never stored.
type LoginConfig struct {
	Username     string
	PasswordHash string
	Secret       []byte
	TokenTTL     time.Duration
}

// LoginHandler exchanges portal credentials for a bearer token.
type LoginHandler struct {
	cfg    LoginConfig
	logger zerolog.Logger
}

func NewLoginHandler(cfg LoginConfig, logger zerolog.Logger) *LoginHandler {
	return &LoginHandler{cfg: cfg, logger: logger}
}

func (h *LoginHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

func (h *LoginHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.Username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(h.cfg.PasswordHash), []byte(req.Password)) == nil
	if !userOK || !passOK {
		h.logger.Warn().Str("username", req.Username).Msg("failed login attempt")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := IssueToken(h.cfg.Secret, req.Username, []string{"doctor"}, h.cfg.TokenTTL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "token generation failed")
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		ExpiresIn: int(h.cfg.TokenTTL.Seconds()),
	})
}
