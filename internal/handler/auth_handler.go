package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sharegeb/internal/service"
	"sharegeb/internal/session"
	"sharegeb/pkg/apperror"
	"sharegeb/pkg/validator"
)

type AuthHandler struct {
	authService service.AuthService
	credentials service.CredentialService
	sessions    *session.Manager
}

func NewAuthHandler(authService service.AuthService, credentials service.CredentialService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		credentials: credentials,
		sessions:    sessions,
	}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if _, err := h.authService.Register(c.Request.Context(), input); err != nil {
		status := apperror.MapErrorToStatus(err)
		if errors.Is(err, apperror.ErrDuplicateEmail) {
			c.HTML(status, "register.html", gin.H{"error": "Email already registered"})
			return
		}
		c.HTML(status, "register.html", gin.H{"error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "login.html", gin.H{"message": "Registration successful! Please login."})
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	rec, err := h.authService.Login(c.Request.Context(), email, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), rec)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(session.CookieName, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie != "" {
		if rec, err := h.sessions.Resolve(c.Request.Context(), cookie); err == nil {
			_ = h.sessions.Invalidate(c.Request.Context(), rec)
		}
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowForgetPassword(c *gin.Context) {
	c.HTML(http.StatusOK, "forget_password.html", gin.H{})
}

func (h *AuthHandler) ForgetPassword(c *gin.Context) {
	email := c.PostForm("email")

	token, err := h.credentials.IssueResetToken(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, apperror.ErrEmailNotFound) {
			c.HTML(http.StatusNotFound, "forget_password.html", gin.H{"error": "Email not found"})
			return
		}
		c.HTML(http.StatusInternalServerError, "forget_password.html", gin.H{"error": err.Error()})
		return
	}

	// A real deployment would mail the reset link instead.
	c.Redirect(http.StatusFound, "/reset-password/"+token)
}

func (h *AuthHandler) ShowResetPassword(c *gin.Context) {
	token := c.Param("token")

	if err := h.credentials.ValidateResetToken(c.Request.Context(), token); err != nil {
		c.HTML(http.StatusBadRequest, "forget_password.html", gin.H{"error": "Invalid or expired reset link"})
		return
	}

	c.HTML(http.StatusOK, "reset_password.html", gin.H{"token": token})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	if password == "" || password != confirm {
		c.HTML(http.StatusBadRequest, "reset_password.html", gin.H{
			"error": "Passwords do not match",
			"token": token,
		})
		return
	}

	if err := h.credentials.ConsumeResetToken(c.Request.Context(), token, password); err != nil {
		if errors.Is(err, apperror.ErrInvalidResetToken) || errors.Is(err, apperror.ErrResetTokenExpired) {
			c.HTML(http.StatusBadRequest, "forget_password.html", gin.H{"error": "Invalid or expired reset link"})
			return
		}
		c.HTML(http.StatusInternalServerError, "reset_password.html", gin.H{
			"error": err.Error(),
			"token": token,
		})
		return
	}

	c.HTML(http.StatusOK, "login.html", gin.H{"message": "Password reset successful! Please login."})
}
