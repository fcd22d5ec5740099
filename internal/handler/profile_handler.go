package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sharegeb/internal/model"
	"sharegeb/internal/repository"
	"sharegeb/internal/service"
	"sharegeb/internal/session"
	"sharegeb/pkg/apperror"
	"sharegeb/pkg/response"
	"sharegeb/pkg/validator"
)

type ProfileHandler struct {
	profileService service.ProfileService
	userRepo       repository.UserRepository
	sessions       *session.Manager
}

func NewProfileHandler(profileService service.ProfileService, userRepo repository.UserRepository, sessions *session.Manager) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		userRepo:       userRepo,
		sessions:       sessions,
	}
}

// Profile renders the profile page from a fresh read of the user row, so
// derived fields (interests list, member rank) reflect current storage
// rather than the login-time snapshot.
func (h *ProfileHandler) Profile(c *gin.Context) {
	rec, ok := session.FromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.userRepo.FindByID(c.Request.Context(), rec.UserID)
	if err != nil {
		// Row is gone; the session no longer points anywhere useful.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = h.sessions.Invalidate(c.Request.Context(), rec)
			c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	avatar := user.Avatar
	if avatar == "" {
		avatar = model.DefaultAvatar
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"user": gin.H{
			"name":        user.FullName,
			"phone":       user.Phone,
			"email":       user.Email,
			"bio":         user.Bio,
			"interests":   user.InterestList(),
			"avatar":      avatar,
			"rating":      user.Rating,
			"member_rank": user.MemberRank(),
		},
	})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	rec, ok := session.FromContext(c)
	if !ok {
		response.Fail(c, apperror.ErrNotLoggedIn)
		return
	}

	var input service.UpdateProfileInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validator.FormatValidationError(err)})
		return
	}

	if err := h.profileService.UpdateProfile(c.Request.Context(), rec, input); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	rec, ok := session.FromContext(c)
	if !ok {
		response.Fail(c, apperror.ErrNotLoggedIn)
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.Fail(c, apperror.ErrNoFileProvided)
		return
	}

	storedName, err := h.profileService.UploadAvatar(c.Request.Context(), rec, fileHeader)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, gin.H{"filename": storedName})
}
