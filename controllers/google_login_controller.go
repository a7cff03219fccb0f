package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"meetingbot/services"
)

// GoogleLoginController runs the feature-flagged calendar-owner login.
// With the flag off every route here bounces straight back to the chat
// page without touching the credential store. The user who completes
// the flow becomes the calendar owner; only one owner exists at a time.
type GoogleLoginController struct {
	auth       *services.GoogleAuthService
	allowOwner bool
}

func NewGoogleLoginController(auth *services.GoogleAuthService, allowOwner bool) *GoogleLoginController {
	return &GoogleLoginController{auth: auth, allowOwner: allowOwner}
}

// View is a helper page showing the login link and the redirect URI
// that must be registered in the Google console.
func (gc *GoogleLoginController) View(c *gin.Context) {
	if !gc.allowOwner {
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte("<p>Calendar owner login is disabled. Set ALLOW_CALENDAR_OWNER_LOGIN=true to enable it.</p>"))
		return
	}

	page := fmt.Sprintf(
		"<p><a href=%q>Log in with Google as the calendar owner</a></p><p>Registered redirect URI: %s</p>",
		"/connect/google/execute", gc.auth.RedirectURL())
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// Execute redirects the owner to the Google consent page.
func (gc *GoogleLoginController) Execute(c *gin.Context) {
	if !gc.allowOwner {
		c.Redirect(http.StatusFound, "/chat")
		return
	}
	c.Redirect(http.StatusFound, gc.auth.AuthURL())
}

// Callback is hit by Google after login; it exchanges the code, saves
// the credential and sends the owner back to the chat page.
func (gc *GoogleLoginController) Callback(c *gin.Context) {
	if !gc.allowOwner {
		c.Redirect(http.StatusFound, "/chat")
		return
	}

	code := c.Query("code")
	if err := gc.auth.Authorize(c.Request.Context(), code); err != nil {
		log.Printf("Error authorizing calendar owner: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, "/chat")
}
