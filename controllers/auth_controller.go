package controllers

import (
	"fmt"
	"net/http"

	"item-catalog/constants"
	"item-catalog/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	ShowLogin(ctx *gin.Context)
	LoggedIn(ctx *gin.Context)
	BeginLogin(ctx *gin.Context)
	Callback(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

var providerTitles = map[string]string{
	"google":   "Google",
	"github":   "GitHub",
	"facebook": "Facebook",
}

func (c *AuthController) ShowLogin(ctx *gin.Context) {
	render(ctx, http.StatusOK, "login.html", nil)
}

func (c *AuthController) LoggedIn(ctx *gin.Context) {
	flashRedirect(ctx, constants.MsgLoggedIn, "/feed")
}

// BeginLogin stores a fresh anti-forgery state in the session and sends the
// browser to the provider's authorize URL.
func (c *AuthController) BeginLogin(ctx *gin.Context) {
	name := ctx.Param("provider")
	if _, ok := c.service.Provider(name); !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}

	state, err := services.GenerateState()
	if err != nil {
		ErrorPage(ctx, http.StatusInternalServerError)
		return
	}

	session := sessions.Default(ctx)
	session.Set(constants.SessionState, state)
	if err := session.Save(); err != nil {
		ErrorPage(ctx, http.StatusInternalServerError)
		return
	}

	authURL, err := c.service.AuthCodeURL(name, state)
	if err != nil {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}
	ctx.Redirect(http.StatusFound, authURL)
}

// Callback finishes the OAuth flow. The session is populated in one shot
// after the exchange, profile fetch, and user upsert all succeed; any
// failure leaves it untouched and lands back on the login page.
func (c *AuthController) Callback(ctx *gin.Context) {
	name := ctx.Param("provider")
	title, ok := providerTitles[name]
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}

	session := sessions.Default(ctx)
	storedState, _ := session.Get(constants.SessionState).(string)
	session.Delete(constants.SessionState)

	if errParam := ctx.Query("error"); errParam != "" || ctx.Query("code") == "" {
		flashRedirect(ctx, fmt.Sprintf("Access denied: reason=%s error=%s",
			errParam, ctx.Query("error_description")), "/login")
		return
	}

	if storedState == "" || ctx.Query("state") != storedState {
		flashRedirect(ctx, fmt.Sprintf("An error occurred while authorizing with %s!", title), "/login")
		return
	}

	identity, user, err := c.service.Authenticate(ctx.Request.Context(), name, ctx.Query("code"))
	if err != nil {
		flashRedirect(ctx, fmt.Sprintf("An error occurred while authorizing with %s!", title), "/login")
		return
	}

	session.Set(constants.SessionUserID, user.ID)
	session.Set(constants.SessionEmail, identity.Email)
	session.Set(constants.SessionUsername, identity.Username)
	session.Set(constants.SessionPicture, identity.Picture)
	session.Set(constants.SessionProvider, identity.Provider)
	session.Set(constants.SessionLink, identity.Link)
	session.Set(constants.SessionToken, identity.Token)
	if err := session.Save(); err != nil {
		ErrorPage(ctx, http.StatusInternalServerError)
		return
	}

	ctx.Redirect(http.StatusFound, "/login/loggedin")
}

// Logout clears the whole session. Without a token there is nothing to
// clear; the user is told so and the session is left alone.
func (c *AuthController) Logout(ctx *gin.Context) {
	session := sessions.Default(ctx)
	if session.Get(constants.SessionToken) == nil {
		flashRedirect(ctx, constants.MsgNotLoggedIn, "/login")
		return
	}

	session.Clear()
	session.AddFlash(constants.MsgLoggedOut)
	if err := session.Save(); err != nil {
		ErrorPage(ctx, http.StatusInternalServerError)
		return
	}
	ctx.Redirect(http.StatusFound, "/login")
}
