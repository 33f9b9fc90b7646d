package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"item-catalog/constants"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render draws an HTML template with the one-shot flash messages and the
// viewer's login state merged into the page data. Reading flashes consumes
// them, so the session is saved before writing the response.
func render(ctx *gin.Context, status int, template string, data gin.H) {
	session := sessions.Default(ctx)
	flashes := session.Flashes()
	if err := session.Save(); err != nil {
		ctx.String(http.StatusInternalServerError, "session error")
		return
	}

	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = flashes
	data["login"] = loginInfo(session)
	ctx.HTML(status, template, data)
}

func loginInfo(session sessions.Session) gin.H {
	userID, loggedIn := session.Get(constants.SessionUserID).(uint)
	return gin.H{
		"loggedIn": loggedIn,
		"userID":   userID,
		"username": session.Get(constants.SessionUsername),
		"picture":  session.Get(constants.SessionPicture),
		"provider": session.Get(constants.SessionProvider),
	}
}

// flashRedirect records a one-shot message and sends the browser elsewhere.
// Every handled failure goes through here; raw errors never reach the client.
func flashRedirect(ctx *gin.Context, message string, location string) {
	session := sessions.Default(ctx)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		ctx.String(http.StatusInternalServerError, "session error")
		return
	}
	ctx.Redirect(http.StatusFound, location)
}

func currentUserID(ctx *gin.Context) uint {
	userID, _ := ctx.Get(constants.SessionUserID)
	id, _ := userID.(uint)
	return id
}

func parseID(ctx *gin.Context, param string) (uint, bool) {
	raw := strings.TrimSuffix(ctx.Param(param), ".json")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
