package middlewares

import (
	"net/http"

	"item-catalog/constants"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireLogin gates protected routes on the session's authenticated user
// id. It runs on every request to a guarded route, so mutation endpoints
// reached by direct link are covered, not just form submissions.
func RequireLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session := sessions.Default(ctx)
		userID, ok := session.Get(constants.SessionUserID).(uint)
		if !ok || userID == 0 {
			session.AddFlash(constants.MsgLoginRequired)
			if err := session.Save(); err != nil {
				ctx.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			ctx.Redirect(http.StatusFound, "/login")
			ctx.Abort()
			return
		}

		ctx.Set(constants.SessionUserID, userID)

		ctx.Next()
	}
}
