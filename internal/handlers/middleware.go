package handlers

import (
	"net/http"
	"strings"

	"petSocial/internal/errs"
	"petSocial/internal/models"
	"petSocial/internal/msgs"
	"petSocial/internal/utils"

	"github.com/gin-gonic/gin"
)

func MustAuthenticateMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		jwtToken := ctx.GetHeader("Authorization")
		if jwtToken != "" && strings.Contains(jwtToken, "Bearer") {
			jwtToken = strings.Replace(jwtToken, "Bearer ", "", 1)
		}

		if jwtToken == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  models.ErrorMessages([]error{errs.ErrUnauthorized}),
			})
			return
		}

		claims, err := utils.VerifyToken(jwtToken, utils.GetJwtKey())
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  models.ErrorMessages([]error{errs.ErrUnauthorized}),
			})
			return
		}

		ctx.Set("user_id", claims.ID)
		ctx.Set("user_email", claims.Email)
		ctx.Set("authenticated", true)
		ctx.Next()
	}
}
