package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sixbank/contractlibs/utils"
)

// RequireAccountNumberParam rejects requests whose :accountNumber route
// parameter is not a valid account number for prefix.
func RequireAccountNumberParam(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.IsValidAccountNumber(c.Param("accountNumber"), prefix) {
			RespondWithError(c, http.StatusBadRequest, "Invalid account number")
			c.Abort()
			return
		}
		c.Next()
	}
}
