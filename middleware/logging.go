package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sixbank/contractlibs/utils"
)

// LoggingMiddleware logs one line per request to the standard logger.
func LoggingMiddleware() gin.HandlerFunc {
	return LoggingMiddlewareWithLogger(log.Default())
}

// LoggingMiddlewareWithLogger is LoggingMiddleware writing to logger.
// Account numbers in the path are masked before they are logged.
func LoggingMiddlewareWithLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if accountNumber := c.Param("accountNumber"); accountNumber != "" {
			path = strings.ReplaceAll(path, accountNumber, utils.MaskAccountNumber(accountNumber))
		}
		logger.Printf("%s %s %d %s", c.Request.Method, MaskPath(path), c.Writer.Status(), time.Since(start))
	}
}

// MaskPath masks every path segment that ends in a full account number body.
func MaskPath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if looksLikeAccountNumber(seg) {
			segments[i] = utils.MaskAccountNumber(seg)
		}
	}
	return strings.Join(segments, "/")
}

func looksLikeAccountNumber(seg string) bool {
	if len(seg) < utils.NumericBodyLength {
		return false
	}
	_, ok := utils.ExtractNumericPart(seg, seg[:len(seg)-utils.NumericBodyLength])
	return ok
}
