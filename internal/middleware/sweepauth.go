package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

// SweepAuth закрывает ручной запуск свипера общим секретом.
// Сравнение за константное время.
func SweepAuth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "sweep endpoint disabled"},
			)
			return
		}

		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "unauthorized"},
			)
			return
		}

		c.Next()
	}
}
