package middleware

import (
	"kanbanpro/pkg/translator"

	"github.com/gin-gonic/gin"
)

// LanguageMiddleware resolves the Accept-Language header to one of the shipped translations.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", translator.Match(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
