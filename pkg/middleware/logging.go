package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger логирует вход, выход и длительность обработки каждого запроса
func RequestLogger() gin.HandlerFunc {
	logger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)

	return func(c *gin.Context) {
		start := time.Now()
		logger.Printf("Enter: %s %s", c.Request.Method, c.Request.URL.Path)

		c.Next()

		logger.Printf("Exit: %s %s -> %d за %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
