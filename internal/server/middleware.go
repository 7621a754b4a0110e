package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// untrackedPrefixes are asset paths not worth a log line per hit.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/videos/",
	"/files/",
	"/favicon",
	"/health",
}

// ipHasher hashes client addresses with a per-process salt so request
// logs never carry a raw IP.
type ipHasher struct {
	salt string
}

func newIPHasher() (*ipHasher, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return &ipHasher{salt: hex.EncodeToString(b)}, nil
}

func (h *ipHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// requestLogger logs page requests. Asset paths are skipped and requests
// sent with DNT: 1 are logged without their user agent.
func requestLogger(log *zap.Logger, hasher *ipHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", hasher.hash(c.ClientIP())),
			zap.Bool("htmx", c.GetHeader("HX-Request") == "true"),
		}
		if c.GetHeader("DNT") != "1" {
			fields = append(fields, zap.String("user_agent", c.Request.UserAgent()))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= 500 {
			log.Error("request", fields...)
			return
		}
		log.Info("request", fields...)
	}
}

// recovery turns a panic in a handler into a 500 and an error log.
func recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Error("panic serving request", zap.String("path", c.Request.URL.Path), zap.Any("panic", err))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
