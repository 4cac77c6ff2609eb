package middleware

import (
	"fmt"
	"io"
	"net/url"

	"github.com/gin-gonic/gin"
)

// AccessLog is gin's request logger with credential-bearing query
// parameters masked. Diary reads carry the password in the query
// string; it must never reach the access log. A nil writer falls back
// to gin.DefaultWriter.
func AccessLog(out io.Writer) gin.HandlerFunc {
	cfg := gin.LoggerConfig{Formatter: accessLogLine}
	if out != nil {
		cfg.Output = out
	}
	return gin.LoggerWithConfig(cfg)
}

func accessLogLine(p gin.LogFormatterParams) string {
	return fmt.Sprintf("[GIN] %s | %3d | %13v | %15s | %-7s %s\n",
		p.TimeStamp.Format("2006/01/02 - 15:04:05"),
		p.StatusCode,
		p.Latency,
		p.ClientIP,
		p.Method,
		redactQuery(p.Path),
	)
}

// redactQuery masks the password parameter in a logged request path.
// p.Path arrives as path plus raw query.
func redactQuery(path string) string {
	u, err := url.Parse(path)
	if err != nil || u.RawQuery == "" {
		return path
	}
	q := u.Query()
	if _, ok := q["password"]; !ok {
		return path
	}
	q.Set("password", "REDACTED")
	u.RawQuery = q.Encode()
	return u.String()
}
