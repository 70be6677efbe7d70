package middlewares

import (
	"context"
	"encoding/json"
	Config "memoless-api/config"
	"memoless-api/utility"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/logger"
	"memoless-api/utility/response"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// REQUEST_ID_HEADER ... correlation header echoed on every response
const REQUEST_ID_HEADER = "X-Request-ID"

type requestIDKey struct{}

// Middleware ... Middleware struct
type Middleware struct {
	config Config.Data
	next   http.HandlerFunc
}

// NewMiddleware ... Creates a middleware instance
func NewMiddleware(config Config.Data, handler http.HandlerFunc) *Middleware {
	return &Middleware{config, handler}
}

// Build ... Build midlleware functions
func (m *Middleware) Build() http.HandlerFunc {
	return m.next
}

// LogAPIRequests ... Logs every incoming request
func (m *Middleware) LogAPIRequests() *Middleware {
	nextHandler := http.HandlerFunc(func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		start := time.Now()
		logger.Info("Incoming request %s from : %s with IP : %s to : %s %s", RequestID(requestReader.Context()),
			requestReader.UserAgent(), utility.GetIPAdress(requestReader), requestReader.Method, requestReader.URL.Path)
		m.next.ServeHTTP(responseWriter, requestReader)
		logger.Info("Request %s to %s completed in %s", RequestID(requestReader.Context()), requestReader.URL.Path, time.Since(start))
	})

	return &Middleware{m.config, nextHandler}
}

// Timeout ... bounds the request context; collaborator calls made with it are cancelled after duration
func (m *Middleware) Timeout(duration time.Duration) *Middleware {
	nextHandler := http.HandlerFunc(func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		if duration <= 0 {
			m.next.ServeHTTP(responseWriter, requestReader)
			return
		}
		ctx, cancel := context.WithTimeout(requestReader.Context(), duration)
		defer cancel()
		m.next.ServeHTTP(responseWriter, requestReader.WithContext(ctx))
	})

	return &Middleware{m.config, nextHandler}
}

// TagRequest ... reuses the caller's X-Request-ID or assigns a new one, echoing it on the response
func (m *Middleware) TagRequest() *Middleware {
	nextHandler := http.HandlerFunc(func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		requestID := requestReader.Header.Get(REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		responseWriter.Header().Set(REQUEST_ID_HEADER, requestID)
		ctx := context.WithValue(requestReader.Context(), requestIDKey{}, requestID)
		m.next.ServeHTTP(responseWriter, requestReader.WithContext(ctx))
	})

	return &Middleware{m.config, nextHandler}
}

// RateLimit ... rejects requests beyond the token bucket with 429; a nil limiter disables the check
func (m *Middleware) RateLimit(limiter *rate.Limiter) *Middleware {
	nextHandler := http.HandlerFunc(func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		if limiter != nil && !limiter.Allow() {
			logger.Warning("Rate limit exceeded for %s from %s", requestReader.URL.Path, utility.GetIPAdress(requestReader))
			responseWriter.Header().Set("Content-Type", "application/json")
			responseWriter.Header().Set("Retry-After", "1")
			responseWriter.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(responseWriter).Encode(response.New().PlainError(errorcode.RATE_LIMITED, errorcode.RATE_LIMITED_ERR))
			return
		}
		m.next.ServeHTTP(responseWriter, requestReader)
	})

	return &Middleware{m.config, nextHandler}
}

// NewLimiter ... token bucket of perSecond requests with burst; nil when perSecond is not positive
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// RequestID ... id assigned by TagRequest, empty outside a tagged request
func RequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}
