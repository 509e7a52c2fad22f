package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type keyLimiter struct {
	lim *rate.Limiter
	ts  time.Time
}

type limiterSet struct {
	mu  sync.Mutex
	m   map[string]*keyLimiter
	r   rate.Limit
	b   int
	ttl time.Duration
}

func (ls *limiterSet) get(key string) *rate.Limiter {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	kl, ok := ls.m[key]
	if ok {
		kl.ts = time.Now()
		return kl.lim
	}
	lim := rate.NewLimiter(ls.r, ls.b)
	ls.m[key] = &keyLimiter{lim: lim, ts: time.Now()}
	return lim
}

func (ls *limiterSet) gc() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		ls.mu.Lock()
		for k, v := range ls.m {
			if now.Sub(v.ts) > ls.ttl {
				delete(ls.m, k)
			}
		}
		ls.mu.Unlock()
	}
}

// RateLimit returns a token-bucket limiter middleware keyed by client IP.
func RateLimit(r rate.Limit, burst int) func(http.Handler) http.Handler {
	ls := &limiterSet{m: make(map[string]*keyLimiter), r: r, b: burst, ttl: 2 * time.Minute}
	go ls.gc()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !ls.get(clientIP(req.RemoteAddr)).Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error": "too many requests"}`))
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

func clientIP(remote string) string {
	host, _, err := net.SplitHostPort(remote)
	if err != nil {
		return remote
	}
	return host
}
