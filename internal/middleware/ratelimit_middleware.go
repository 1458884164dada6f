package middleware

import (
	"sync"
	"time"
)

const maxTrackedIPs = 4096

// FailedAuthLimiter throttles clients that keep presenting bad admin tokens.
type FailedAuthLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	attempts map[string]*attemptInfo
	now      func() time.Time
}

type attemptInfo struct {
	count   int
	firstAt time.Time
}

// NewFailedAuthLimiter allows limit failures per window for each IP.
func NewFailedAuthLimiter(limit int, window time.Duration) *FailedAuthLimiter {
	return &FailedAuthLimiter{
		limit:    limit,
		window:   window,
		attempts: make(map[string]*attemptInfo),
		now:      time.Now,
	}
}

// Blocked reports whether ip has used up its failures for the current window.
func (r *FailedAuthLimiter) Blocked(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.attempts[ip]
	if !ok {
		return false
	}
	if r.now().Sub(info.firstAt) > r.window {
		delete(r.attempts, ip)
		return false
	}
	return info.count >= r.limit
}

// Fail records one failed attempt from ip.
func (r *FailedAuthLimiter) Fail(ip string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if len(r.attempts) >= maxTrackedIPs {
		r.sweep(now)
	}
	info, ok := r.attempts[ip]
	if !ok || now.Sub(info.firstAt) > r.window {
		r.attempts[ip] = &attemptInfo{count: 1, firstAt: now}
		return
	}
	info.count++
}

func (r *FailedAuthLimiter) sweep(now time.Time) {
	for ip, info := range r.attempts {
		if now.Sub(info.firstAt) > r.window {
			delete(r.attempts, ip)
		}
	}
}
