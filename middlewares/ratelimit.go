package middlewares

import (
	"fmt"
	"sync"
	"time"

	"github.com/Wezzer42/littlelemon/pkg/resp"
	"github.com/Wezzer42/littlelemon/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// token bucket ต่อ caller ต่อ scope (เทียบ ScopedRateThrottle)
// key = scope + userId (fallback เป็น IP ถ้ายังไม่ login)
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     rate.Limit
	burst   int
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		entries: map[string]*limiterEntry{},
		rps:     rate.Limit(rps),
		burst:   burst,
	}
	// เก็บกวาด bucket ที่ไม่ถูกใช้แล้ว กัน memory โตไม่จำกัด
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			rl.mu.Lock()
			for k, e := range rl.entries {
				if time.Since(e.lastSeen) > 3*time.Minute {
					delete(rl.entries, k)
				}
			}
			rl.mu.Unlock()
		}
	}()
	return rl
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if e, ok := rl.entries[key]; ok {
		e.lastSeen = time.Now()
		return e.limiter
	}
	e := &limiterEntry{limiter: rate.NewLimiter(rl.rps, rl.burst), lastSeen: time.Now()}
	rl.entries[key] = e
	return e.limiter
}

// Scope คืน middleware สำหรับกลุ่ม endpoint หนึ่ง scope
func (rl *RateLimiter) Scope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%d", scope, utils.CurrentUserID(c))
		if utils.CurrentUserID(c) == 0 {
			key = scope + ":" + c.ClientIP()
		}
		if !rl.get(key).Allow() {
			resp.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
