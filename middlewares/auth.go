package middlewares

import (
	"fmt"
	"strings"

	"github.com/Wezzer42/littlelemon/entity"
	"github.com/Wezzer42/littlelemon/pkg/resp"
	"github.com/Wezzer42/littlelemon/services"
	"github.com/Wezzer42/littlelemon/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ตรวจ Bearer token → ใส่ userId ลง context
// role ไม่ได้อยู่ใน token (membership เปลี่ยนได้) ดู ResolveRole ด้านล่าง
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || claims.UserID == 0 {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Next()
	}
}

// resolve role หนึ่งครั้งต่อ request แล้วส่งต่อเป็นค่า explicit ใน context
func ResolveRole(resolver *services.RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := utils.CurrentUserID(c)
		if uid == 0 {
			resp.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}
		role, err := resolver.Resolve(uid)
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}
		c.Set("role", role)
		c.Next()
	}
}

// บังคับ role สำหรับ endpoint ที่ gate ทั้งเส้นทาง (เช่น group management)
func RequireRole(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := utils.CurrentRole(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		resp.Forbidden(c, "forbidden")
		c.Abort()
	}
}
