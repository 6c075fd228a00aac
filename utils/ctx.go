package utils

import (
	"github.com/Wezzer42/littlelemon/entity"
	"github.com/gin-gonic/gin"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

// CurrentRole คืน role ที่ middleware resolve ไว้แล้ว (ไม่เคยอ่านจาก token)
func CurrentRole(c *gin.Context) entity.Role {
	if v, ok := c.Get("role"); ok {
		if r, ok := v.(entity.Role); ok {
			return r
		}
	}
	return entity.RoleCustomer
}
