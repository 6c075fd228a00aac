package controllers

import (
	"errors"
	"strconv"

	"github.com/Wezzer42/littlelemon/pkg/resp"
	"github.com/Wezzer42/littlelemon/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// จัดการสมาชิก group Manager / Delivery crew (manager เท่านั้น ถูก gate ที่ routes)
type GroupController struct{ Users *repository.UserRepository }

func NewGroupController(r *repository.UserRepository) *GroupController {
	return &GroupController{Users: r}
}

// GET /api/groups/{manager|delivery-crew}/users
func (g *GroupController) List(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := g.Users.ListGroupMembers(groupName)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"users": users})
	}
}

// POST /api/groups/{manager|delivery-crew}/users  { "userId": <id> }
func (g *GroupController) Add(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			UserID uint `json:"userId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			resp.BadRequest(c, "userId is required")
			return
		}
		if err := g.Users.AddToGroup(body.UserID, groupName); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				resp.NotFound(c)
				return
			}
			resp.ServerError(c, err)
			return
		}
		resp.Created(c, gin.H{"userId": body.UserID, "group": groupName})
	}
}

// DELETE /api/groups/{manager|delivery-crew}/users/:userId
func (g *GroupController) Remove(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("userId"))
		if err != nil {
			resp.BadRequest(c, "invalid user id")
			return
		}
		removed, err := g.Users.RemoveFromGroup(uint(id), groupName)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if !removed {
			resp.NotFound(c)
			return
		}
		resp.OK(c, gin.H{"userId": id, "group": groupName})
	}
}
