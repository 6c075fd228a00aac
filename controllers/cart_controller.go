package controllers

import (
	"errors"

	"github.com/Wezzer42/littlelemon/pkg/resp"
	"github.com/Wezzer42/littlelemon/services"
	"github.com/Wezzer42/littlelemon/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

type AddToCartReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// GET /api/cart/menu-items
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	lines, subtotal, err := h.Svc.List(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": lines, "subtotal": subtotal})
}

// POST /api/cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req AddToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := h.Svc.Add(uid, req.MenuItemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrUnknownMenuItem):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, line)
}

// DELETE /api/cart/menu-items — ล้างทั้งตะกร้า (ว่างอยู่แล้วก็ 200, count 0)
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	count, err := h.Svc.Clear(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": count})
}
