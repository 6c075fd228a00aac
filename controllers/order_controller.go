package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Wezzer42/littlelemon/pkg/resp"
	"github.com/Wezzer42/littlelemon/repository"
	"github.com/Wezzer42/littlelemon/services"
	"github.com/Wezzer42/littlelemon/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// map sentinel → status เดียวเสมอ ห้ามรั่วว่า "มีอยู่แต่มองไม่เห็น"
func writeOrderErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbiddenRole):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c)
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrMissingField),
		errors.Is(err, services.ErrPartialUpdateRequired),
		errors.Is(err, services.ErrUnknownUser):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /api/orders?ordering=-date&status=&user=&delivery_crew=
func (oc *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	f := repository.OrderFilter{Ordering: c.Query("ordering")}
	if v := c.Query("status"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Status = &n
		}
	}
	if v := c.Query("user"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			id := uint(n)
			f.UserID = &id
		}
	}
	if v := c.Query("delivery_crew"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			id := uint(n)
			f.DeliveryCrew = &id
		}
	}

	orders, err := oc.Svc.List(uid, role, f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// POST /api/orders — checkout ตะกร้าของ caller (customer เท่านั้น)
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	var req services.CheckoutReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
	}

	order, err := oc.Svc.Checkout(uid, role, &req)
	if err != nil {
		writeOrderErr(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := oc.Svc.Detail(uid, role, uint(id))
	if err != nil {
		writeOrderErr(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT/PATCH /api/orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	partial := c.Request.Method == http.MethodPatch
	order, err := oc.Svc.Update(uid, role, uint(id), &req, partial)
	if err != nil {
		writeOrderErr(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /api/orders/:id — manager เท่านั้น
func (oc *OrderController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := oc.Svc.Delete(uid, role, uint(id)); err != nil {
		writeOrderErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
