package controllers

import (
	"errors"
	"strconv"

	"lemonapi/pkg/resp"
	"lemonapi/services"
	"lemonapi/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

func handleOrderErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "order not found")
	default:
		resp.ServerError(c, err)
	}
}

// POST /orders — checkout of the caller's cart
func (oc *OrderController) Place(c *gin.Context) {
	p := utils.CurrentPrincipal(c)

	out, err := oc.Svc.PlaceOrder(p)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders — role-filtered listing
func (oc *OrderController) List(c *gin.Context) {
	p := utils.CurrentPrincipal(c)

	orders, err := oc.Svc.List(p)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id — owner only
func (oc *OrderController) Detail(c *gin.Context) {
	p := utils.CurrentPrincipal(c)
	id, _ := strconv.Atoi(c.Param("id"))

	o, err := oc.Svc.Get(p, uint(id))
	if err != nil {
		handleOrderErr(c, err)
		return
	}
	resp.OK(c, o)
}

// PUT /orders/:id — manager only
func (oc *OrderController) Update(c *gin.Context) {
	p := utils.CurrentPrincipal(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Svc.Update(p, uint(id), &req); err != nil {
		if errors.Is(err, services.ErrForbidden) || errors.Is(err, services.ErrNotFound) {
			handleOrderErr(c, err)
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// PATCH /orders/:id — manager or delivery crew
func (oc *OrderController) Patch(c *gin.Context) {
	p := utils.CurrentPrincipal(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Svc.PartialUpdate(p, uint(id), &req); err != nil {
		handleOrderErr(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /orders/:id — manager only
func (oc *OrderController) Delete(c *gin.Context) {
	p := utils.CurrentPrincipal(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := oc.Svc.Delete(p, uint(id)); err != nil {
		handleOrderErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
