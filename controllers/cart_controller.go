package controllers

import (
	"errors"
	"strconv"

	"lemonapi/pkg/resp"
	"lemonapi/services"
	"lemonapi/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart/menu-items
func (h *CartController) List(c *gin.Context) {
	p := utils.CurrentPrincipal(c)

	items, subtotal, err := h.Svc.List(p)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "subtotal": subtotal})
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	p := utils.CurrentPrincipal(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := h.Svc.Add(p, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, line)
}

// DELETE /cart/menu-items/:id
func (h *CartController) Remove(c *gin.Context) {
	p := utils.CurrentPrincipal(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.Remove(p, uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "cart item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// DELETE /cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	p := utils.CurrentPrincipal(c)

	if err := h.Svc.Clear(p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
