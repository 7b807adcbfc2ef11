package controllers

import (
	"errors"
	"strconv"

	"lemonapi/pkg/resp"
	"lemonapi/services"
	"lemonapi/utils"

	"github.com/gin-gonic/gin"
)

// GroupController exposes Manager / Delivery crew membership admin.
// The group name is fixed per route group, never client-chosen.
type GroupController struct {
	Svc       *services.GroupService
	GroupName string
}

func NewGroupController(svc *services.GroupService, groupName string) *GroupController {
	return &GroupController{Svc: svc, GroupName: groupName}
}

func handleGroupErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /groups/<group>/users
func (gc *GroupController) List(c *gin.Context) {
	p := utils.CurrentPrincipal(c)

	users, err := gc.Svc.Members(p, gc.GroupName)
	if err != nil {
		handleGroupErr(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{"id": u.ID, "username": u.Username, "email": u.Email})
	}
	resp.OK(c, gin.H{"users": out})
}

// POST /groups/<group>/users
func (gc *GroupController) Add(c *gin.Context) {
	p := utils.CurrentPrincipal(c)

	var req struct {
		UserID uint `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := gc.Svc.Assign(p, gc.GroupName, req.UserID); err != nil {
		handleGroupErr(c, err)
		return
	}
	resp.Created(c, gin.H{"userId": req.UserID, "group": gc.GroupName})
}

// PUT /groups/<group>/users/:id — idempotent assign
func (gc *GroupController) Put(c *gin.Context) {
	p := utils.CurrentPrincipal(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := gc.Svc.Assign(p, gc.GroupName, uint(id)); err != nil {
		handleGroupErr(c, err)
		return
	}
	resp.OK(c, gin.H{"userId": uint(id), "group": gc.GroupName})
}

// DELETE /groups/<group>/users/:id
func (gc *GroupController) Remove(c *gin.Context) {
	p := utils.CurrentPrincipal(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := gc.Svc.Remove(p, gc.GroupName, uint(id)); err != nil {
		handleGroupErr(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}
