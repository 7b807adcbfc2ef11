package controllers

import (
	"net/http"
	"strconv"

	"lemonapi/entity"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GET /menu-items
func (ctl *MenuController) List(c *gin.Context) {
	var items []entity.MenuItem
	q := ctl.DB
	if cat := c.Query("category"); cat != "" {
		catID, _ := strconv.Atoi(cat)
		q = q.Where("category_id = ?", uint(catID))
	}
	if err := q.Order("id").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GET /menu-items/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var item entity.MenuItem
	if err := ctl.DB.Preload("Category").First(&item, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

type MenuItemIn struct {
	Title      string `json:"title" binding:"required"`
	Price      int64  `json:"price" binding:"required,min=0"`
	Featured   bool   `json:"featured"`
	CategoryID uint   `json:"categoryId" binding:"required"`
}

// POST /menu-items (manager)
func (ctl *MenuController) Create(c *gin.Context) {
	var req MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := entity.MenuItem{
		Title: req.Title, Price: req.Price,
		Featured: req.Featured, CategoryID: req.CategoryID,
	}
	if err := ctl.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /menu-items/:id (manager)
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{
		"title":       req.Title,
		"price":       req.Price,
		"featured":    req.Featured,
		"category_id": req.CategoryID,
	}
	res := ctl.DB.Model(&entity.MenuItem{}).Where("id = ?", uint(id)).Updates(fields)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// PATCH /menu-items/:id (manager)
func (ctl *MenuController) Patch(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Title      *string `json:"title"`
		Price      *int64  `json:"price"`
		Featured   *bool   `json:"featured"`
		CategoryID *uint   `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if len(fields) == 0 {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	res := ctl.DB.Model(&entity.MenuItem{}).Where("id = ?", uint(id)).Updates(fields)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /menu-items/:id (manager)
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.DB.Delete(&entity.MenuItem{}, uint(id)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}
