package controllers

import (
	"errors"
	"strconv"

	"github.com/Wezzer42/littlelemon/entity"
	"github.com/Wezzer42/littlelemon/pkg/resp"
	"github.com/Wezzer42/littlelemon/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// catalog CRUD — order engine ใช้แค่ราคาผ่าน MenuRepository.PriceOf
type MenuController struct{ Repo *repository.MenuRepository }

func NewMenuController(r *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: r}
}

type MenuItemReq struct {
	Title      string `json:"title" binding:"required"`
	Price      int64  `json:"price" binding:"required,min=0"`
	Featured   bool   `json:"featured"`
	CategoryID uint   `json:"categoryId" binding:"required"`
}

// GET /api/menu-items?category=&featured=&price=&search=&ordering=
func (mc *MenuController) List(c *gin.Context) {
	var f repository.MenuItemFilter
	if v := c.Query("category"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			id := uint(n)
			f.CategoryID = &id
		}
	}
	if v := c.Query("featured"); v != "" {
		b := v == "true" || v == "1"
		f.Featured = &b
	}
	if v := c.Query("price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.Price = &n
		}
	}
	f.Search = c.Query("search")
	f.Ordering = c.Query("ordering")

	items, err := mc.Repo.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/menu-items/:id
func (mc *MenuController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := mc.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /api/menu-items (manager)
func (mc *MenuController) Create(c *gin.Context) {
	var req MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m := entity.MenuItem{
		Title: req.Title, Price: req.Price,
		Featured: req.Featured, CategoryID: req.CategoryID,
	}
	if err := mc.Repo.Create(&m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT/PATCH /api/menu-items/:id (manager)
func (mc *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := mc.Repo.FindByID(uint(id)); err != nil {
		resp.NotFound(c)
		return
	}

	var body struct {
		Title      *string `json:"title"`
		Price      *int64  `json:"price"`
		Featured   *bool   `json:"featured"`
		CategoryID *uint   `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if body.Title != nil {
		fields["title"] = *body.Title
	}
	if body.Price != nil {
		fields["price"] = *body.Price
	}
	if body.Featured != nil {
		fields["featured"] = *body.Featured
	}
	if body.CategoryID != nil {
		fields["category_id"] = *body.CategoryID
	}
	if len(fields) > 0 {
		if err := mc.Repo.Update(uint(id), fields); err != nil {
			resp.ServerError(c, err)
			return
		}
	}

	m, err := mc.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /api/menu-items/:id (manager)
func (mc *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	affected, err := mc.Repo.Delete(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ---------------- Categories ----------------

// GET /api/categories
func (mc *MenuController) Categories(c *gin.Context) {
	cats, err := mc.Repo.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// POST /api/categories (manager)
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var req struct {
		Slug  string `json:"slug" binding:"required"`
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := entity.Category{Slug: req.Slug, Title: req.Title}
	if err := mc.Repo.CreateCategory(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}
