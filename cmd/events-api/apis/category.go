package apis

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"fstt-events-backend/cmd/events-api/model"
	"fstt-events-backend/cmd/events-api/repository"

	"github.com/labstack/echo/v4"
)

type ICategoryRepo interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, id uint, name string) (model.Category, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type CategoryAPI struct {
	categoryRepo ICategoryRepo
}

func NewCategoryAPI(categoryRepo ICategoryRepo) *CategoryAPI {
	return &CategoryAPI{
		categoryRepo: categoryRepo,
	}
}

func (a *CategoryAPI) Setup(g *echo.Group) {
	g.GET("/categories", a.listCategories)
	g.POST("/categories", a.createCategory)
	g.PUT("/categories/:id", a.updateCategory)
	g.DELETE("/categories/:id", a.deleteCategory)
}

func (a *CategoryAPI) listCategories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := a.categoryRepo.List(ctx)
	if err != nil {
		return jsonError(c, err)
	}

	views := make([]model.CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, model.NewCategoryView(category))
	}
	return c.JSON(http.StatusOK, views)
}

func (a *CategoryAPI) createCategory(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.CategoryCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Requête invalide")
	}

	category := model.Category{Name: req.Name}
	if err := a.categoryRepo.Create(ctx, &category); err != nil {
		// Create has its own historical message, distinct from the
		// rename collision one.
		if errors.Is(err, repository.ErrCategoryNameTaken) {
			return badRequest(c, "Cette catégorie existe déjà")
		}
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, model.NewCategoryView(category))
}

func (a *CategoryAPI) updateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	var req model.CategoryCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Requête invalide")
	}

	category, err := a.categoryRepo.Update(ctx, id, req.Name)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, model.NewCategoryView(category))
}

func (a *CategoryAPI) deleteCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	blocking, err := a.categoryRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryInUse) {
			return badRequest(c, fmt.Sprintf(
				"Impossible de supprimer: %d événement(s) utilisent cette catégorie", blocking))
		}
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Catégorie supprimée"})
}
