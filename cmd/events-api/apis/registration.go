package apis

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fstt-events-backend/cmd/events-api/model"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
)

type IRegistrationRepo interface {
	Register(ctx context.Context, eventID, userID uint) (model.Registration, error)
	IsRegistered(ctx context.Context, eventID, userID uint) (bool, error)
	Cancel(ctx context.Context, id uint) error
	ListForUser(ctx context.Context, userID uint) ([]model.Registration, error)
	ListForEvent(ctx context.Context, eventID uint) ([]model.Registration, error)
	History(ctx context.Context, userID uint) ([]model.Registration, error)
}

type RegistrationAPI struct {
	registrationRepo IRegistrationRepo
}

func NewRegistrationAPI(registrationRepo IRegistrationRepo) *RegistrationAPI {
	return &RegistrationAPI{
		registrationRepo: registrationRepo,
	}
}

func (a *RegistrationAPI) Setup(g *echo.Group) {
	g.POST("/events/:id/register", a.register)
	g.GET("/events/:id/registration/:user_id", a.checkRegistration)
	g.GET("/events/:id/registrations", a.listForEvent)
	g.GET("/events/:id/registrations/export", a.exportForEvent)
	g.GET("/users/:id/registrations", a.listForUser)
	g.GET("/users/:id/history", a.history)
	g.DELETE("/registrations/:id", a.cancel)
}

func (a *RegistrationAPI) register(c echo.Context) error {
	ctx := c.Request().Context()

	eventID, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	userID, err := strconv.ParseUint(c.QueryParam("user_id"), 10, 32)
	if err != nil {
		return badRequest(c, "Paramètre user_id invalide")
	}

	registration, err := a.registrationRepo.Register(ctx, eventID, uint(userID))
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.RegistrationCreatedResponse{
			Message:        "Inscription réussie",
			RegistrationID: registration.ID,
		},
	)
}

func (a *RegistrationAPI) checkRegistration(c echo.Context) error {
	ctx := c.Request().Context()

	eventID, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}
	userID, err := idParam(c, "user_id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	registered, err := a.registrationRepo.IsRegistered(ctx, eventID, userID)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, model.RegistrationCheckResponse{IsRegistered: registered})
}

func (a *RegistrationAPI) listForUser(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	registrations, err := a.registrationRepo.ListForUser(ctx, userID)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, userRegistrationViews(registrations))
}

// history mirrors listForUser restricted to finished events.
func (a *RegistrationAPI) history(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	registrations, err := a.registrationRepo.History(ctx, userID)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, userRegistrationViews(registrations))
}

func (a *RegistrationAPI) cancel(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	if err := a.registrationRepo.Cancel(ctx, id); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Inscription annulée"})
}

func (a *RegistrationAPI) listForEvent(c echo.Context) error {
	ctx := c.Request().Context()

	eventID, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	registrations, err := a.registrationRepo.ListForEvent(ctx, eventID)
	if err != nil {
		return jsonError(c, err)
	}

	views := make([]model.EventRegistrationView, 0, len(registrations))
	for _, registration := range registrations {
		view := model.EventRegistrationView{
			RegistrationID: registration.ID,
			RegisteredAt:   registration.RegisteredAt,
		}
		if registration.User != nil {
			view.User = model.UserSummary{
				ID:    registration.User.ID,
				Name:  registration.User.Name,
				Email: registration.User.Email,
			}
		}
		views = append(views, view)
	}
	return c.JSON(http.StatusOK, views)
}

// exportForEvent downloads the roster as CSV for offline check-in lists.
func (a *RegistrationAPI) exportForEvent(c echo.Context) error {
	ctx := c.Request().Context()

	eventID, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	registrations, err := a.registrationRepo.ListForEvent(ctx, eventID)
	if err != nil {
		return jsonError(c, err)
	}

	rows := make([]model.RegistrationCSVRow, 0, len(registrations))
	for _, registration := range registrations {
		row := model.RegistrationCSVRow{
			RegistrationID: registration.ID,
			RegisteredAt:   registration.RegisteredAt.Format(time.RFC3339),
		}
		if registration.User != nil {
			row.Name = registration.User.Name
			row.Email = registration.User.Email
		}
		rows = append(rows, row)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=event_%d_inscriptions.csv", eventID))
	c.Response().WriteHeader(http.StatusOK)

	return gocsv.Marshal(&rows, c.Response())
}

func userRegistrationViews(registrations []model.Registration) []model.UserRegistrationView {
	views := make([]model.UserRegistrationView, 0, len(registrations))
	for _, registration := range registrations {
		view := model.UserRegistrationView{
			RegistrationID: registration.ID,
			RegisteredAt:   registration.RegisteredAt,
		}
		if registration.Event != nil {
			view.Event = model.NewEventSummary(*registration.Event)
		}
		views = append(views, view)
	}
	return views
}
