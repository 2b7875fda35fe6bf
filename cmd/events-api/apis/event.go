package apis

import (
	"context"
	"net/http"

	"fstt-events-backend/cmd/events-api/model"

	"github.com/labstack/echo/v4"
)

type IEventRepo interface {
	List(ctx context.Context) ([]model.Event, error)
	GetByID(ctx context.Context, id uint) (model.Event, error)
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, id uint, req model.EventCreateRequest) (model.Event, error)
	UpdateStatus(ctx context.Context, id uint, status model.EventStatus) error
	Delete(ctx context.Context, id uint) error
}

// IRegistrationCounter is the slice of the registration repository the
// event views need for their denormalized counts.
type IRegistrationCounter interface {
	CountByEvent(ctx context.Context) (map[uint]int64, error)
	CountForEvent(ctx context.Context, eventID uint) (int64, error)
}

type EventAPI struct {
	eventRepo IEventRepo
	counter   IRegistrationCounter
}

func NewEventAPI(eventRepo IEventRepo, counter IRegistrationCounter) *EventAPI {
	return &EventAPI{
		eventRepo: eventRepo,
		counter:   counter,
	}
}

func (a *EventAPI) Setup(g *echo.Group) {
	g.GET("/events", a.listEvents)
	g.POST("/events", a.createEvent)
	g.PUT("/events/:id", a.updateEvent)
	g.DELETE("/events/:id", a.deleteEvent)
	g.PATCH("/events/:id/status", a.updateEventStatus)
}

func (a *EventAPI) listEvents(c echo.Context) error {
	ctx := c.Request().Context()

	events, err := a.eventRepo.List(ctx)
	if err != nil {
		return jsonError(c, err)
	}

	counts, err := a.counter.CountByEvent(ctx)
	if err != nil {
		return jsonError(c, err)
	}

	views := make([]model.EventView, 0, len(events))
	for _, event := range events {
		views = append(views, model.NewEventView(event, counts[event.ID]))
	}
	return c.JSON(http.StatusOK, views)
}

func (a *EventAPI) createEvent(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.EventCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Requête invalide")
	}

	event := model.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		CategoryID:  req.CategoryID,
	}
	if err := a.eventRepo.Create(ctx, &event); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, model.NewEventView(event, 0))
}

func (a *EventAPI) updateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	var req model.EventCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Requête invalide")
	}

	event, err := a.eventRepo.Update(ctx, id, req)
	if err != nil {
		return jsonError(c, err)
	}

	count, err := a.counter.CountForEvent(ctx, id)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, model.NewEventView(event, count))
}

func (a *EventAPI) deleteEvent(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	if err := a.eventRepo.Delete(ctx, id); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Événement supprimé"})
}

func (a *EventAPI) updateEventStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	var req model.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Requête invalide")
	}

	if err := a.eventRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.StatusUpdateResponse{
			Message: "Statut mis à jour",
			Status:  req.Status,
		},
	)
}
