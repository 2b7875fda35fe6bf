package apis

import (
	"context"
	"net/http"

	"fstt-events-backend/cmd/events-api/model"

	"github.com/labstack/echo/v4"
)

type ICommentRepo interface {
	Create(ctx context.Context, eventID, userID uint, content string) (model.Comment, error)
	ListForEvent(ctx context.Context, eventID uint) ([]model.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type CommentAPI struct {
	commentRepo ICommentRepo
}

func NewCommentAPI(commentRepo ICommentRepo) *CommentAPI {
	return &CommentAPI{
		commentRepo: commentRepo,
	}
}

func (a *CommentAPI) Setup(g *echo.Group) {
	g.POST("/events/:id/comments", a.createComment)
	g.GET("/events/:id/comments", a.listComments)
	g.DELETE("/comments/:id", a.deleteComment)
}

func (a *CommentAPI) createComment(c echo.Context) error {
	ctx := c.Request().Context()

	eventID, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	var req model.CommentCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Requête invalide")
	}

	comment, err := a.commentRepo.Create(ctx, eventID, req.UserID, req.Content)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, commentView(comment))
}

func (a *CommentAPI) listComments(c echo.Context) error {
	ctx := c.Request().Context()

	eventID, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	comments, err := a.commentRepo.ListForEvent(ctx, eventID)
	if err != nil {
		return jsonError(c, err)
	}

	views := make([]model.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, commentView(comment))
	}
	return c.JSON(http.StatusOK, views)
}

func (a *CommentAPI) deleteComment(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return badRequest(c, "Identifiant invalide")
	}

	if err := a.commentRepo.Delete(ctx, id); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Commentaire supprimé"})
}

func commentView(comment model.Comment) model.CommentView {
	view := model.CommentView{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	if comment.User != nil {
		view.User = model.CommentAuthor{ID: comment.User.ID, Name: comment.User.Name}
	}
	return view
}
