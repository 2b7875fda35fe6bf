package apis

import (
	"context"
	"errors"
	"net/http"

	"fstt-events-backend/cmd/events-api/digest"
	"fstt-events-backend/cmd/events-api/model"
	"fstt-events-backend/cmd/events-api/repository"

	"github.com/labstack/echo/v4"
)

type IUserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint) (model.User, error)
}

type AuthAPI struct {
	userRepo IUserRepo
	digest   digest.Digest
}

func NewAuthAPI(userRepo IUserRepo, d digest.Digest) *AuthAPI {
	return &AuthAPI{
		userRepo: userRepo,
		digest:   d,
	}
}

func (a *AuthAPI) Setup(g *echo.Group) {
	g.POST("/auth/register", a.register)
	g.POST("/auth/login", a.login)
}

func (a *AuthAPI) register(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Requête invalide")
	}

	// is_admin rides in as an optional query flag, defaulting to a
	// regular account.
	isAdmin := c.QueryParam("is_admin") == "true"

	hash, err := a.digest.Hash(req.Password)
	if err != nil {
		return jsonError(c, err)
	}

	user := model.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordDigest: hash,
		IsAdmin:        isAdmin,
	}
	if err := a.userRepo.Create(ctx, &user); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, model.NewUserView(user))
}

// login verifies credentials and returns the user's public fields. No
// session or token is issued; the caller keeps the identity client-side.
func (a *AuthAPI) login(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.UserLoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Requête invalide")
	}

	user, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
				Detail: "Email ou mot de passe incorrect",
			})
		}
		return jsonError(c, err)
	}

	if !a.digest.Verify(user.PasswordDigest, req.Password) {
		return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
			Detail: "Email ou mot de passe incorrect",
		})
	}

	return c.JSON(
		http.StatusOK,
		model.LoginResponse{
			Message: "Connexion réussie",
			User:    model.NewUserView(user),
		},
	)
}
