// Package apis contains the HTTP handlers. Each API type declares the
// repository interface it needs, gets the implementation injected, and
// registers its routes through Setup.
package apis

import (
	"errors"
	"net/http"
	"strconv"

	"fstt-events-backend/cmd/events-api/model"
	"fstt-events-backend/cmd/events-api/repository"

	"github.com/labstack/echo/v4"
)

// jsonError translates repository sentinels into the status codes and
// French messages the web client expects. Conflicts are 400, not 409,
// for wire compatibility.
func jsonError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	detail := err.Error()

	switch {
	case errors.Is(err, repository.ErrEventNotFound):
		status, detail = http.StatusNotFound, "Événement non trouvé"
	case errors.Is(err, repository.ErrUserNotFound):
		status, detail = http.StatusNotFound, "Utilisateur non trouvé"
	case errors.Is(err, repository.ErrCategoryNotFound):
		status, detail = http.StatusNotFound, "Catégorie non trouvée"
	case errors.Is(err, repository.ErrRegistrationNotFound):
		status, detail = http.StatusNotFound, "Inscription non trouvée"
	case errors.Is(err, repository.ErrCommentNotFound):
		status, detail = http.StatusNotFound, "Commentaire non trouvé"
	case errors.Is(err, repository.ErrEmailTaken):
		status, detail = http.StatusBadRequest, "Email déjà utilisé"
	case errors.Is(err, repository.ErrCategoryNameTaken):
		status, detail = http.StatusBadRequest, "Une catégorie avec ce nom existe déjà"
	case errors.Is(err, repository.ErrAlreadyRegistered):
		status, detail = http.StatusBadRequest, "Déjà inscrit à cet événement"
	case errors.Is(err, repository.ErrInvalidStatus):
		status, detail = http.StatusBadRequest, "Statut invalide"
	}

	return c.JSON(status, model.ErrorResponse{Detail: detail})
}

func badRequest(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{Detail: detail})
}

// idParam parses a positive integer path parameter.
func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
