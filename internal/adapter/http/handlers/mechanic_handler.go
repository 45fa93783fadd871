package handlers

import (
	"errors"
	request "mecstock/internal/adapter/http/dto/request"
	response "mecstock/internal/adapter/http/dto/response"
	"mecstock/internal/usecase"
	"mecstock/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidMechanicPayload = pkg.NewDomainErrorSimple("INVALID_MECHANIC_INPUT", "Invalid mechanic payload", http.StatusBadRequest)

// MechanicHandler handles HTTP requests for the mechanic registry.

type MechanicHandler struct {
	usecase usecase.IMechanicUseCase
}

func NewMechanicHandler(uc usecase.IMechanicUseCase) *MechanicHandler {
	return &MechanicHandler{usecase: uc}
}

func (h *MechanicHandler) CreateMechanic(c *gin.Context) {
	var payload request.MechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMechanicPayload.HTTPStatus, errInvalidMechanicPayload.ToHTTPError())
		return
	}

	mechanic, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMechanic(mechanic))
}

func (h *MechanicHandler) GetMechanic(c *gin.Context) {
	mechanic, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanic(mechanic))
}

func (h *MechanicHandler) ListMechanics(c *gin.Context) {
	mechanics, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanics(mechanics))
}

func (h *MechanicHandler) UpdateMechanic(c *gin.Context) {
	var payload request.MechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMechanicPayload.HTTPStatus, errInvalidMechanicPayload.ToHTTPError())
		return
	}

	mechanic, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanic(mechanic))
}

func (h *MechanicHandler) DeleteMechanic(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapMechanicError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMechanic):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("MECHANIC_NOT_FOUND", "Mechanic not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
