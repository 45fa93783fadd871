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

var errInvalidPartPayload = pkg.NewDomainErrorSimple("INVALID_PART_INPUT", "Invalid stock item payload", http.StatusBadRequest)

// PartHandler handles HTTP requests for the stock module.

type PartHandler struct {
	usecase usecase.IPartUseCase
}

func NewPartHandler(uc usecase.IPartUseCase) *PartHandler {
	return &PartHandler{usecase: uc}
}

func (h *PartHandler) CreatePart(c *gin.Context) {
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPartPayload.HTTPStatus, errInvalidPartPayload.ToHTTPError())
		return
	}

	part, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPart(part))
}

func (h *PartHandler) GetPart(c *gin.Context) {
	part, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPart(part))
}

func (h *PartHandler) ListParts(c *gin.Context) {
	parts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromParts(parts))
}

func (h *PartHandler) UpdatePart(c *gin.Context) {
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPartPayload.HTTPStatus, errInvalidPartPayload.ToHTTPError())
		return
	}

	part, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPart(part))
}

// AdjustPartQuantity applies a signed stock delta: negative consumes,
// positive restocks.
func (h *PartHandler) AdjustPartQuantity(c *gin.Context) {
	var payload request.QuantityAdjustRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPartPayload.HTTPStatus, errInvalidPartPayload.ToHTTPError())
		return
	}

	part, err := h.usecase.AdjustQuantity(c.Request.Context(), c.Param("id"), payload.Delta)
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPart(part))
}

func (h *PartHandler) DeletePart(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPart), errors.Is(err, usecase.ErrInvalidStockDelta):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough stock for this adjustment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Stock item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
