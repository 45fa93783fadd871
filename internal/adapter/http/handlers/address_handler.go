package handlers

import (
	"errors"
	response "mecstock/internal/adapter/http/dto/response"
	"mecstock/internal/usecase"
	"mecstock/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddressHandler handles postal code lookups.

type AddressHandler struct {
	usecase usecase.IAddressUseCase
}

func NewAddressHandler(uc usecase.IAddressUseCase) *AddressHandler {
	return &AddressHandler{usecase: uc}
}

// LookupCEP resolves a Brazilian postal code into an address.
func (h *AddressHandler) LookupCEP(c *gin.Context) {
	address, err := h.usecase.LookupCEP(c.Request.Context(), c.Param("cep"))
	if err != nil {
		appErr := mapAddressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAddress(address))
}

func mapAddressError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCEP):
		return pkg.NewDomainErrorSimple("INVALID_CEP", "CEP must be 8 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCEPNotFound):
		return pkg.NewDomainErrorSimple("CEP_NOT_FOUND", "CEP not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
