package routes

import (
	"mecstock/internal/adapter/http/handlers"
	"mecstock/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathVehicles  = "/vehicles"
	PathMechanics = "/mechanics"
	PathParts     = "/parts"
	PathAddresses = "/addresses"
)

// addShopRoutes registers the registry endpoints: customers, vehicles,
// mechanics, stock items and the postal code lookup. Deletes require the
// admin role when JWT auth is enabled.
func addShopRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	vehicleHandler *handlers.VehicleHandler,
	mechanicHandler *handlers.MechanicHandler,
	partHandler *handlers.PartHandler,
	addressHandler *handlers.AddressHandler,
) {
	admin := middleware.RequireRole("admin")

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", admin, customerHandler.DeleteCustomer)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", admin, vehicleHandler.DeleteVehicle)
	}

	mechanics := rg.Group(PathMechanics)
	{
		mechanics.POST("", mechanicHandler.CreateMechanic)
		mechanics.GET("", mechanicHandler.ListMechanics)
		mechanics.GET("/:id", mechanicHandler.GetMechanic)
		mechanics.PUT("/:id", mechanicHandler.UpdateMechanic)
		mechanics.DELETE("/:id", admin, mechanicHandler.DeleteMechanic)
	}

	parts := rg.Group(PathParts)
	{
		parts.POST("", partHandler.CreatePart)
		parts.GET("", partHandler.ListParts)
		parts.GET("/:id", partHandler.GetPart)
		parts.PUT("/:id", partHandler.UpdatePart)
		parts.PATCH("/:id/quantity", partHandler.AdjustPartQuantity)
		parts.DELETE("/:id", admin, partHandler.DeletePart)
	}

	addresses := rg.Group(PathAddresses)
	{
		addresses.GET("/cep/:cep", addressHandler.LookupCEP)
	}
}
