package controllers

import (
	"AgendaDental/handlers"
	"AgendaDental/middlewares"
	"AgendaDental/models"

	"github.com/gin-gonic/gin"
)

// APIController registers the /api surface.
type APIController struct {
	Auth        *handlers.AuthHandler
	Patient     *handlers.PatientHandler
	Procedure   *handlers.ProcedureHandler
	Appointment *handlers.AppointmentHandler
	Waitlist    *handlers.WaitlistHandler
	Dashboard   *handlers.DashboardHandler
}

// RegisterRoutes wires the API routes onto the router: public routes first,
// then token-gated routes, then the admin group.
func (ac *APIController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// Public routes: no authentication required
	api.POST("/login", ac.Auth.Login)
	api.POST("/register-patient", ac.Patient.RegisterPatient)
	api.GET("/procedures", ac.Procedure.GetAllProcedures)
	api.POST("/waitlist", ac.Waitlist.JoinWaitlist)
	api.POST("/send-reset-code", ac.Auth.SendResetCode)
	api.POST("/change-password", ac.Auth.ChangePassword)

	// Authenticated routes: any valid token
	authed := api.Group("").Use(middlewares.TokenAuthMiddleware())
	{
		authed.GET("/appointments", ac.Appointment.ListAppointments)
		authed.GET("/my-appointments", ac.Appointment.MyAppointments)
		authed.POST("/appointments", ac.Appointment.CreateAppointment)
	}

	// Admin routes: valid token plus the admin role
	admin := api.Group("").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleAdmin),
	)
	{
		admin.GET("/patients", ac.Patient.GetAllPatients)
		admin.POST("/patients", ac.Patient.CreatePatient)
		admin.PUT("/appointments/:id", ac.Appointment.UpdateAppointment)
		admin.DELETE("/appointments/:id", ac.Appointment.DeleteAppointment)
		admin.GET("/accounts", ac.Auth.GetAccounts)
		admin.GET("/store-info", ac.Dashboard.StoreInfo)
		admin.GET("/dashboard", ac.Dashboard.Dashboard)
	}
}
