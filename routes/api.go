package routes

import (
	"github.com/gofiber/fiber/v2"

	api_handlers "powerdesk.app/handlers/api"
	"powerdesk.app/middlewares"
	"powerdesk.app/services"
)

// registerAPIRoutes defines the /api/v1 surface. Every route sits behind
// the auth-proxy identity middleware.
func registerAPIRoutes(app *fiber.App, reports services.IReportService) {
	templateHandler := api_handlers.NewFormTemplateHandler()
	recordHandler := api_handlers.NewFormRecordHandler()
	lookupHandler := api_handlers.NewLookupHandler()
	customerHandler := api_handlers.NewCustomerHandler()
	engineHandler := api_handlers.NewEngineHandler()
	companyHandler := api_handlers.NewCompanyHandler()
	reportHandler := api_handlers.NewReportHandler(reports)

	v1 := app.Group("/api/v1")
	v1.Use(middlewares.AuthMiddleware)

	// --- Form templates (schema store) ---
	v1.Get("/company-forms", templateHandler.ListTemplates)
	v1.Post("/company-forms", templateHandler.CreateTemplate)
	v1.Get("/company-forms/:id", templateHandler.GetTemplate)
	v1.Put("/company-forms/:id", templateHandler.UpdateTemplate)
	v1.Delete("/company-forms/:id", templateHandler.DeleteTemplate)
	v1.Get("/company-forms/:id/render", templateHandler.GetRenderPlan)

	// --- Submissions ---
	v1.Post("/company-forms/:id/submissions", recordHandler.SubmitRecord)
	v1.Get("/company-forms/:id/submissions", recordHandler.ListRecords)
	v1.Get("/submissions/:id", recordHandler.GetRecord)
	v1.Put("/submissions/:id", recordHandler.UpdateRecord)
	v1.Delete("/submissions/:id", recordHandler.DeleteRecord)
	v1.Get("/submissions/:id/report/:kind", reportHandler.ExportPDF)

	// --- Autocomplete lookups ---
	v1.Get("/lookups/customers", lookupHandler.LookupCustomers)
	v1.Get("/lookups/engines", lookupHandler.LookupEngines)

	// --- Customers ---
	v1.Get("/customers", customerHandler.ListCustomers)
	v1.Post("/customers", customerHandler.CreateCustomer)
	v1.Get("/customers/:id", customerHandler.GetCustomer)
	v1.Put("/customers/:id", customerHandler.UpdateCustomer)
	v1.Delete("/customers/:id", customerHandler.DeleteCustomer)

	// --- Engines ---
	v1.Get("/engines", engineHandler.ListEngines)
	v1.Post("/engines", engineHandler.CreateEngine)
	v1.Get("/engines/:id", engineHandler.GetEngine)
	v1.Put("/engines/:id", engineHandler.UpdateEngine)
	v1.Delete("/engines/:id", engineHandler.DeleteEngine)

	// --- Companies ---
	v1.Get("/companies", companyHandler.ListCompanies)
	v1.Post("/companies", companyHandler.CreateCompany)
	v1.Get("/companies/:id", companyHandler.GetCompany)
	v1.Put("/companies/:id", companyHandler.UpdateCompany)
	v1.Delete("/companies/:id", companyHandler.DeleteCompany)
}
