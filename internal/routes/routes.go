package routes

import (
	"time"

	"cms-api/internal/config"
	"cms-api/internal/database"
	"cms-api/internal/handlers"
	"cms-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
)

func SetupRoutes(app *fiber.App) {
	cfg := config.GetConfig()

	// Static mount for uploaded files
	app.Static("/uploads", cfg.Uploads.Dir)

	// Monitor route
	app.Get("/metrics", monitor.New())

	// Root and health routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CMS API is running",
			"version": "1.0.0",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"service":   "cms-api",
			"timestamp": time.Now().UTC(),
		})
	})

	// API routes group
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Writes require an active administrator
	auth := middleware.New(cfg.Auth.Secret, database.FindUserByEmail)
	admin := auth.AdminOnly()

	// Authentication routes
	authHandler := handlers.NewAuthHandler()
	authGroup := v1.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Institute routes
	instituteHandler := handlers.NewInstituteHandler()
	institute := v1.Group("/institute")
	institute.Get("/about", instituteHandler.ListAbout)
	institute.Post("/about", admin, instituteHandler.CreateAbout)
	institute.Put("/about/:id", admin, instituteHandler.UpdateAbout)
	institute.Delete("/about/:id", admin, instituteHandler.DeleteAbout)
	institute.Get("/management", instituteHandler.ListManagement)
	institute.Post("/management", admin, instituteHandler.CreateManagement)
	institute.Put("/management/:id", admin, instituteHandler.UpdateManagement)
	institute.Delete("/management/:id", admin, instituteHandler.DeleteManagement)
	institute.Get("/structure", instituteHandler.ListStructure)
	institute.Post("/structure", admin, instituteHandler.CreateStructure)
	institute.Put("/structure/:id", admin, instituteHandler.UpdateStructure)
	institute.Delete("/structure/:id", admin, instituteHandler.DeleteStructure)
	institute.Get("/structural-divisions", instituteHandler.ListStructuralDivisions)
	institute.Post("/structural-divisions", admin, instituteHandler.CreateStructuralDivision)
	institute.Put("/structural-divisions/:id", admin, instituteHandler.UpdateStructuralDivision)
	institute.Delete("/structural-divisions/:id", admin, instituteHandler.DeleteStructuralDivision)
	institute.Get("/vacancies", instituteHandler.ListVacancies)
	institute.Post("/vacancies", admin, instituteHandler.CreateVacancy)
	institute.Put("/vacancies/:id", admin, instituteHandler.UpdateVacancy)
	institute.Delete("/vacancies/:id", admin, instituteHandler.DeleteVacancy)
	institute.Post("/upload/image", admin, instituteHandler.UploadImage)
	institute.Post("/upload/document", admin, instituteHandler.UploadDocument)

	// Regulatory routes
	regulatoryHandler := handlers.NewRegulatoryHandler()
	regulatory := v1.Group("/regulatory")
	regulatory.Get("/construction-norms", regulatoryHandler.ListConstructionNorms)
	regulatory.Post("/construction-norms", admin, regulatoryHandler.CreateConstructionNorm)
	regulatory.Put("/construction-norms/:id", admin, regulatoryHandler.UpdateConstructionNorm)
	regulatory.Delete("/construction-norms/:id", admin, regulatoryHandler.DeleteConstructionNorm)
	regulatory.Get("/standards", regulatoryHandler.ListStandards)
	regulatory.Post("/standards", admin, regulatoryHandler.CreateStandard)
	regulatory.Put("/standards/:id", admin, regulatoryHandler.UpdateStandard)
	regulatory.Delete("/standards/:id", admin, regulatoryHandler.DeleteStandard)
	regulatory.Get("/building-regulations", regulatoryHandler.ListBuildingRegulations)
	regulatory.Post("/building-regulations", admin, regulatoryHandler.CreateBuildingRegulation)
	regulatory.Put("/building-regulations/:id", admin, regulatoryHandler.UpdateBuildingRegulation)
	regulatory.Delete("/building-regulations/:id", admin, regulatoryHandler.DeleteBuildingRegulation)
	regulatory.Get("/cost-resource-norms", regulatoryHandler.ListCostResourceNorms)
	regulatory.Post("/cost-resource-norms", admin, regulatoryHandler.CreateCostResourceNorm)
	regulatory.Put("/cost-resource-norms/:id", admin, regulatoryHandler.UpdateCostResourceNorm)
	regulatory.Delete("/cost-resource-norms/:id", admin, regulatoryHandler.DeleteCostResourceNorm)
	regulatory.Get("/technical-regulations", regulatoryHandler.ListTechnicalRegulations)
	regulatory.Post("/technical-regulations", admin, regulatoryHandler.CreateTechnicalRegulation)
	regulatory.Put("/technical-regulations/:id", admin, regulatoryHandler.UpdateTechnicalRegulation)
	regulatory.Delete("/technical-regulations/:id", admin, regulatoryHandler.DeleteTechnicalRegulation)
	regulatory.Get("/references", regulatoryHandler.ListReferences)
	regulatory.Post("/references", admin, regulatoryHandler.CreateReference)
	regulatory.Put("/references/:id", admin, regulatoryHandler.UpdateReference)
	regulatory.Delete("/references/:id", admin, regulatoryHandler.DeleteReference)
	regulatory.Post("/upload/document", admin, regulatoryHandler.UploadDocument)

	// Activities routes
	activitiesHandler := handlers.NewActivitiesHandler()
	activities := v1.Group("/activities")
	activities.Get("/management-systems", activitiesHandler.ListManagementSystems)
	activities.Post("/management-systems", admin, activitiesHandler.CreateManagementSystem)
	activities.Put("/management-systems/:id", admin, activitiesHandler.UpdateManagementSystem)
	activities.Delete("/management-systems/:id", admin, activitiesHandler.DeleteManagementSystem)
	activities.Post("/upload/document", admin, activitiesHandler.UploadDocument)

	// News routes
	newsHandler := handlers.NewNewsHandler()
	news := v1.Group("/news")
	news.Get("/announcements", newsHandler.ListAnnouncements)
	news.Post("/announcements", admin, newsHandler.CreateAnnouncement)
	news.Put("/announcements/:id", admin, newsHandler.UpdateAnnouncement)
	news.Delete("/announcements/:id", admin, newsHandler.DeleteAnnouncement)
	news.Get("/news", newsHandler.ListNews)
	news.Post("/news", admin, newsHandler.CreateNews)
	news.Put("/news/:id", admin, newsHandler.UpdateNews)
	news.Delete("/news/:id", admin, newsHandler.DeleteNews)
	news.Get("/meetings", newsHandler.ListMeetings)
	news.Post("/meetings", admin, newsHandler.CreateMeeting)
	news.Put("/meetings/:id", admin, newsHandler.UpdateMeeting)
	news.Delete("/meetings/:id", admin, newsHandler.DeleteMeeting)
	news.Get("/anti-corruption", newsHandler.ListAntiCorruption)
	news.Post("/anti-corruption", admin, newsHandler.CreateAntiCorruption)
	news.Put("/anti-corruption/:id", admin, newsHandler.UpdateAntiCorruption)
	news.Delete("/anti-corruption/:id", admin, newsHandler.DeleteAntiCorruption)
	news.Post("/upload/image", admin, newsHandler.UploadImage)
	news.Post("/upload/document", admin, newsHandler.UploadDocument)

	// Contact routes
	contactHandler := handlers.NewContactHandler()
	contact := v1.Group("/contact")
	contact.Get("/", contactHandler.ListContacts)
	contact.Post("/", admin, contactHandler.CreateContact)
	contact.Put("/:id", admin, contactHandler.UpdateContact)
	contact.Delete("/:id", admin, contactHandler.DeleteContact)
}
