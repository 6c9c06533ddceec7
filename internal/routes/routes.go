package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/gabrielbarbershop/booking-api/internal/audit"
	"github.com/gabrielbarbershop/booking-api/internal/cart"
	"github.com/gabrielbarbershop/booking-api/internal/config"
	domainschedule "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/handlers"
	infraRepo "github.com/gabrielbarbershop/booking-api/internal/infra/repository"
	"github.com/gabrielbarbershop/booking-api/internal/middleware"
	"github.com/gabrielbarbershop/booking-api/internal/notify"
	"github.com/gabrielbarbershop/booking-api/internal/storage"
	ucorder "github.com/gabrielbarbershop/booking-api/internal/usecase/order"
	ucschedule "github.com/gabrielbarbershop/booking-api/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	notifier *notify.Service,
	cfg *config.Config,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	orderRepo := infraRepo.NewOrderGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	cartStore := cart.NewStore(rdb)

	imageStore := storage.New(storage.Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		PublicURL: cfg.S3PublicURL,
	})

	hours := domainschedule.DefaultBusinessHours()

	// ======================================================
	// 🧠 USE CASES — AGENDA
	// ======================================================
	getAvailabilityUC := ucschedule.NewGetAvailability(scheduleRepo, hours)

	createAppointmentUC := ucschedule.NewCreateAppointment(
		scheduleRepo,
		hours,
		auditDispatcher,
		notifier,
		cfg.ShopTimezone,
	)

	cancelAppointmentUC := ucschedule.NewCancelAppointment(
		scheduleRepo,
		auditDispatcher,
		cfg.ShopTimezone,
	)

	completeAppointmentUC := ucschedule.NewCompleteAppointment(
		scheduleRepo,
		auditDispatcher,
		cfg.ShopTimezone,
	)

	listByDateUC := ucschedule.NewListAppointmentsByDate(scheduleRepo, cfg.ShopTimezone)
	listByMonthUC := ucschedule.NewListAppointmentsByMonth(scheduleRepo, cfg.ShopTimezone)
	listByClientUC := ucschedule.NewListAppointmentsByClient(scheduleRepo)

	saveDayUC := ucschedule.NewSaveDaySlots(scheduleRepo, hours, auditDispatcher)
	setSlotUC := ucschedule.NewSetSlotAvailability(scheduleRepo, auditDispatcher)

	// ======================================================
	// 🧠 USE CASES — LOJA
	// ======================================================
	placeOrderUC := ucorder.NewPlaceOrder(orderRepo, cartStore, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)

	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC, cfg.ShopTimezone)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listByDateUC,
		listByMonthUC,
		listByClientUC,
		cfg.ShopTimezone,
	)

	slotHandler := handlers.NewSlotHandler(db, saveDayUC, setSlotUC, cfg.ShopTimezone)

	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	productHandler := handlers.NewProductHandler(db, auditDispatcher, imageStore)

	cartHandler := handlers.NewCartHandler(db, cartStore)
	orderHandler := handlers.NewOrderHandler(placeOrderUC, orderRepo)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/services", serviceHandler.ListPublic)
		api.GET("/products", productHandler.ListPublic)
		api.GET("/availability", availabilityHandler.Get)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (CLIENTE)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", userHandler.GetMe)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/cart", cartHandler.Get)
			secured.POST("/cart/items", cartHandler.Add)
			secured.PATCH("/cart/items/:productId", cartHandler.UpdateItem)
			secured.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
			secured.DELETE("/cart", cartHandler.Clear)

			secured.POST("/orders", orderHandler.Create)
			secured.GET("/me/orders", orderHandler.ListMine)
		}

		// ------------------------------
		// 🛡️ API ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
		{
			admin.GET("/users", userHandler.List)
			admin.DELETE("/users/:id", userHandler.Delete)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.POST("/products", productHandler.Create)
			admin.PATCH("/products/:id", productHandler.Update)
			admin.POST("/products/:id/image", productHandler.UploadImage)
			admin.DELETE("/products/:id", productHandler.Delete)

			admin.GET("/slots", slotHandler.ListByDate)
			admin.POST("/slots/day", slotHandler.SaveDay)
			admin.PATCH("/slots/:id/availability", slotHandler.SetAvailability)

			admin.GET("/appointments", appointmentHandler.ListByDate)
			admin.GET("/appointments/month", appointmentHandler.ListByMonth)
			admin.PATCH("/appointments/:id/cancel", appointmentHandler.AdminCancel)
			admin.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
