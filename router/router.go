package router

import (
	"github.com/clduval/resto-resa/controllers"
	"github.com/clduval/resto-resa/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter global (50 request per detik per IP)
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db)
	menuCtrl := controllers.NewMenuController(db)
	availabilityCtrl := controllers.NewAvailabilityController(db)
	reservationCtrl := controllers.NewReservationController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/signup", userCtrl.Signup)
		auth.POST("/login", userCtrl.Login)
	}

	r.GET("/menu", menuCtrl.GetMenu)

	availability := r.Group("/availability")
	{
		availability.GET("", availabilityCtrl.GetAvailability)
		availability.GET("/dates", availabilityCtrl.GetAvailableDates)
		availability.GET("/available-tables",
			middlewares.AuthMiddleware(), availabilityCtrl.GetAvailableTables)

		admin := availability.Group("/admin")
		admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
		{
			admin.GET("/opening-slots", availabilityCtrl.GetAllOpeningSlots)
			admin.POST("/opening-slots", availabilityCtrl.UpsertOpeningSlot)
			admin.GET("/exceptional-dates", availabilityCtrl.GetAllExceptionalDates)
			admin.POST("/exceptional-dates", availabilityCtrl.UpsertExceptionalDate)
		}
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	reservations := r.Group("/reservations")
	reservations.Use(middlewares.AuthMiddleware())
	{
		reservations.POST("", reservationCtrl.CreateReservation)
		reservations.GET("", middlewares.AdminOnly(), reservationCtrl.GetAllReservations)
		reservations.GET("/my-reservations", reservationCtrl.GetMyReservations)
		reservations.PUT("/:id", reservationCtrl.UpdateReservation)
		reservations.DELETE("/:id", reservationCtrl.DeleteReservation)
		reservations.PATCH("/:id/validate", middlewares.AdminOnly(), reservationCtrl.ValidateReservation)
	}

	tables := r.Group("/tables")
	tables.Use(middlewares.AuthMiddleware())
	{
		tables.GET("", tableCtrl.GetAllTables)
		tables.POST("", middlewares.AdminOnly(), tableCtrl.CreateTable)
		tables.PUT("/:id", middlewares.AdminOnly(), tableCtrl.UpdateTable)
		tables.DELETE("/:id", middlewares.AdminOnly(), tableCtrl.DeleteTable)
	}

	r.GET("/profile", middlewares.AuthMiddleware(), userCtrl.GetProfile)

	return r
}
