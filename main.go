package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice-api/action"
	"backoffice-api/config"
	"backoffice-api/handlers"
	"backoffice-api/logger"
	"backoffice-api/middleware"
	"backoffice-api/models"
	"backoffice-api/repositories"
	"backoffice-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.IsDevelopment())

	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database initialization failed")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	jobRepo := repositories.NewJobOfferRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	partnershipRepo := repositories.NewPartnershipRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)

	if err := seedSuperAdmin(cfg, log, userRepo); err != nil {
		log.Fatal().Err(err).Msg("seeding super admin failed")
	}

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiration)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, categoryRepo, tagRepo)
	categoryService := services.NewCategoryService(categoryRepo, postRepo)
	tagService := services.NewTagService(tagRepo)
	eventService := services.NewEventService(eventRepo)
	jobService := services.NewJobOfferService(jobRepo)
	contactService := services.NewContactService(contactRepo)
	partnershipService := services.NewPartnershipService(partnershipRepo)
	mediaService := services.NewMediaService(mediaRepo)
	testimonialService := services.NewTestimonialService(testimonialRepo)

	// Initialize handlers
	registry := action.NewRegistry(log)
	authHandler := handlers.NewAuthHandler(registry, authService)
	userHandler := handlers.NewUserHandler(registry, userService)
	postHandler := handlers.NewPostHandler(registry, postService)
	categoryHandler := handlers.NewCategoryHandler(registry, categoryService)
	tagHandler := handlers.NewTagHandler(registry, tagService)
	eventHandler := handlers.NewEventHandler(registry, eventService)
	jobHandler := handlers.NewJobOfferHandler(registry, jobService)
	contactHandler := handlers.NewContactHandler(registry, contactService)
	partnershipHandler := handlers.NewPartnershipHandler(registry, partnershipService)
	mediaHandler := handlers.NewMediaHandler(registry, mediaService)
	testimonialHandler := handlers.NewTestimonialHandler(registry, testimonialService)

	// Setup router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Authenticate(authService))
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", authHandler.Profile)
		}

		users := v1.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.PUT("/:id/password", userHandler.ResetPassword)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		posts := v1.Group("/posts")
		{
			posts.GET("", postHandler.GetPosts)
			posts.GET("/:id", postHandler.GetPost)
			posts.POST("", postHandler.CreatePost)
			posts.PUT("/:id", postHandler.UpdatePost)
			posts.DELETE("/:id", postHandler.DeletePost)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.POST("", categoryHandler.CreateCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", tagHandler.GetTags)
			tags.GET("/:id", tagHandler.GetTag)
			tags.POST("", tagHandler.CreateTag)
			tags.DELETE("/:id", tagHandler.DeleteTag)
		}

		events := v1.Group("/events")
		{
			events.GET("", eventHandler.GetEvents)
			events.GET("/:id", eventHandler.GetEvent)
			events.POST("", eventHandler.CreateEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}

		jobs := v1.Group("/jobs")
		{
			jobs.GET("", jobHandler.GetJobOffers)
			jobs.GET("/:id", jobHandler.GetJobOffer)
			jobs.POST("", jobHandler.CreateJobOffer)
			jobs.PUT("/:id", jobHandler.UpdateJobOffer)
			jobs.DELETE("/:id", jobHandler.DeleteJobOffer)
		}

		contacts := v1.Group("/contacts")
		{
			contacts.GET("", contactHandler.GetContacts)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PUT("/:id/status", contactHandler.UpdateContactStatus)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}

		partnerships := v1.Group("/partnerships")
		{
			partnerships.GET("", partnershipHandler.GetPartnerships)
			partnerships.GET("/:id", partnershipHandler.GetPartnership)
			partnerships.POST("", partnershipHandler.CreatePartnership)
			partnerships.PUT("/:id", partnershipHandler.UpdatePartnership)
			partnerships.DELETE("/:id", partnershipHandler.DeletePartnership)
		}

		media := v1.Group("/media")
		{
			media.GET("", mediaHandler.GetMediaItems)
			media.GET("/:id", mediaHandler.GetMediaItem)
			media.POST("", mediaHandler.CreateMediaItem)
			media.PUT("/:id", mediaHandler.UpdateMediaItem)
			media.DELETE("/:id", mediaHandler.DeleteMediaItem)
		}

		testimonials := v1.Group("/testimonials")
		{
			testimonials.GET("", testimonialHandler.GetTestimonials)
			testimonials.GET("/:id", testimonialHandler.GetTestimonial)
			testimonials.POST("", testimonialHandler.CreateTestimonial)
			testimonials.PUT("/:id", testimonialHandler.UpdateTestimonial)
			testimonials.DELETE("/:id", testimonialHandler.DeleteTestimonial)
		}

		// Public routes (published content only, no auth required)
		public := v1.Group("/public")
		{
			public.GET("/posts", postHandler.GetPublicPosts)
			public.GET("/events", eventHandler.GetPublicEvents)
			public.GET("/jobs", jobHandler.GetPublicJobOffers)
			public.POST("/contacts", contactHandler.SubmitContact)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}

// seedSuperAdmin creates the initial super_admin account when the users table
// is empty. Without it a fresh deployment has no way to log in. Skipped when
// SEED_ADMIN_PASSWORD is unset.
func seedSuperAdmin(cfg *config.Config, log zerolog.Logger, userRepo repositories.UserRepository) error {
	count, err := userRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.SeedAdminPassword == "" {
		log.Warn().Msg("users table is empty and SEED_ADMIN_PASSWORD is unset, skipping seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:              "Administrator",
		Email:             cfg.SeedAdminEmail,
		Password:          string(hashed),
		Role:              models.RoleSuperAdmin,
		Active:            true,
		PasswordChangedAt: time.Now(),
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}

	log.Info().Str("email", admin.Email).Msg("seeded super admin account")
	return nil
}
