package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-loyalty-admin/internal/config"
	"go-loyalty-admin/internal/handler"
	"go-loyalty-admin/internal/middleware"
	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/repository"
	"go-loyalty-admin/internal/service"
	"go-loyalty-admin/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Session store (durable when Redis is configured)
	var sessionStore repository.SessionStore
	if cfg.RedisAddr != "" {
		store, err := repository.NewRedisSessionStore(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Failed to connect session store: %v", err)
		}
		sessionStore = store
		log.Println("Session store: redis at " + cfg.RedisAddr)
	} else {
		sessionStore = repository.NewMemorySessionStore()
		log.Println("Warning: REDIS_ADDR not set, sessions are not durable")
	}

	// 3. Seed mock collections and demo accounts
	customerRepo := repository.NewCustomerRepo()
	purchaseRepo := repository.NewPurchaseRepo()
	userRepo := repository.NewUserRepo()
	notifRepo := repository.NewNotificationRepo()
	dashRepo := repository.NewDashboardRepo()
	accountRepo := repository.NewAccountRepo()
	seedAccounts(accountRepo)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	// Each mutating service gets its own in-flight registry so entries
	// can never collide across collections.
	authService := service.NewAuthService(accountRepo, sessionStore)
	customerService := service.NewCustomerService(customerRepo, cfg.ProcessDelay)
	purchaseService := service.NewPurchaseService(purchaseRepo, notifRepo, repository.NewInflight(), wsHub, cfg.ProcessDelay)
	userService := service.NewUserService(userRepo, repository.NewInflight())
	notifService := service.NewNotificationService(notifRepo)
	rateService := service.NewRateService(2.5, cfg.ProcessDelay)
	dashService := service.NewDashboardService(dashRepo, userRepo, purchaseRepo, notifRepo)

	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	userHandler := handler.NewUserHandler(userService)
	notifHandler := handler.NewNotificationHandler(notifService)
	rateHandler := handler.NewRateHandler(rateService)
	dashHandler := handler.NewDashboardHandler(dashService, rateService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Loyalty Admin v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":   "Loyalty Admin",
			"logins": []string{"/login/admin", "/login/merchant", "/login/member"},
		})
	})

	// ============ PUBLIC ROUTES ============
	app.Get("/login/:role", authHandler.LoginForm)
	app.Post("/login/:role", authHandler.Login)

	// ============ SESSION ROUTES ============
	app.Post("/logout", middleware.RequireAuth(sessionStore), authHandler.Logout)
	app.Get("/session", middleware.RequireAuth(sessionStore), authHandler.Session)

	// ============ ADMIN DASHBOARD ============
	admin := app.Group("/dashboard/admin", middleware.RequireRole(sessionStore, model.RoleAdmin))
	admin.Get("/", dashHandler.AdminOverview)
	admin.Get("/users", userHandler.GetUsers)
	admin.Patch("/users/:id/status", userHandler.UpdateStatus)
	admin.Delete("/users/:id", userHandler.DeleteUser)
	admin.Get("/members", dashHandler.GetMembers)
	admin.Patch("/members/:id/status", dashHandler.ToggleMemberStatus)
	admin.Delete("/members/:id", dashHandler.DeleteMember)
	admin.Post("/members/:id/contribution-rate", dashHandler.SetMemberRate)
	admin.Get("/merchants", dashHandler.GetMerchants)
	admin.Patch("/merchants/:id/status", dashHandler.ToggleMerchantStatus)
	admin.Delete("/merchants/:id", dashHandler.DeleteMerchant)

	// ============ MERCHANT DASHBOARD ============
	merchant := app.Group("/dashboard/merchant", middleware.RequireRole(sessionStore, model.RoleMerchant))
	merchant.Get("/", dashHandler.MerchantOverview)
	merchant.Get("/purchases", purchaseHandler.GetPurchases)
	merchant.Post("/purchases/:id/approve", purchaseHandler.Approve)
	merchant.Post("/purchases/:id/reject", purchaseHandler.Reject)
	merchant.Get("/customer", customerHandler.Lookup)
	merchant.Get("/contribution-rate", rateHandler.GetRate)
	merchant.Put("/contribution-rate", rateHandler.SaveRate)
	merchant.Get("/notifications", notifHandler.GetNotifications)
	merchant.Post("/notifications/:id/read", notifHandler.MarkRead)
	merchant.Post("/notifications/read-all", notifHandler.MarkAllRead)
	merchant.Delete("/notifications/:id", notifHandler.Dismiss)

	// ============ MEMBER DASHBOARD ============
	member := app.Group("/dashboard/member", middleware.RequireRole(sessionStore, model.RoleMember))
	member.Get("/", dashHandler.MemberSummary)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// Catch-all
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	})

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAccounts creates one demo credential per role. Passwords can be
// overridden per role via env before seeding.
func seedAccounts(accountRepo repository.AccountRepository) {
	demo := []struct {
		account  model.Account
		password string
		envKey   string
	}{
		{
			account: model.Account{
				ID: "ACC-001", Role: model.RoleAdmin,
				Name: "James Wilson", Email: "admin@loyalty.local", IsActive: true,
			},
			password: "admin123",
			envKey:   "ADMIN_PASSWORD",
		},
		{
			account: model.Account{
				ID: "ACC-002", Role: model.RoleMerchant,
				Name: "TechStore Pro", Email: "admin@techstore.com",
				StoreName: "TechStore Pro", IsActive: true,
			},
			password: "merchant123",
			envKey:   "MERCHANT_PASSWORD",
		},
		{
			account: model.Account{
				ID: "ACC-003", Role: model.RoleMember,
				Name: "Sarah Johnson", Email: "sarah.j@email.com",
				Phone: "+1 (555) 123-4567", IsActive: true,
			},
			password: "member123",
			envKey:   "MEMBER_PASSWORD",
		},
	}

	for _, d := range demo {
		password := d.password
		if v := os.Getenv(d.envKey); v != "" {
			password = v
		}
		if err := d.account.SetPassword(password); err != nil {
			log.Printf("Warning: Failed to hash %s password: %v", d.account.Role, err)
			continue
		}
		if err := accountRepo.Create(&d.account); err != nil {
			log.Printf("Warning: Failed to seed %s account: %v", d.account.Role, err)
		}
	}
	log.Println("Seeded demo accounts for admin, merchant and member logins")
}
