package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"secret-santa-bot/bot"
	"secret-santa-bot/handlers"
	"secret-santa-bot/models"
	"secret-santa-bot/services"
	"secret-santa-bot/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}
	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("BOT_TOKEN environment variable not set")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "5300"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Game{},
		&models.Player{},
		&models.Achievement{},
		&models.PremiumPurchase{},
		&models.Session{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatal("failed to connect to Telegram:", err)
	}

	// Reveal archiving is optional; without a bucket the summaries only go
	// to the chat.
	var archiver services.Archiver
	if os.Getenv("R2_BUCKET_NAME") != "" {
		archive, err := utils.NewRevealArchive()
		if err != nil {
			log.Fatal("failed to initialize R2 client:", err)
		}
		archiver = archive
	}

	nickService := services.NewNicknameService()
	playerService := services.NewPlayerService(db, nickService)
	gameService := services.NewGameService(db, playerService, bot.NewNotifier(api), archiver)
	guessService := services.NewGuessService(playerService)
	premiumService := services.NewPremiumService(db, gameService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gameService.StartGameScheduler(ctx); err != nil {
		log.Fatal("failed to start game scheduler:", err)
	}

	b := bot.New(api, db, gameService, playerService, guessService, premiumService)
	go b.Run(ctx)

	app := fiber.New()
	handlers.SetupAdminRoutes(app, gameService)

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Admin API running on http://localhost:%s", port)
	log.Println("✅ Game scheduler running (draw/reveal poll every minute)")
	log.Printf("✅ Bot running as @%s", api.Self.UserName)

	<-ctx.Done()
	log.Println("Shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
