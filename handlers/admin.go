// handlers/admin.go
package handlers

import (
	"errors"

	"secret-santa-bot/middleware"
	"secret-santa-bot/services"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes wires the operator-facing status API. Everything except
// the liveness probe sits behind the shared service token.
func SetupAdminRoutes(app *fiber.App, games *services.GameService) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	secured := app.Group("/", middleware.ServiceAuthMiddleware())

	secured.Get("/games/:chat_id", func(c *fiber.Ctx) error {
		status, err := games.Status(c.Params("chat_id"))
		if err != nil {
			if errors.Is(err, services.ErrGameNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
		}
		return c.JSON(status)
	})

	secured.Get("/games/:chat_id/leaderboard", func(c *fiber.Ctx) error {
		players, err := games.Leaderboard(c.Params("chat_id"), 50)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
		}
		type entry struct {
			Nick  string `json:"nick"`
			Score int    `json:"score"`
		}
		out := make([]entry, 0, len(players))
		for _, p := range players {
			out = append(out, entry{Nick: p.Nick, Score: p.Score})
		}
		return c.JSON(fiber.Map{"chat_id": c.Params("chat_id"), "leaderboard": out})
	})

	// Manual draw trigger: the recovery path for a draw that stalled on too
	// few players. ForceDraw accepts the 2-player mutual pair that scheduled
	// draws refuse.
	secured.Post("/games/:chat_id/draw", func(c *fiber.Ctx) error {
		chatID := c.Params("chat_id")
		if _, err := games.Game(chatID); err != nil {
			if errors.Is(err, services.ErrGameNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
		}
		if err := games.ForceDraw(c.Context(), chatID); err != nil {
			if errors.Is(err, services.ErrNotEnoughPlayers) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "not enough players for a draw"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to run draw"})
		}
		return c.JSON(fiber.Map{"message": "draw completed", "chat_id": chatID})
	})
}
