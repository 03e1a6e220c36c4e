// services/scheduler.go
package services

import (
	"context"
	"errors"
	"log"
	"time"

	"secret-santa-bot/models"

	"github.com/go-co-op/gocron/v2"
)

// StartGameScheduler polls persisted draw and reveal times once a minute.
// Because due games are read from the store on every tick, a process
// restart re-arms everything still pending and runs anything overdue on
// the next tick instead of dropping it.
func (s *GameService) StartGameScheduler(ctx context.Context) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	sched.Start()

	_, err = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			s.runDueDraws(ctx)
			s.runDueReveals(ctx)
		}),
	)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		if err := sched.Shutdown(); err != nil {
			log.Printf("[Scheduler] shutdown: %v", err)
		}
	}()
	return nil
}

func (s *GameService) runDueDraws(ctx context.Context) {
	var games []models.Game
	now := time.Now()
	err := s.DB.Where("draw_time IS NOT NULL AND draw_time <= ? AND drawn_at IS NULL", now).
		Find(&games).Error
	if err != nil {
		log.Printf("[Scheduler] DB error: %v", err)
		return
	}

	for _, g := range games {
		if err := s.RunDraw(ctx, g.ChatID); err != nil {
			if errors.Is(err, ErrNotEnoughPlayers) {
				// Stays pending; retried next tick until enough players join.
				log.Printf("[Scheduler] draw for chat %s postponed: %v", g.ChatID, err)
				continue
			}
			log.Printf("[Scheduler] failed to run draw for chat %s: %v", g.ChatID, err)
		} else {
			log.Printf("✅ Draw completed for chat: %s", g.ChatID)
		}
	}
}

func (s *GameService) runDueReveals(ctx context.Context) {
	var games []models.Game
	now := time.Now()
	err := s.DB.Where("reveal_time IS NOT NULL AND reveal_time <= ? AND revealed_at IS NULL", now).
		Find(&games).Error
	if err != nil {
		log.Printf("[Scheduler] DB error: %v", err)
		return
	}

	for _, g := range games {
		if err := s.FinishGame(ctx, g.ChatID); err != nil {
			log.Printf("[Scheduler] failed to finish game for chat %s: %v", g.ChatID, err)
		} else {
			log.Printf("✅ Game finished for chat: %s", g.ChatID)
		}
	}
}
