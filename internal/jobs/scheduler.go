// Package jobs управляет фоновыми задачами (cron).
// Единственная задача — ежедневный отчёт со статистикой в группу.
package jobs

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"group-manager-bot/internal/config"
	"group-manager-bot/internal/features/stats"
)

// Scheduler управляет фоновыми задачами.
type Scheduler struct {
	cron         *cron.Cron
	statsService *stats.Service
	bot          *tgbotapi.BotAPI
	cfg          *config.Config
}

// NewScheduler создаёт планировщик в часовом поясе из конфигурации.
func NewScheduler(statsService *stats.Service, bot *tgbotapi.BotAPI, cfg *config.Config) *Scheduler {
	loc, err := time.LoadLocation(cfg.AppTimezone)
	if err != nil {
		log.WithError(err).WithField("timezone", cfg.AppTimezone).Warn("Не удалось загрузить часовой пояс, используем UTC")
		loc = time.UTC
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		statsService: statsService,
		bot:          bot,
		cfg:          cfg,
	}
}

// Start запускает все фоновые задачи.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cfg.FeatureDailyStatsEnabled {
		// Ежедневный отчёт в 00:00
		s.cron.AddFunc("0 0 * * *", func() {
			log.Info("[CRON] Ежедневный отчёт статистики")
			s.postDailyStats(ctx)
		})
	}

	s.cron.Start()
	log.WithField("timezone", s.cfg.AppTimezone).Info("Планировщик задач запущен")
}

// Stop останавливает планировщик и дожидается текущих задач.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Планировщик задач остановлен")
}

// postDailyStats собирает отчёт и отправляет его в группу.
func (s *Scheduler) postDailyStats(ctx context.Context) {
	report, err := s.statsService.BuildReport(ctx)
	if err != nil {
		log.WithError(err).Error("[CRON] Ошибка сбора статистики")
		return
	}

	msg := tgbotapi.NewMessage(s.cfg.GroupID, stats.FormatReport(report))
	if _, err := s.bot.Send(msg); err != nil {
		log.WithError(err).Error("[CRON] Ошибка отправки отчёта")
	}
}
