package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/DhavalSuthar-24/matchday/config"
	_ "github.com/DhavalSuthar-24/matchday/docs"
	"github.com/DhavalSuthar-24/matchday/internal/auth"
	"github.com/DhavalSuthar-24/matchday/internal/discipline"
	"github.com/DhavalSuthar-24/matchday/internal/match"
	"github.com/DhavalSuthar-24/matchday/internal/participant"
	"github.com/DhavalSuthar-24/matchday/internal/referee"
	"github.com/DhavalSuthar-24/matchday/internal/team"
	"github.com/DhavalSuthar-24/matchday/internal/user"
	"github.com/DhavalSuthar-24/matchday/internal/venue"
	"github.com/DhavalSuthar-24/matchday/routes"
)

// @title Matchday REST API
// @version 1.0
// @description League administration: disciplines, teams, participants, venues, referees and matches.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := config.Initialize(); err != nil {
		slog.Error("failed to initialize application", slog.Any("error", err))
		os.Exit(1)
	}

	cfg := config.GetConfig()

	// Referenced tables first so foreign keys resolve on postgres.
	err := config.DB.AutoMigrate(
		&user.Role{}, &user.User{}, &user.RefreshToken{},
		&discipline.Discipline{}, &team.Team{}, &participant.Participant{},
		&venue.Venue{}, &referee.Referee{},
		&match.Match{}, &match.MatchTeam{},
	)
	if err != nil {
		slog.Error("auto-migrate failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("auto-migrate successful")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = auth.EnsureAdmin(ctx, auth.NewAuthRepository(config.DB), cfg.Admin.Email, cfg.Admin.Password, cfg.JWT.BcryptCost)
	cancel()
	if err != nil {
		slog.Error("bootstrap admin failed", slog.Any("error", err))
		os.Exit(1)
	}

	r := routes.SetupRoutes(config.DB, cfg)

	slog.Info("starting server", slog.String("port", cfg.App.Port), slog.String("env", cfg.App.Env))
	if err := r.Run(":" + cfg.App.Port); err != nil {
		slog.Error("failed to run server", slog.Any("error", err))
		os.Exit(1)
	}
}
