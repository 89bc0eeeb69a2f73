package main

import (
	"context"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Calphius18/service-provider/internal/api"
	"github.com/Calphius18/service-provider/internal/config"
	"github.com/Calphius18/service-provider/internal/logging"
	"github.com/Calphius18/service-provider/internal/service"
	"github.com/Calphius18/service-provider/internal/session"
	"github.com/Calphius18/service-provider/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Path, cfg.API.Environment == config.EnvProduction)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	client := api.New(cfg.BaseURL(), cfg.Timeout(), logger)
	store := session.New()

	catalogSvc := &service.CatalogService{API: client, Store: store, Log: logger}
	bookingSvc := &service.BookingService{API: client, Store: store, UserID: cfg.User.ID, Log: logger}

	loc := time.Local
	if cfg.UI.Timezone != "" {
		if l, err := time.LoadLocation(cfg.UI.Timezone); err == nil {
			loc = l
		} else {
			log.Printf("warn: using local timezone due to load failure: %v", err)
		}
	}

	p := tea.NewProgram(tui.New(ctx, cfg, store,
		tui.Services{Catalog: catalogSvc, Booking: bookingSvc},
		loc,
	), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
