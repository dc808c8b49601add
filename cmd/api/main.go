package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shinyyama/companion-backend/internal/config"
	"github.com/shinyyama/companion-backend/internal/db"
	"github.com/shinyyama/companion-backend/internal/model"
	"github.com/shinyyama/companion-backend/internal/scheduler"
	"github.com/shinyyama/companion-backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	// Listen first so health checks pass during cold start; the DB
	// connection is injected once it comes up and repositories return
	// ErrDBNotReady until then.
	srv := server.New(nil, cfg)

	go func() {
		conn, err := db.Connect(cfg)
		if err != nil {
			log.Fatalf("db connect error: %v", err)
		}
		if err := conn.AutoMigrate(
			&model.User{},
			&model.UserGrowth{},
			&model.UserTask{},
			&model.ChatMessage{},
			&model.Diary{},
			&model.DailySummary{},
		); err != nil {
			log.Fatalf("auto migrate error: %v", err)
		}
		srv.SetDB(conn)
		log.Printf("database ready")
	}()

	if cfg.SummaryCronEnabled {
		sched, err := scheduler.New(srv.SummaryService())
		if err != nil {
			log.Fatalf("scheduler init error: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
