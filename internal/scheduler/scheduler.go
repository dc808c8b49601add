package scheduler

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
	"github.com/shinyyama/companion-backend/internal/dateutil"
	"github.com/shinyyama/companion-backend/internal/service"
)

// summarySpec fires the daily summary at 06:00 Asia/Shanghai.
const summarySpec = "0 6 * * *"

// Scheduler owns the in-process cron. Single instance per deployment;
// there is no distributed coordination, so running multiple replicas
// fires the job on each of them.
type Scheduler struct {
	cron *cron.Cron
}

func New(summarySvc service.SummaryService) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(dateutil.Location()))
	_, err := c.AddFunc(summarySpec, func() {
		log.Printf("[cron] daily summary fired")
		summarySvc.RunDailyJob(context.Background())
	})
	if err != nil {
		return nil, err
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
