package daemons

import (
	"github.com/jasonlvhit/gocron"

	"github.com/soletrade/soletrade/config"
	"github.com/soletrade/soletrade/jobs"
	"github.com/soletrade/soletrade/jobs/cron"
	"github.com/soletrade/soletrade/services"
)

type Worker interface {
	Start()
	Stop()
}

type CronJob struct {
	scheduler *gocron.Scheduler
	Jobs      []jobs.Job
}

func NewCronJob(app *config.App) *CronJob {
	markets := services.NewMarketService(app.Redis)

	return &CronJob{
		scheduler: gocron.NewScheduler(),
		Jobs: []jobs.Job{
			cron.NewMarketSnapshotJob(app.DB, markets),
		},
	}
}

func (c *CronJob) Start() {
	for _, job := range c.Jobs {
		c.scheduler.Every(1).Minute().Do(job.Process)
	}

	<-c.scheduler.Start()
}

func (c *CronJob) Stop() {
	c.scheduler.Clear()
}
