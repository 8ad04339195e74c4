package initializers

import (
	"context"
	"resume-flow-backend/config"
	"resume-flow-backend/fiberlog"
	"resume-flow-backend/lib/analytics"
	approvalhandler "resume-flow-backend/lib/approval"
	authhandler "resume-flow-backend/lib/auth"
	xlsexport "resume-flow-backend/lib/export/xls"
	filestorage "resume-flow-backend/lib/file-storage"
	"resume-flow-backend/lib/notify"
	resumehandler "resume-flow-backend/lib/resume"
	"resume-flow-backend/lib/sla"
	slaworker "resume-flow-backend/lib/sla-worker"
	usershandler "resume-flow-backend/lib/users"
	"resume-flow-backend/lib/workflow"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitS3()
	InitSmtp()
	InitStorage()
	budget := sla.NewBudget(config.Conf.Sla.IdentifyHours, config.Conf.Sla.ConnectionHours, config.Conf.Sla.FeedbackHours)
	filestorage.NewHandler()
	notify.NewHandler(*config.Conf.Smtp.NotifyByEmail)
	authhandler.NewHandler()
	usershandler.NewHandler()
	resumehandler.NewHandler()
	approvalhandler.NewHandler()
	xlsexport.NewHandler()
	analytics.NewHandler()
	workflow.NewHandler(budget)
	go initWorkers(ctx, budget)
}

func initWorkers(ctx context.Context, budget sla.Budget) {
	if *config.Conf.Sla.WorkerEnabled {
		// 简历处理时限巡检任务
		slaworker.StartWorker(ctx, budget)
	}
}
