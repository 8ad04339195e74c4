package slaworker

import (
	"context"
	"fmt"
	"time"

	"resume-flow-backend/config"
	"resume-flow-backend/lib/dataset"
	"resume-flow-backend/lib/notify"
	"resume-flow-backend/lib/sla"
	baseworker "resume-flow-backend/lib/utils/base-worker"
	"resume-flow-backend/lib/utils/helpers"
	"resume-flow-backend/lib/workflow"
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

func StartWorker(ctx context.Context, budget sla.Budget) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("SlaWorker", 15*time.Second, time.Duration(config.Conf.Sla.CheckIntervalInMin)*time.Minute),
		checker:  NewChecker(dataset.Instance, notify.Instance, workflow.Instance, budget),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	checker *Checker
}

func (i impl) handle(ctx context.Context) {
	i.checker.Check(ctx)
}

// Checker runs one SLA sweep: acknowledges freshly overdue resumes and
// reminds handlers whose deadline is close.
type Checker struct {
	store    *dataset.Store
	notifier notify.Provider
	engine   workflow.Provider
	budget   sla.Budget
	// reminded tracks the deadline a reminder was last sent for, so one
	// SLA window produces at most one reminder per resume.
	reminded map[string]time.Time
}

func NewChecker(store *dataset.Store, notifier notify.Provider, engine workflow.Provider, budget sla.Budget) *Checker {
	return &Checker{
		store:    store,
		notifier: notifier,
		engine:   engine,
		budget:   budget,
		reminded: map[string]time.Time{},
	}
}

func (c *Checker) Check(ctx context.Context) {
	now := time.Now()
	for _, rec := range c.store.Resumes() {
		if helpers.IsContextDone(ctx) {
			return
		}
		if !c.budget.Carries(rec.Status) || rec.SlaDeadline == nil {
			continue
		}
		if !rec.IsOverdue && c.budget.IsOverdue(rec, now) {
			c.acknowledgeOverdue(rec, now)
			continue
		}
		if c.budget.IsNearSla(rec, now) {
			c.remind(rec, now)
		}
	}
}

func (c *Checker) acknowledgeOverdue(rec domainmodels.Resume, now time.Time) {
	found, err := c.store.UpdateResume(rec.ID, func(r *domainmodels.Resume) {
		r.IsOverdue = true
	})
	if err != nil || !found {
		return
	}
	handlerName := rec.CurrentHandlerName
	if handlerName == "" {
		handlerName = "未指定"
	}
	stage := rec.Status.ToHuman()
	overdueTime := sla.FormatOverdueTime(rec, now)
	if rec.CurrentHandlerID != "" {
		c.notifier.Push(notify.PushData{
			UserID:         rec.CurrentHandlerID,
			ResumeID:       rec.ID,
			ResumeName:     rec.CandidateName,
			Title:          "⚠️ 简历已超期",
			Message:        fmt.Sprintf("简历【%s】在【%s】阶段已超期%s，请尽快处理！", rec.CandidateName, stage, overdueTime),
			Type:           models.NotificationTypeUrgent,
			CurrentHandler: handlerName,
			CurrentStage:   stage,
			OverdueTime:    overdueTime,
			Link:           "/resumes/" + rec.ID,
		})
		c.engine.IncrementOverdueCount(rec.CurrentHandlerID)
	}
	if l2Manager := c.store.L2Manager(); l2Manager != nil && l2Manager.ID != rec.CurrentHandlerID {
		c.notifier.Push(notify.PushData{
			UserID:         l2Manager.ID,
			ResumeID:       rec.ID,
			ResumeName:     rec.CandidateName,
			Title:          "⚠️ 简历超期提醒",
			Message:        fmt.Sprintf("简历【%s】已超期，当前责任人：%s，当前环节：%s，超期时间：%s", rec.CandidateName, handlerName, stage, overdueTime),
			Type:           models.NotificationTypeWarning,
			CurrentHandler: handlerName,
			CurrentStage:   stage,
			OverdueTime:    overdueTime,
			Link:           "/resumes/" + rec.ID,
		})
	}
}

func (c *Checker) remind(rec domainmodels.Resume, now time.Time) {
	if last, exist := c.reminded[rec.ID]; exist && last.Equal(*rec.SlaDeadline) {
		return
	}
	if rec.CurrentHandlerID == "" {
		return
	}
	stage := rec.Status.ToHuman()
	hoursLeft := int(rec.SlaDeadline.Sub(now).Hours())
	timeLeft := fmt.Sprintf("%d小时", hoursLeft)
	if hoursLeft < 1 {
		timeLeft = "不足1小时"
	}
	c.notifier.Push(notify.PushData{
		UserID:         rec.CurrentHandlerID,
		ResumeID:       rec.ID,
		ResumeName:     rec.CandidateName,
		Title:          "📢 简历即将超期",
		Message:        fmt.Sprintf("简历【%s】在【%s】阶段将于%s后超期，请及时处理！", rec.CandidateName, stage, timeLeft),
		Type:           models.NotificationTypeWarning,
		CurrentHandler: rec.CurrentHandlerName,
		CurrentStage:   stage,
		Link:           "/resumes/" + rec.ID,
	})
	c.reminded[rec.ID] = *rec.SlaDeadline
}
