package sla

import (
	"fmt"
	"time"

	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

const (
	DefaultIdentifyHours   = 24
	DefaultConnectionHours = 24
	DefaultFeedbackHours   = 120

	// nearSlaDivisor: a resume is near its SLA when the remaining time is
	// at most 1/5 of the status budget.
	nearSlaDivisor = 5
)

// Budget maps each SLA-bearing status to its time budget. Statuses outside
// the table never carry a deadline.
type Budget map[models.ResumeStatus]time.Duration

func NewBudget(identifyHours, connectionHours, feedbackHours int) Budget {
	return Budget{
		models.ResumeStatusWaitIdentify:   time.Duration(identifyHours) * time.Hour,
		models.ResumeStatusWaitConnection: time.Duration(connectionHours) * time.Hour,
		models.ResumeStatusWaitFeedback:   time.Duration(feedbackHours) * time.Hour,
	}
}

func DefaultBudget() Budget {
	return NewBudget(DefaultIdentifyHours, DefaultConnectionHours, DefaultFeedbackHours)
}

func (b Budget) Carries(status models.ResumeStatus) bool {
	_, exist := b[status]
	return exist
}

// Deadline computes the deadline a transition into status establishes.
// nil for statuses without a budget.
func (b Budget) Deadline(status models.ResumeStatus, now time.Time) *time.Time {
	budget, exist := b[status]
	if !exist {
		return nil
	}
	deadline := now.Add(budget)
	return &deadline
}

// IsOverdue derives overdue state live from the deadline, independent of the
// persisted acknowledged-overdue flag.
func (b Budget) IsOverdue(rec domainmodels.Resume, now time.Time) bool {
	if rec.SlaDeadline == nil || !b.Carries(rec.Status) {
		return false
	}
	return now.After(*rec.SlaDeadline)
}

// IsNearSla reports whether the remaining time is within 1/5 of the status
// budget. Never true together with the overdue flag.
func (b Budget) IsNearSla(rec domainmodels.Resume, now time.Time) bool {
	if rec.SlaDeadline == nil || rec.IsOverdue {
		return false
	}
	budget, exist := b[rec.Status]
	if !exist {
		return false
	}
	remaining := rec.SlaDeadline.Sub(now)
	if remaining <= 0 {
		return false
	}
	return remaining <= budget/nearSlaDivisor
}

// OverdueDays returns whole days past the deadline for an acknowledged
// overdue resume. Sub-day overruns are suppressed (nil).
func OverdueDays(rec domainmodels.Resume, now time.Time) *int {
	if !rec.IsOverdue || rec.SlaDeadline == nil {
		return nil
	}
	days := int(now.Sub(*rec.SlaDeadline).Hours() / 24)
	if days < 1 {
		return nil
	}
	return &days
}

// DueIn24Hours reports a deadline within the next 24 hours.
func DueIn24Hours(rec domainmodels.Resume, now time.Time) bool {
	if rec.SlaDeadline == nil || rec.IsOverdue {
		return false
	}
	diff := rec.SlaDeadline.Sub(now)
	return diff > 0 && diff <= 24*time.Hour
}

// FormatOverdueTime renders how long past the deadline a resume is, the way
// reminder notifications quote it.
func FormatOverdueTime(rec domainmodels.Resume, now time.Time) string {
	if rec.SlaDeadline == nil {
		return "未知"
	}
	if rec.SlaDeadline.After(now) {
		return "未超期"
	}
	hours := int(now.Sub(*rec.SlaDeadline).Hours())
	if hours < 24 {
		return fmt.Sprintf("%d小时", hours)
	}
	return fmt.Sprintf("%d天%d小时", hours/24, hours%24)
}
