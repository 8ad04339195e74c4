package sla

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

func TestBudget(t *testing.T) {
	budget := DefaultBudget()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run(`budget table`, func(t *testing.T) {
		require.Equal(t, 24*time.Hour, budget[models.ResumeStatusWaitIdentify])
		require.Equal(t, 24*time.Hour, budget[models.ResumeStatusWaitConnection])
		require.Equal(t, 120*time.Hour, budget[models.ResumeStatusWaitFeedback])
		require.True(t, budget.Carries(models.ResumeStatusWaitFeedback))
		require.False(t, budget.Carries(models.ResumeStatusPoolL2))
		require.False(t, budget.Carries(models.ResumeStatusArchived))
	})

	t.Run(`deadline only for budget statuses`, func(t *testing.T) {
		deadline := budget.Deadline(models.ResumeStatusWaitIdentify, now)
		require.NotNil(t, deadline)
		require.Equal(t, now.Add(24*time.Hour), *deadline)
		require.Nil(t, budget.Deadline(models.ResumeStatusPoolL3, now))
	})

	t.Run(`overdue derives from deadline`, func(t *testing.T) {
		past := now.Add(-time.Minute)
		future := now.Add(time.Minute)
		rec := domainmodels.Resume{Status: models.ResumeStatusWaitIdentify, SlaDeadline: &past}
		require.True(t, budget.IsOverdue(rec, now))
		rec.SlaDeadline = &future
		require.False(t, budget.IsOverdue(rec, now))
		rec.SlaDeadline = nil
		require.False(t, budget.IsOverdue(rec, now))
	})

	t.Run(`near sla window is one fifth of the budget`, func(t *testing.T) {
		// 24h budget: near within the last 4.8 hours.
		in4h := now.Add(4 * time.Hour)
		in6h := now.Add(6 * time.Hour)
		rec := domainmodels.Resume{Status: models.ResumeStatusWaitIdentify, SlaDeadline: &in4h}
		require.True(t, budget.IsNearSla(rec, now))
		rec.SlaDeadline = &in6h
		require.False(t, budget.IsNearSla(rec, now))
	})

	t.Run(`near sla never true once overdue`, func(t *testing.T) {
		past := now.Add(-time.Hour)
		rec := domainmodels.Resume{Status: models.ResumeStatusWaitIdentify, SlaDeadline: &past}
		require.False(t, budget.IsNearSla(rec, now))
		rec.IsOverdue = true
		require.False(t, budget.IsNearSla(rec, now))
		require.True(t, budget.IsOverdue(rec, now))
	})
}

func TestOverdueDays(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run(`sub-day overrun suppressed`, func(t *testing.T) {
		deadline := now.Add(-23 * time.Hour)
		rec := domainmodels.Resume{IsOverdue: true, SlaDeadline: &deadline}
		require.Nil(t, OverdueDays(rec, now))
	})

	t.Run(`whole days floor`, func(t *testing.T) {
		deadline := now.Add(-49 * time.Hour)
		rec := domainmodels.Resume{IsOverdue: true, SlaDeadline: &deadline}
		days := OverdueDays(rec, now)
		require.NotNil(t, days)
		require.Equal(t, 2, *days)
	})

	t.Run(`nil unless acknowledged overdue`, func(t *testing.T) {
		deadline := now.Add(-72 * time.Hour)
		rec := domainmodels.Resume{IsOverdue: false, SlaDeadline: &deadline}
		require.Nil(t, OverdueDays(rec, now))
	})
}

func TestDueIn24Hours(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	in12h := now.Add(12 * time.Hour)
	in30h := now.Add(30 * time.Hour)

	rec := domainmodels.Resume{Status: models.ResumeStatusWaitFeedback, SlaDeadline: &in12h}
	require.True(t, DueIn24Hours(rec, now))
	rec.SlaDeadline = &in30h
	require.False(t, DueIn24Hours(rec, now))
	rec.SlaDeadline = nil
	require.False(t, DueIn24Hours(rec, now))
}

func TestFormatOverdueTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	deadline := now.Add(-5 * time.Hour)
	rec := domainmodels.Resume{SlaDeadline: &deadline}
	require.Equal(t, "5小时", FormatOverdueTime(rec, now))

	deadline = now.Add(-50 * time.Hour)
	require.Equal(t, "2天2小时", FormatOverdueTime(rec, now))

	deadline = now.Add(time.Hour)
	require.Equal(t, "未超期", FormatOverdueTime(rec, now))

	rec.SlaDeadline = nil
	require.Equal(t, "未知", FormatOverdueTime(rec, now))
}
