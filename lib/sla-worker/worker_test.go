package slaworker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"resume-flow-backend/lib/dataset"
	memkvstore "resume-flow-backend/lib/keyval/mem-store"
	"resume-flow-backend/lib/notify"
	"resume-flow-backend/lib/sla"
	"resume-flow-backend/lib/workflow"
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

func newTestChecker(t *testing.T) (*Checker, *dataset.Store, notify.Provider) {
	store, err := dataset.NewInstance(memkvstore.NewInstance())
	require.Nil(t, err)
	notifier := notify.NewInstance(store, false)
	budget := sla.DefaultBudget()
	engine := workflow.NewInstance(store, notifier, budget)
	return NewChecker(store, notifier, engine, budget), store, notifier
}

func seedWithDeadline(t *testing.T, store *dataset.Store, id string, handlerID, handlerName string, deadline time.Time) {
	require.Nil(t, store.AppendResume(domainmodels.Resume{
		ID:                 id,
		CandidateName:      "候选人" + id,
		Status:             models.ResumeStatusWaitIdentify,
		CurrentHandlerID:   handlerID,
		CurrentHandlerName: handlerName,
		SlaDeadline:        &deadline,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}))
}

func TestCheckOverdue(t *testing.T) {
	checker, store, notifier := newTestChecker(t)
	ctx := context.Background()

	expert := store.UserByUsername("expert_a_1")
	l2 := store.UserByUsername("l2_manager_1")
	seedWithDeadline(t, store, "r-late", expert.ID, expert.Username, time.Now().Add(-2*time.Hour))

	checker.Check(ctx)

	t.Run(`overdue acknowledged once`, func(t *testing.T) {
		rec := store.ResumeByID("r-late")
		require.True(t, rec.IsOverdue)
	})

	t.Run(`handler gets the urgent alert`, func(t *testing.T) {
		inbox := notifier.List(expert.ID)
		require.Len(t, inbox, 1)
		require.Equal(t, "⚠️ 简历已超期", inbox[0].Title)
		require.Equal(t, models.NotificationTypeUrgent, inbox[0].Type)
		require.Contains(t, inbox[0].Message, "已超期2小时")
	})

	t.Run(`manager gets the escalation copy`, func(t *testing.T) {
		inbox := notifier.List(l2.ID)
		require.Len(t, inbox, 1)
		require.Equal(t, "⚠️ 简历超期提醒", inbox[0].Title)
		require.Contains(t, inbox[0].Message, expert.Username)
	})

	t.Run(`handler overdue counter bumped`, func(t *testing.T) {
		got := store.UserByID(expert.ID)
		require.Equal(t, 1, got.OverdueCount)
		require.Equal(t, time.Now().Year(), got.OverdueCountYear)
	})

	t.Run(`second sweep is silent`, func(t *testing.T) {
		checker.Check(ctx)
		require.Len(t, notifier.List(expert.ID), 1)
		require.Equal(t, 1, store.UserByID(expert.ID).OverdueCount)
	})
}

func TestCheckNearSla(t *testing.T) {
	checker, store, notifier := newTestChecker(t)
	ctx := context.Background()

	expert := store.UserByUsername("expert_a_1")
	// 24h budget: ~3 hours left is inside the reminder window
	seedWithDeadline(t, store, "r-soon", expert.ID, expert.Username, time.Now().Add(3*time.Hour+time.Minute))

	checker.Check(ctx)

	t.Run(`reminder sent`, func(t *testing.T) {
		inbox := notifier.List(expert.ID)
		require.Len(t, inbox, 1)
		require.Equal(t, "📢 简历即将超期", inbox[0].Title)
		require.Contains(t, inbox[0].Message, "将于3小时后超期")
		require.False(t, store.ResumeByID("r-soon").IsOverdue)
	})

	t.Run(`one reminder per deadline`, func(t *testing.T) {
		checker.Check(ctx)
		checker.Check(ctx)
		require.Len(t, notifier.List(expert.ID), 1)
	})
}

func TestCheckSkipsHealthyResumes(t *testing.T) {
	checker, store, notifier := newTestChecker(t)
	ctx := context.Background()

	expert := store.UserByUsername("expert_a_1")
	// far from the deadline: neither overdue nor near
	seedWithDeadline(t, store, "r-fresh", expert.ID, expert.Username, time.Now().Add(20*time.Hour))

	checker.Check(ctx)
	require.Empty(t, notifier.List(expert.ID))
	require.False(t, store.ResumeByID("r-fresh").IsOverdue)
}
