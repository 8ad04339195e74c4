package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"resume-flow-backend/lib/dataset"
	memkvstore "resume-flow-backend/lib/keyval/mem-store"
	"resume-flow-backend/lib/notify"
	"resume-flow-backend/lib/sla"
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

func newTestEngine(t *testing.T) (Provider, *dataset.Store, notify.Provider) {
	store, err := dataset.NewInstance(memkvstore.NewInstance())
	require.Nil(t, err)
	notifier := notify.NewInstance(store, false)
	engine := NewInstance(store, notifier, sla.DefaultBudget())
	return engine, store, notifier
}

func mustUser(t *testing.T, store *dataset.Store, username string) domainmodels.User {
	rec := store.UserByUsername(username)
	require.NotNil(t, rec)
	return *rec
}

func createResume(t *testing.T, engine Provider, hr domainmodels.User) string {
	id, result := engine.CreateResume(CreateResumeData{
		CandidateName: "王小明",
		School:        "清华大学",
		Source:        models.ResumeSourceA,
	}, hr)
	require.True(t, result.OK, result.Message)
	require.NotEmpty(t, id)
	return id
}

// advance walks a pool resume to the given status.
func advance(t *testing.T, engine Provider, store *dataset.Store, resumeID string, target models.ResumeStatus) {
	l2 := mustUser(t, store, "l2_manager_1")
	assistant := mustUser(t, store, "l3_assistant_a")
	expert := mustUser(t, store, "expert_a_1")

	steps := []struct {
		status models.ResumeStatus
		run    func() models.OpResult
	}{
		{models.ResumeStatusPoolL3, func() models.OpResult { return engine.DistributeToL3(resumeID, "dept-l3-a", l2) }},
		{models.ResumeStatusWaitIdentify, func() models.OpResult { return engine.AssignExpert(resumeID, expert.ID, assistant) }},
		{models.ResumeStatusWaitContactInfo, func() models.OpResult { return engine.ExpertIdentify(resumeID, expert, true, "") }},
		{models.ResumeStatusWaitConnection, func() models.OpResult {
			return engine.FillContactInfo(resumeID, "wang@mail.com", "13800000000", l2)
		}},
		{models.ResumeStatusWaitFeedback, func() models.OpResult { return engine.StartConnection(resumeID, expert) }},
	}
	for _, step := range steps {
		result := step.run()
		require.True(t, result.OK, result.Message)
		rec := store.ResumeByID(resumeID)
		require.Equal(t, step.status, rec.Status)
		if rec.Status == target {
			return
		}
	}
	require.Equal(t, target, store.ResumeByID(resumeID).Status)
}

func TestHappyPath(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	hr := mustUser(t, store, "hr")
	expert := mustUser(t, store, "expert_a_1")

	resumeID := createResume(t, engine, hr)

	t.Run(`created into level-2 pool`, func(t *testing.T) {
		rec := store.ResumeByID(resumeID)
		require.Equal(t, models.ResumeStatusPoolL2, rec.Status)
		require.Equal(t, "l2_manager_1", rec.CurrentHandlerName)
		require.Nil(t, rec.SlaDeadline)
	})

	advance(t, engine, store, resumeID, models.ResumeStatusWaitFeedback)

	t.Run(`contact info recorded`, func(t *testing.T) {
		rec := store.ResumeByID(resumeID)
		require.Equal(t, "wang@mail.com", rec.Email)
		require.Equal(t, "13800000000", rec.Phone)
	})

	t.Run(`feedback archives and clears handler`, func(t *testing.T) {
		result := engine.SubmitExpertFeedback(resumeID, "候选人意向强烈，建议跟进", expert)
		require.True(t, result.OK, result.Message)

		rec := store.ResumeByID(resumeID)
		require.Equal(t, models.ResumeStatusArchived, rec.Status)
		require.Empty(t, rec.CurrentHandlerID)
		require.Nil(t, rec.SlaDeadline)
		require.Equal(t, "候选人意向强烈，建议跟进", rec.Remark)
	})

	t.Run(`every step audited`, func(t *testing.T) {
		logs := store.WorkflowLogsByResume(resumeID)
		require.Len(t, logs, 7)
		actions := make([]models.ActionType, 0, len(logs))
		for _, entry := range logs {
			actions = append(actions, entry.Action)
		}
		require.Contains(t, actions, models.ActionUpload)
		require.Contains(t, actions, models.ActionIdentifyYes)
		require.Contains(t, actions, models.ActionFeedback)
	})
}

func TestSlaDeadlines(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	hr := mustUser(t, store, "hr")
	l2 := mustUser(t, store, "l2_manager_1")
	assistant := mustUser(t, store, "l3_assistant_a")
	expert := mustUser(t, store, "expert_a_1")

	resumeID := createResume(t, engine, hr)
	require.True(t, engine.DistributeToL3(resumeID, "dept-l3-a", l2).OK)

	t.Run(`assign sets 24h identify deadline`, func(t *testing.T) {
		require.True(t, engine.AssignExpert(resumeID, expert.ID, assistant).OK)
		rec := store.ResumeByID(resumeID)
		require.NotNil(t, rec.SlaDeadline)
		require.WithinDuration(t, time.Now().Add(24*time.Hour), *rec.SlaDeadline, time.Minute)
	})

	t.Run(`identify pass clears the deadline`, func(t *testing.T) {
		require.True(t, engine.ExpertIdentify(resumeID, expert, true, "").OK)
		rec := store.ResumeByID(resumeID)
		require.Nil(t, rec.SlaDeadline)
		require.False(t, rec.IsOverdue)
	})

	t.Run(`contact info opens 24h connection window`, func(t *testing.T) {
		require.True(t, engine.FillContactInfo(resumeID, "a@b.com", "", l2).OK)
		rec := store.ResumeByID(resumeID)
		require.NotNil(t, rec.SlaDeadline)
		require.WithinDuration(t, time.Now().Add(24*time.Hour), *rec.SlaDeadline, time.Minute)
		require.Equal(t, rec.ExpertID, rec.CurrentHandlerID)
	})

	t.Run(`connection start opens 120h feedback window`, func(t *testing.T) {
		require.True(t, engine.StartConnection(resumeID, expert).OK)
		rec := store.ResumeByID(resumeID)
		require.NotNil(t, rec.SlaDeadline)
		require.WithinDuration(t, time.Now().Add(120*time.Hour), *rec.SlaDeadline, time.Minute)
	})
}

func TestRejectionPath(t *testing.T) {
	engine, store, notifier := newTestEngine(t)
	hr := mustUser(t, store, "hr")
	assistant := mustUser(t, store, "l3_assistant_a")
	expert := mustUser(t, store, "expert_a_1")

	resumeID := createResume(t, engine, hr)
	advance(t, engine, store, resumeID, models.ResumeStatusWaitIdentify)

	t.Run(`identify rejection flows back to assistant`, func(t *testing.T) {
		result := engine.ExpertIdentify(resumeID, expert, false, "方向不匹配")
		require.True(t, result.OK, result.Message)

		rec := store.ResumeByID(resumeID)
		require.Equal(t, models.ResumeStatusRejected, rec.Status)
		require.Equal(t, "不合适：方向不匹配", rec.Remark)
		require.Equal(t, assistant.ID, rec.CurrentHandlerID)
		require.Nil(t, rec.SlaDeadline)
	})

	t.Run(`assistant gets the todo notification`, func(t *testing.T) {
		list := notifier.List(assistant.ID)
		require.NotEmpty(t, list)
		titles := make([]string, 0, len(list))
		for _, rec := range list {
			titles = append(titles, rec.Title)
		}
		require.Contains(t, titles, "待办：候选人不合适待上报")
	})

	t.Run(`report to level-2 returns the resume to the pool`, func(t *testing.T) {
		result := engine.ReportRejectedToL2(resumeID, assistant)
		require.True(t, result.OK, result.Message)
		rec := store.ResumeByID(resumeID)
		require.Equal(t, models.ResumeStatusPoolL2, rec.Status)
	})

	t.Run(`expert binding is sticky across rejection`, func(t *testing.T) {
		rec := store.ResumeByID(resumeID)
		require.Equal(t, expert.ID, rec.ExpertID)
	})

	t.Run(`report is rejected once the resume left the rejected state`, func(t *testing.T) {
		result := engine.ReportRejectedToL2(resumeID, assistant)
		require.False(t, result.OK)
		require.Equal(t, "当前不是待上报状态", result.Message)
		rec := store.ResumeByID(resumeID)
		require.Equal(t, models.ResumeStatusPoolL2, rec.Status)
	})
}

func TestDefaultUnfitReason(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	hr := mustUser(t, store, "hr")
	expert := mustUser(t, store, "expert_a_1")

	resumeID := createResume(t, engine, hr)
	advance(t, engine, store, resumeID, models.ResumeStatusWaitIdentify)

	result := engine.ExpertIdentify(resumeID, expert, false, "")
	require.True(t, result.OK, result.Message)
	rec := store.ResumeByID(resumeID)
	require.Equal(t, "不合适：专家识别不通过", rec.Remark)
}

func TestGuards(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	hr := mustUser(t, store, "hr")
	l2 := mustUser(t, store, "l2_manager_1")
	assistant := mustUser(t, store, "l3_assistant_a")

	t.Run(`missing resume`, func(t *testing.T) {
		result := engine.DistributeToL3("no-such", "dept-l3-a", l2)
		require.False(t, result.OK)
		require.Equal(t, "简历不存在", result.Message)
	})

	t.Run(`empty candidate name`, func(t *testing.T) {
		_, result := engine.CreateResume(CreateResumeData{}, hr)
		require.False(t, result.OK)
	})

	resumeID := createResume(t, engine, hr)

	t.Run(`distribute needs a level-3 department`, func(t *testing.T) {
		result := engine.DistributeToL3(resumeID, "dept-l2", l2)
		require.False(t, result.OK)
		require.Equal(t, "部门不存在", result.Message)
	})

	t.Run(`assign requires the level-3 pool`, func(t *testing.T) {
		expert := mustUser(t, store, "expert_a_1")
		result := engine.AssignExpert(resumeID, expert.ID, assistant)
		require.False(t, result.OK)
		require.Equal(t, "当前状态不允许此操作", result.Message)
	})

	t.Run(`assign rejects a non-expert`, func(t *testing.T) {
		require.True(t, engine.DistributeToL3(resumeID, "dept-l3-a", l2).OK)
		result := engine.AssignExpert(resumeID, assistant.ID, assistant)
		require.False(t, result.OK)
		require.Equal(t, "简历或专家不存在", result.Message)
	})

	t.Run(`only the assigned expert identifies`, func(t *testing.T) {
		expert := mustUser(t, store, "expert_a_1")
		other := mustUser(t, store, "expert_a_2")
		require.True(t, engine.AssignExpert(resumeID, expert.ID, assistant).OK)

		result := engine.ExpertIdentify(resumeID, other, true, "")
		require.False(t, result.OK)
		require.Equal(t, "只有指派的专家才能进行识别", result.Message)

		// admin may identify on the expert's behalf
		admin := mustUser(t, store, "admin")
		result = engine.ExpertIdentify(resumeID, admin, true, "")
		require.True(t, result.OK, result.Message)
	})

	t.Run(`contact info needs email or phone`, func(t *testing.T) {
		result := engine.FillContactInfo(resumeID, "", "", l2)
		require.False(t, result.OK)
		require.Equal(t, "至少需要填写邮箱或电话", result.Message)
	})

	t.Run(`overdue reason only for overdue resumes`, func(t *testing.T) {
		result := engine.SubmitOverdueReason(resumeID, "候选人出差", l2)
		require.False(t, result.OK)
		require.Equal(t, "简历未超期", result.Message)
	})
}

func TestRelease(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	hr := mustUser(t, store, "hr")
	l2 := mustUser(t, store, "l2_manager_1")
	expert := mustUser(t, store, "expert_a_1")

	resumeID := createResume(t, engine, hr)
	advance(t, engine, store, resumeID, models.ResumeStatusWaitConnection)

	t.Run(`release clears every assignment`, func(t *testing.T) {
		result := engine.ReleaseResume(resumeID, l2)
		require.True(t, result.OK, result.Message)

		rec := store.ResumeByID(resumeID)
		require.Equal(t, models.ResumeStatusReleased, rec.Status)
		require.Empty(t, rec.ExpertID)
		require.Empty(t, rec.CurrentHandlerID)
		require.Empty(t, rec.L3DepartmentID)
		require.Nil(t, rec.SlaDeadline)
	})

	t.Run(`terminal resumes cannot be released again`, func(t *testing.T) {
		result := engine.ReleaseResume(resumeID, l2)
		require.False(t, result.OK)
	})

	t.Run(`archived resumes cannot be released`, func(t *testing.T) {
		secondID := createResume(t, engine, hr)
		advance(t, engine, store, secondID, models.ResumeStatusWaitFeedback)
		require.True(t, engine.SubmitExpertFeedback(secondID, "已反馈", expert).OK)

		result := engine.ReleaseResume(secondID, l2)
		require.False(t, result.OK)
	})
}

func TestOverdueEscalation(t *testing.T) {
	engine, store, notifier := newTestEngine(t)
	expert := mustUser(t, store, "expert_a_1")
	assistant := mustUser(t, store, "l3_assistant_a")
	l2 := mustUser(t, store, "l2_manager_1")

	t.Run(`no escalation below three`, func(t *testing.T) {
		engine.IncrementOverdueCount(expert.ID)
		engine.IncrementOverdueCount(expert.ID)
		require.Empty(t, notifier.List(assistant.ID))
		require.Empty(t, notifier.List(l2.ID))
	})

	t.Run(`third overdue escalates expert to assistant and manager`, func(t *testing.T) {
		engine.IncrementOverdueCount(expert.ID)

		got := store.UserByID(expert.ID)
		require.Equal(t, 3, got.OverdueCount)

		assistantInbox := notifier.List(assistant.ID)
		require.Len(t, assistantInbox, 1)
		require.Equal(t, "超期提醒", assistantInbox[0].Title)
		require.Contains(t, assistantInbox[0].Message, "本年超期次数已达 3 次")
		require.Len(t, notifier.List(l2.ID), 1)
	})

	t.Run(`assistant escalates to manager only`, func(t *testing.T) {
		for idx := 0; idx < 3; idx++ {
			engine.IncrementOverdueCount(assistant.ID)
		}
		require.Len(t, notifier.List(l2.ID), 2)
	})
}

func TestUpdateProgress(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	hr := mustUser(t, store, "hr")

	resumeID := createResume(t, engine, hr)
	result := engine.UpdateProgress(resumeID, "已电话初筛", hr)
	require.True(t, result.OK, result.Message)

	rec := store.ResumeByID(resumeID)
	require.Equal(t, "已电话初筛", rec.Remark)

	// logs list newest first
	logs := store.WorkflowLogsByResume(resumeID)
	require.Equal(t, models.ActionProgress, logs[0].Action)
}
