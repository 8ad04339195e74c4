package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"resume-flow-backend/lib/dataset"
	xlsexport "resume-flow-backend/lib/export/xls"
	memkvstore "resume-flow-backend/lib/keyval/mem-store"
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

func newTestHandler(t *testing.T) (Provider, *dataset.Store) {
	store, err := dataset.NewInstance(memkvstore.NewInstance())
	require.Nil(t, err)
	return NewInstance(store, xlsexport.NewInstance()), store
}

func seedResume(t *testing.T, store *dataset.Store, id string, status models.ResumeStatus, source models.ResumeSource, dept string, overdue bool) {
	rec := domainmodels.Resume{
		ID:            id,
		CandidateName: "候选人" + id,
		Status:        status,
		Source:        source,
		IsOverdue:     overdue,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if dept != "" {
		rec.L3DepartmentID = "dept-l3-" + dept
		rec.L3DepartmentName = "三层部门" + dept
	}
	require.Nil(t, store.AppendResume(rec))
}

func TestSummary(t *testing.T) {
	handler, store := newTestHandler(t)

	seedResume(t, store, "r1", models.ResumeStatusPoolL2, models.ResumeSourceA, "", false)
	seedResume(t, store, "r2", models.ResumeStatusWaitIdentify, models.ResumeSourceA, "a", true)
	seedResume(t, store, "r3", models.ResumeStatusWaitFeedback, models.ResumeSourceB, "a", false)
	seedResume(t, store, "r4", models.ResumeStatusReleased, models.ResumeSourceC, "b", false)
	seedResume(t, store, "r5", models.ResumeStatusArchived, models.ResumeSourceB, "b", false)

	admin := *store.UserByUsername("admin")
	summary := handler.Summary(admin)

	t.Run(`by status`, func(t *testing.T) {
		require.Equal(t, 1, summary.ByStatus["POOL_L2"])
		require.Equal(t, 1, summary.ByStatus["WAIT_IDENTIFY"])
		require.Equal(t, 1, summary.ByStatus["RELEASED"])
	})

	t.Run(`by source with released slice`, func(t *testing.T) {
		require.Equal(t, 2, summary.BySource["A"])
		require.Equal(t, 2, summary.BySource["B"])
		require.Equal(t, 1, summary.ReleasedBySource["C"])
		require.Empty(t, summary.ReleasedBySource["A"])
	})

	t.Run(`by department`, func(t *testing.T) {
		statA := summary.ByDepartment["三层部门a"]
		require.Equal(t, 2, statA.Total)
		require.Equal(t, 1, statA.Overdue)
		require.Equal(t, 2, statA.InProgress)

		statB := summary.ByDepartment["三层部门b"]
		require.Equal(t, 2, statB.Total)
		require.Equal(t, 0, statB.InProgress)

		require.Equal(t, 1, summary.ByDepartment["未分配"].Total)
	})
}

func TestSummaryScoping(t *testing.T) {
	handler, store := newTestHandler(t)

	seedResume(t, store, "r1", models.ResumeStatusWaitIdentify, models.ResumeSourceA, "a", false)
	seedResume(t, store, "r2", models.ResumeStatusWaitIdentify, models.ResumeSourceA, "b", false)

	assistant := *store.UserByUsername("l3_assistant_a")
	summary := handler.Summary(assistant)
	require.Equal(t, 1, summary.ByStatus["WAIT_IDENTIFY"])
	require.Len(t, summary.ByDepartment, 1)
}

func TestOverdueUsers(t *testing.T) {
	handler, store := newTestHandler(t)
	currentYear := time.Now().Year()

	bump := func(username string, count, year int) {
		user := store.UserByUsername(username)
		require.NotNil(t, user)
		found, err := store.UpdateUser(user.ID, func(u *domainmodels.User) {
			u.OverdueCount = count
			u.OverdueCountYear = year
		})
		require.Nil(t, err)
		require.True(t, found)
	}
	bump("expert_a_1", 5, currentYear)
	bump("expert_b_1", 2, currentYear)
	bump("l3_assistant_a", 3, currentYear)
	bump("expert_c_1", 9, currentYear-1) // stale year is invisible

	t.Run(`sorted by count for the manager`, func(t *testing.T) {
		l2 := *store.UserByUsername("l2_manager_1")
		list := handler.Summary(l2).OverdueUsers
		require.Len(t, list, 3)
		require.Equal(t, "expert_a_1", list[0].Username)
		require.Equal(t, 5, list[0].Count)
		require.Equal(t, "l3_assistant_a", list[1].Username)
	})

	t.Run(`assistant limited to own department`, func(t *testing.T) {
		assistant := *store.UserByUsername("l3_assistant_a")
		list := handler.Summary(assistant).OverdueUsers
		require.Len(t, list, 2)
		for _, rec := range list {
			require.Equal(t, "dept-l3-a", store.UserByID(rec.UserID).DepartmentID)
		}
	})
}

func TestExport(t *testing.T) {
	handler, store := newTestHandler(t)
	seedResume(t, store, "r1", models.ResumeStatusPoolL2, models.ResumeSourceA, "", false)

	admin := *store.UserByUsername("admin")
	buf, err := handler.Export(admin)
	require.Nil(t, err)
	require.NotZero(t, buf.Len())
}
