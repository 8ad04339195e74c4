package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	memkvstore "resume-flow-backend/lib/keyval/mem-store"
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

func newTestStore(t *testing.T) *Store {
	store, err := NewInstance(memkvstore.NewInstance())
	require.Nil(t, err)
	return store
}

func TestSeedDefaults(t *testing.T) {
	store := newTestStore(t)

	t.Run(`org tree`, func(t *testing.T) {
		deps := store.Departments()
		require.Len(t, deps, 17)
		require.Len(t, store.DepartmentsByLevel(1), 1)
		require.Len(t, store.DepartmentsByLevel(2), 1)
		require.Len(t, store.DepartmentsByLevel(3), 15)
	})

	t.Run(`default accounts`, func(t *testing.T) {
		// admin + hr + l2 manager + 15 assistants + 30 experts
		require.Len(t, store.Users(), 48)
		admin := store.UserByUsername("admin")
		require.NotNil(t, admin)
		require.Equal(t, models.UserRoleAdmin, admin.Role)
		require.Equal(t, models.UserStatusActive, admin.Status)

		l2 := store.L2Manager()
		require.NotNil(t, l2)
		require.Equal(t, "l2_manager_1", l2.Username)

		assistant := store.L3AssistantByDepartment("dept-l3-a")
		require.NotNil(t, assistant)
		require.Equal(t, models.UserRoleL3Assistant, assistant.Role)
	})

	t.Run(`seed password`, func(t *testing.T) {
		hash, found := store.PasswordHash("hr")
		require.True(t, found)
		require.Equal(t, "202cb962ac59075b964b07152d234b70", hash)
	})
}

func TestResumeCollection(t *testing.T) {
	store := newTestStore(t)
	kv := store.kv

	rec := domainmodels.Resume{
		ID:            "res-1",
		CandidateName: "张三",
		Source:        models.ResumeSourceA,
		Status:        models.ResumeStatusPoolL2,
		Skills:        []string{"Go", "Python"},
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	require.Nil(t, store.AppendResume(rec))

	t.Run(`reads hand out copies`, func(t *testing.T) {
		got := store.ResumeByID("res-1")
		require.NotNil(t, got)
		got.CandidateName = "改名"
		got.Skills[0] = "Java"

		again := store.ResumeByID("res-1")
		require.Equal(t, "张三", again.CandidateName)
		require.Equal(t, "Go", again.Skills[0])
	})

	t.Run(`update mutates and persists`, func(t *testing.T) {
		found, err := store.UpdateResume("res-1", func(r *domainmodels.Resume) {
			r.Status = models.ResumeStatusPoolL3
		})
		require.Nil(t, err)
		require.True(t, found)

		reopened, err := NewInstance(kv)
		require.Nil(t, err)
		got := reopened.ResumeByID("res-1")
		require.NotNil(t, got)
		require.Equal(t, models.ResumeStatusPoolL3, got.Status)
	})

	t.Run(`update of missing id`, func(t *testing.T) {
		found, err := store.UpdateResume("no-such", func(r *domainmodels.Resume) {})
		require.Nil(t, err)
		require.False(t, found)
	})

	t.Run(`append prepends`, func(t *testing.T) {
		second := rec
		second.ID = "res-2"
		require.Nil(t, store.AppendResume(second))
		list := store.Resumes()
		require.Equal(t, "res-2", list[0].ID)
	})
}

func TestNotificationCollection(t *testing.T) {
	store := newTestStore(t)

	push := func(id, userID string) domainmodels.Notification {
		return domainmodels.Notification{
			ID:        id,
			UserID:    userID,
			Title:     "测试通知",
			Type:      models.NotificationTypeInfo,
			CreatedAt: time.Now(),
		}
	}
	require.Nil(t, store.AppendNotifications(push("n-1", "user-hr"), push("n-2", "user-hr"), push("n-3", "user-admin")))

	t.Run(`scoped by user`, func(t *testing.T) {
		require.Len(t, store.NotificationsByUser("user-hr"), 2)
		require.Len(t, store.NotificationsByUser("user-admin"), 1)
		require.Empty(t, store.NotificationsByUser(""))
	})

	t.Run(`mark read`, func(t *testing.T) {
		require.Equal(t, 2, store.UnreadNotificationCount("user-hr"))
		found, err := store.MarkNotificationRead("n-1", "user-hr")
		require.Nil(t, err)
		require.True(t, found)
		require.Equal(t, 1, store.UnreadNotificationCount("user-hr"))

		// someone else's notification stays untouched
		found, err = store.MarkNotificationRead("n-3", "user-hr")
		require.Nil(t, err)
		require.False(t, found)
	})

	t.Run(`mark all read`, func(t *testing.T) {
		require.Nil(t, store.MarkAllNotificationsRead("user-hr"))
		require.Equal(t, 0, store.UnreadNotificationCount("user-hr"))
		require.Equal(t, 1, store.UnreadNotificationCount("user-admin"))
	})

	t.Run(`delete`, func(t *testing.T) {
		found, err := store.DeleteNotification("n-2", "user-hr")
		require.Nil(t, err)
		require.True(t, found)
		require.Len(t, store.NotificationsByUser("user-hr"), 1)
	})
}

func TestUserCollection(t *testing.T) {
	store := newTestStore(t)

	t.Run(`append and password mapping`, func(t *testing.T) {
		rec := domainmodels.User{
			ID:       "user-new",
			Username: "expert_new",
			Role:     models.UserRoleExpert,
			Status:   models.UserStatusActive,
		}
		require.Nil(t, store.AppendUser(rec))
		require.Nil(t, store.SetPasswordHash("expert_new", "deadbeef"))

		hash, found := store.PasswordHash("expert_new")
		require.True(t, found)
		require.Equal(t, "deadbeef", hash)
	})

	t.Run(`overdue counter update`, func(t *testing.T) {
		found, err := store.UpdateUser("user-hr", func(u *domainmodels.User) {
			u.OverdueCount = 2
			u.OverdueCountYear = 2025
		})
		require.Nil(t, err)
		require.True(t, found)
		got := store.UserByID("user-hr")
		require.Equal(t, 2, got.OverdueCount)
	})
}
