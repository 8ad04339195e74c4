package analytics

import (
	"bytes"
	"sort"
	"time"

	"resume-flow-backend/lib/dataset"
	xlsexport "resume-flow-backend/lib/export/xls"
	"resume-flow-backend/models"
	analyticsapimodels "resume-flow-backend/models/api/analytics"
	domainmodels "resume-flow-backend/models/domain"
)

const unassignedDepartment = "未分配"

type Provider interface {
	// Summary reduces the viewer-visible resume set in a single pass.
	Summary(viewer domainmodels.User) analyticsapimodels.Summary
	Export(viewer domainmodels.User) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    dataset.Instance,
		exporter: xlsexport.Instance,
	}
}

func NewInstance(store *dataset.Store, exporter xlsexport.Provider) Provider {
	return impl{
		store:    store,
		exporter: exporter,
	}
}

type impl struct {
	store    *dataset.Store
	exporter xlsexport.Provider
}

func (i impl) Summary(viewer domainmodels.User) analyticsapimodels.Summary {
	summary := analyticsapimodels.Summary{
		ByStatus:         map[string]int{},
		BySource:         map[string]int{},
		ByDepartment:     map[string]analyticsapimodels.DepartmentStat{},
		ReleasedBySource: map[string]int{},
		OverdueUsers:     []analyticsapimodels.OverdueUser{},
	}
	for _, rec := range i.store.Resumes() {
		if viewer.Role == models.UserRoleL3Assistant && rec.L3DepartmentID != viewer.DepartmentID {
			continue
		}
		summary.ByStatus[string(rec.Status)]++
		summary.BySource[string(rec.Source)]++
		if rec.Status == models.ResumeStatusReleased {
			summary.ReleasedBySource[string(rec.Source)]++
		}
		deptName := rec.L3DepartmentName
		if deptName == "" {
			deptName = unassignedDepartment
		}
		stat := summary.ByDepartment[deptName]
		stat.Total++
		if rec.IsOverdue {
			stat.Overdue++
		}
		if !rec.Status.IsTerminal() {
			stat.InProgress++
		}
		summary.ByDepartment[deptName] = stat
	}
	summary.OverdueUsers = i.overdueUsers(viewer)
	return summary
}

func (i impl) Export(viewer domainmodels.User) (*bytes.Buffer, error) {
	return i.exporter.ExportAnalytics(i.Summary(viewer))
}

func (i impl) overdueUsers(viewer domainmodels.User) []analyticsapimodels.OverdueUser {
	currentYear := time.Now().Year()
	list := []analyticsapimodels.OverdueUser{}
	for _, user := range i.store.Users() {
		if user.OverdueCount == 0 || user.OverdueCountYear != currentYear {
			continue
		}
		switch viewer.Role {
		case models.UserRoleL3Assistant:
			if user.DepartmentID != viewer.DepartmentID {
				continue
			}
		case models.UserRoleL2Manager:
			if user.Role != models.UserRoleL3Assistant && user.Role != models.UserRoleExpert {
				continue
			}
		}
		list = append(list, analyticsapimodels.OverdueUser{
			UserID:         user.ID,
			Username:       user.Username,
			DisplayName:    user.DisplayName,
			DepartmentName: user.DepartmentName,
			Role:           user.Role,
			RoleHuman:      user.Role.ToHuman(),
			Count:          user.OverdueCount,
		})
	}
	sort.SliceStable(list, func(a, b int) bool {
		return list[a].Count > list[b].Count
	})
	return list
}
