package dataset

import (
	"fmt"
	"strings"
	"time"

	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

// thirdLevelCodes enumerates the level-3 leaf teams of the seeded org tree.
const thirdLevelCodes = "ABCDEFGHIJKLMNO"

const seedPasswordHash = "202cb962ac59075b964b07152d234b70" // md5("123")

var seedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func seedDepartments() []domainmodels.Department {
	list := []domainmodels.Department{
		{ID: "dept-coe", Name: "招聘COE", Level: 1, CreatedAt: seedTime},
		{ID: "dept-l2", Name: "二层", Level: 2, ParentID: "dept-coe", ParentName: "招聘COE", CreatedAt: seedTime},
	}
	for _, code := range strings.Split(thirdLevelCodes, "") {
		list = append(list, domainmodels.Department{
			ID:         fmt.Sprintf("dept-l3-%s", strings.ToLower(code)),
			Name:       fmt.Sprintf("三层部门%s", code),
			Level:      3,
			ParentID:   "dept-l2",
			ParentName: "二层",
			CreatedAt:  seedTime,
		})
	}
	return list
}

func seedUsers() []domainmodels.User {
	list := []domainmodels.User{
		{
			ID: "user-admin", Username: "admin", Email: "admin@company.com",
			Role: models.UserRoleAdmin, DepartmentID: "dept-coe", DepartmentName: "招聘COE",
			Status: models.UserStatusActive, CreatedAt: seedTime,
		},
		{
			ID: "user-hr", Username: "hr", Email: "hr@company.com",
			Role: models.UserRoleHR, DepartmentID: "dept-coe", DepartmentName: "招聘COE",
			Status: models.UserStatusActive, CreatedAt: seedTime,
		},
		{
			ID: "user-l2-1", Username: "l2_manager_1", Email: "l2m1@company.com",
			Role: models.UserRoleL2Manager, DepartmentID: "dept-l2", DepartmentName: "二层",
			Status: models.UserStatusActive, CreatedAt: seedTime,
		},
	}
	for _, code := range strings.Split(strings.ToLower(thirdLevelCodes), "") {
		deptID := fmt.Sprintf("dept-l3-%s", code)
		deptName := fmt.Sprintf("三层部门%s", strings.ToUpper(code))
		list = append(list, domainmodels.User{
			ID:       fmt.Sprintf("user-l3-%s", code),
			Username: fmt.Sprintf("l3_assistant_%s", code),
			Email:    fmt.Sprintf("l3_%s@company.com", code),
			Role:     models.UserRoleL3Assistant, DepartmentID: deptID, DepartmentName: deptName,
			Status: models.UserStatusActive, CreatedAt: seedTime,
		})
		for num := 1; num <= 2; num++ {
			list = append(list, domainmodels.User{
				ID:       fmt.Sprintf("user-exp-%s-%d", code, num),
				Username: fmt.Sprintf("expert_%s_%d", code, num),
				Email:    fmt.Sprintf("expert_%s_%d@company.com", code, num),
				Role:     models.UserRoleExpert, DepartmentID: deptID, DepartmentName: deptName,
				Status: models.UserStatusActive, CreatedAt: seedTime,
			})
		}
	}
	return list
}

func (s *Store) seedDefaults() error {
	if len(s.departments) == 0 {
		s.departments = seedDepartments()
	}
	if len(s.users) == 0 {
		s.users = seedUsers()
	}
	if len(s.passwords) == 0 {
		s.passwords = map[string]string{}
		for _, user := range s.users {
			s.passwords[user.Username] = seedPasswordHash
		}
	}
	if err := s.persist(KeyDepartments, s.departments); err != nil {
		return err
	}
	if err := s.persist(KeyUsers, s.users); err != nil {
		return err
	}
	return s.persist(KeyPasswords, s.passwords)
}
