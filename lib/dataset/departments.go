package dataset

import (
	domainmodels "resume-flow-backend/models/domain"
)

func (s *Store) Departments() []domainmodels.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domainmodels.Department{}, s.departments...)
}

func (s *Store) DepartmentByID(id string) *domainmodels.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, dept := range s.departments {
		if dept.ID == id {
			rec := dept
			return &rec
		}
	}
	return nil
}

func (s *Store) DepartmentsByLevel(level int) []domainmodels.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := []domainmodels.Department{}
	for _, dept := range s.departments {
		if dept.Level == level {
			list = append(list, dept)
		}
	}
	return list
}
