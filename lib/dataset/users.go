package dataset

import (
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

func (s *Store) Users() []domainmodels.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domainmodels.User{}, s.users...)
}

func (s *Store) UserByID(id string) *domainmodels.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.ID == id {
			rec := user
			return &rec
		}
	}
	return nil
}

func (s *Store) UserByUsername(username string) *domainmodels.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			rec := user
			return &rec
		}
	}
	return nil
}

// L2Manager returns the single level-2 manager account.
func (s *Store) L2Manager() *domainmodels.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Role == models.UserRoleL2Manager {
			rec := user
			return &rec
		}
	}
	return nil
}

func (s *Store) L3AssistantByDepartment(departmentID string) *domainmodels.User {
	if departmentID == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Role == models.UserRoleL3Assistant && user.DepartmentID == departmentID {
			rec := user
			return &rec
		}
	}
	return nil
}

func (s *Store) AppendUser(rec domainmodels.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]domainmodels.User{}, s.users...), rec)
	if err := s.persist(KeyUsers, next); err != nil {
		return err
	}
	s.users = next
	return nil
}

// UpdateUser applies mutate to a copy of the matched record, persists the
// whole collection and swaps it in. found is false when no user matched.
func (s *Store) UpdateUser(id string, mutate func(*domainmodels.User)) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]domainmodels.User{}, s.users...)
	for idx := range next {
		if next[idx].ID != id {
			continue
		}
		mutate(&next[idx])
		if err = s.persist(KeyUsers, next); err != nil {
			return true, err
		}
		s.users = next
		return true, nil
	}
	return false, nil
}
