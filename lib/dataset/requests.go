package dataset

import (
	"sort"

	domainmodels "resume-flow-backend/models/domain"
)

// Requests returns account approval requests, newest first.
func (s *Store) Requests() []domainmodels.AccountApprovalRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := append([]domainmodels.AccountApprovalRequest{}, s.requests...)
	sort.Slice(list, func(a, b int) bool {
		return list[a].CreatedAt.After(list[b].CreatedAt)
	})
	return list
}

func (s *Store) RequestByID(id string) *domainmodels.AccountApprovalRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.requests {
		if rec.ID == id {
			clone := rec
			return &clone
		}
	}
	return nil
}

func (s *Store) AppendRequest(rec domainmodels.AccountApprovalRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]domainmodels.AccountApprovalRequest{rec}, s.requests...)
	if err := s.persist(KeyRequests, next); err != nil {
		return err
	}
	s.requests = next
	return nil
}

func (s *Store) UpdateRequest(id string, mutate func(*domainmodels.AccountApprovalRequest)) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]domainmodels.AccountApprovalRequest{}, s.requests...)
	for idx := range next {
		if next[idx].ID != id {
			continue
		}
		mutate(&next[idx])
		if err = s.persist(KeyRequests, next); err != nil {
			return true, err
		}
		s.requests = next
		return true, nil
	}
	return false, nil
}
