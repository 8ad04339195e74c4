package dataset

import (
	domainmodels "resume-flow-backend/models/domain"
)

func (s *Store) Resumes() []domainmodels.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]domainmodels.Resume, 0, len(s.resumes))
	for _, rec := range s.resumes {
		list = append(list, rec.Clone())
	}
	return list
}

func (s *Store) ResumeByID(id string) *domainmodels.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.resumes {
		if rec.ID == id {
			clone := rec.Clone()
			return &clone
		}
	}
	return nil
}

// AppendResume prepends the record so freshly entered resumes list first.
func (s *Store) AppendResume(rec domainmodels.Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]domainmodels.Resume{rec.Clone()}, s.resumes...)
	if err := s.persist(KeyResumes, next); err != nil {
		return err
	}
	s.resumes = next
	return nil
}

func (s *Store) UpdateResume(id string, mutate func(*domainmodels.Resume)) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domainmodels.Resume, 0, len(s.resumes))
	for _, rec := range s.resumes {
		next = append(next, rec.Clone())
	}
	for idx := range next {
		if next[idx].ID != id {
			continue
		}
		mutate(&next[idx])
		if err = s.persist(KeyResumes, next); err != nil {
			return true, err
		}
		s.resumes = next
		return true, nil
	}
	return false, nil
}
