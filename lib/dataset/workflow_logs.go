package dataset

import (
	"sort"

	domainmodels "resume-flow-backend/models/domain"
)

// WorkflowLogsByResume returns the audit trail of one resume, newest first.
func (s *Store) WorkflowLogsByResume(resumeID string) []domainmodels.WorkflowLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := []domainmodels.WorkflowLog{}
	for _, rec := range s.workflowLogs {
		if rec.ResumeID == resumeID {
			list = append(list, rec)
		}
	}
	sort.Slice(list, func(a, b int) bool {
		return list[a].CreatedAt.After(list[b].CreatedAt)
	})
	return list
}

func (s *Store) AppendWorkflowLog(rec domainmodels.WorkflowLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]domainmodels.WorkflowLog{}, s.workflowLogs...), rec)
	if err := s.persist(KeyWorkflowLogs, next); err != nil {
		return err
	}
	s.workflowLogs = next
	return nil
}
