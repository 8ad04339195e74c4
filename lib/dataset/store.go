package dataset

import (
	"sync"

	"github.com/pkg/errors"

	"resume-flow-backend/lib/keyval"
	domainmodels "resume-flow-backend/models/domain"
)

// Collection keys as persisted by the keyval backend.
const (
	KeyUsers         = "rf_users"
	KeyDepartments   = "rf_departments"
	KeyResumes       = "rf_resumes"
	KeyNotifications = "rf_notifications"
	KeyRequests      = "rf_requests"
	KeyPasswords     = "rf_passwords"
	KeyWorkflowLogs  = "rf_workflow_logs"
)

var Instance *Store

// Store owns every entity collection. All reads hand out defensive copies
// and every write replaces the whole collection and writes it through to
// the keyval backend before swapping it in, so a failed persist leaves the
// in-memory state untouched.
type Store struct {
	mu sync.RWMutex
	kv keyval.Provider

	users         []domainmodels.User
	departments   []domainmodels.Department
	resumes       []domainmodels.Resume
	notifications []domainmodels.Notification
	requests      []domainmodels.AccountApprovalRequest
	passwords     map[string]string
	workflowLogs  []domainmodels.WorkflowLog
}

func NewHandler(kv keyval.Provider) error {
	store, err := NewInstance(kv)
	if err != nil {
		return err
	}
	Instance = store
	return nil
}

// NewInstance loads every collection from the backend, seeding the org
// structure and default accounts on first run.
func NewInstance(kv keyval.Provider) (*Store, error) {
	s := &Store{
		kv:        kv,
		passwords: map[string]string{},
	}
	if err := s.loadAll(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) loadAll() error {
	foundUsers, err := s.kv.Load(KeyUsers, &s.users)
	if err != nil {
		return err
	}
	foundDeps, err := s.kv.Load(KeyDepartments, &s.departments)
	if err != nil {
		return err
	}
	foundPasswords, err := s.kv.Load(KeyPasswords, &s.passwords)
	if err != nil {
		return err
	}
	if _, err = s.kv.Load(KeyResumes, &s.resumes); err != nil {
		return err
	}
	if _, err = s.kv.Load(KeyNotifications, &s.notifications); err != nil {
		return err
	}
	if _, err = s.kv.Load(KeyRequests, &s.requests); err != nil {
		return err
	}
	if _, err = s.kv.Load(KeyWorkflowLogs, &s.workflowLogs); err != nil {
		return err
	}
	if !foundDeps || !foundUsers || !foundPasswords {
		if err = s.seedDefaults(); err != nil {
			return errors.Wrap(err, "初始化默认数据失败")
		}
	}
	return nil
}

func (s *Store) persist(key string, value interface{}) error {
	if err := s.kv.Save(key, value); err != nil {
		return errors.Wrapf(err, "写入存储失败 %v", key)
	}
	return nil
}
