package resume

import (
	"context"

	"github.com/pkg/errors"

	"resume-flow-backend/lib/dataset"
	filestorage "resume-flow-backend/lib/file-storage"
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

type Provider interface {
	// ListByRole returns the resume set visible to the user, newest first.
	ListByRole(user domainmodels.User) []domainmodels.Resume
	// GetByID applies the same visibility rules as ListByRole.
	GetByID(resumeID string, user domainmodels.User) *domainmodels.Resume
	// MyTasks returns the non-terminal resumes currently waiting on the user.
	MyTasks(user domainmodels.User) []domainmodels.Resume
	Logs(resumeID string) []domainmodels.WorkflowLog
	// AttachFile stores the original document and records its object path.
	AttachFile(ctx context.Context, resumeID, fileName string, file []byte) models.OpResult
	File(ctx context.Context, resumeID string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   dataset.Instance,
		storage: filestorage.Instance,
	}
}

func NewInstance(store *dataset.Store, storage filestorage.Provider) Provider {
	return impl{
		store:   store,
		storage: storage,
	}
}

type impl struct {
	store   *dataset.Store
	storage filestorage.Provider
}

func (i impl) ListByRole(user domainmodels.User) []domainmodels.Resume {
	list := []domainmodels.Resume{}
	for _, rec := range i.store.Resumes() {
		if visibleTo(rec, user) {
			list = append(list, rec)
		}
	}
	return list
}

func (i impl) GetByID(resumeID string, user domainmodels.User) *domainmodels.Resume {
	rec := i.store.ResumeByID(resumeID)
	if rec == nil || !visibleTo(*rec, user) {
		return nil
	}
	return rec
}

func (i impl) MyTasks(user domainmodels.User) []domainmodels.Resume {
	list := []domainmodels.Resume{}
	for _, rec := range i.store.Resumes() {
		if rec.CurrentHandlerID == user.ID && !rec.Status.IsTerminal() {
			list = append(list, rec)
		}
	}
	return list
}

func (i impl) Logs(resumeID string) []domainmodels.WorkflowLog {
	return i.store.WorkflowLogsByResume(resumeID)
}

func (i impl) AttachFile(ctx context.Context, resumeID, fileName string, file []byte) models.OpResult {
	rec := i.store.ResumeByID(resumeID)
	if rec == nil {
		return models.OpFail("简历不存在")
	}
	objectPath, err := i.storage.UploadResumeFile(ctx, resumeID, fileName, file)
	if err != nil {
		return models.OpFail(err.Error())
	}
	found, err := i.store.UpdateResume(resumeID, func(r *domainmodels.Resume) {
		r.ResumeURL = objectPath
	})
	if err != nil {
		return models.OpFail(err.Error())
	}
	if !found {
		return models.OpFail("简历不存在")
	}
	return models.OpOk("文件已上传")
}

func (i impl) File(ctx context.Context, resumeID string) ([]byte, error) {
	rec := i.store.ResumeByID(resumeID)
	if rec == nil || rec.ResumeURL == "" {
		return nil, errors.New("简历文件不存在")
	}
	return i.storage.GetResumeFile(ctx, rec.ResumeURL)
}

func visibleTo(rec domainmodels.Resume, user domainmodels.User) bool {
	switch user.Role {
	case models.UserRoleAdmin, models.UserRoleHR:
		return true
	case models.UserRoleL2Manager:
		return rec.Status != models.ResumeStatusReleased
	case models.UserRoleL3Assistant:
		return rec.L3DepartmentID == user.DepartmentID &&
			rec.Status != models.ResumeStatusPoolL2 &&
			rec.Status != models.ResumeStatusReleased
	case models.UserRoleExpert:
		return rec.ExpertID == user.ID || rec.CurrentHandlerID == user.ID
	}
	return false
}
