package notify

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"resume-flow-backend/lib/dataset"
	smtpclient "resume-flow-backend/lib/smtp"
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

// PushData describes one notification to emit for one user.
type PushData struct {
	UserID         string
	ResumeID       string
	ResumeName     string
	Title          string
	Message        string
	Type           models.NotificationType
	Link           string
	CurrentHandler string
	CurrentStage   string
	OverdueTime    string
}

type Provider interface {
	// Push appends the notification. Delivery is a side effect of a
	// transition: failures are logged, never propagated to the caller.
	Push(data PushData)
	List(userID string) []domainmodels.Notification
	UnreadCount(userID string) int
	MarkRead(id, userID string) models.OpResult
	MarkAllRead(userID string) models.OpResult
	Delete(id, userID string) models.OpResult
}

var Instance Provider

func NewHandler(emailEnabled bool) {
	Instance = impl{
		store:        dataset.Instance,
		emailEnabled: emailEnabled,
	}
}

func NewInstance(store *dataset.Store, emailEnabled bool) Provider {
	return impl{
		store:        store,
		emailEnabled: emailEnabled,
	}
}

type impl struct {
	store        *dataset.Store
	emailEnabled bool
}

func (i impl) getLogger(userID string) *log.Entry {
	return log.WithField("user_id", userID)
}

func (i impl) Push(data PushData) {
	logger := i.getLogger(data.UserID)
	if data.UserID == "" {
		logger.Warn("通知缺少接收人，已跳过")
		return
	}
	ntype := data.Type
	if ntype == "" {
		ntype = models.NotificationTypeInfo
	}
	rec := domainmodels.Notification{
		ID:             uuid.NewString(),
		UserID:         data.UserID,
		ResumeID:       data.ResumeID,
		ResumeName:     data.ResumeName,
		Title:          data.Title,
		Message:        data.Message,
		Type:           ntype,
		CurrentHandler: data.CurrentHandler,
		CurrentStage:   data.CurrentStage,
		OverdueTime:    data.OverdueTime,
		Link:           data.Link,
		CreatedAt:      time.Now(),
	}
	if err := i.store.AppendNotifications(rec); err != nil {
		logger.WithError(err).Error("通知保存失败")
		return
	}
	if i.emailEnabled {
		i.sendEmail(rec)
	}
}

func (i impl) sendEmail(rec domainmodels.Notification) {
	logger := i.getLogger(rec.UserID)
	user := i.store.UserByID(rec.UserID)
	if user == nil || user.Email == "" {
		return
	}
	if smtpclient.Instance == nil {
		return
	}
	err := smtpclient.Instance.SendEMail("resume-flow", user.Email, rec.Message, rec.Title)
	if err != nil {
		logger.WithError(err).Error("通知邮件发送失败")
	}
}

func (i impl) List(userID string) []domainmodels.Notification {
	return i.store.NotificationsByUser(userID)
}

func (i impl) UnreadCount(userID string) int {
	return i.store.UnreadNotificationCount(userID)
}

func (i impl) MarkRead(id, userID string) models.OpResult {
	found, err := i.store.MarkNotificationRead(id, userID)
	if err != nil {
		return models.OpFail(err.Error())
	}
	if !found {
		return models.OpFail("通知不存在")
	}
	return models.OpOk("已读")
}

func (i impl) MarkAllRead(userID string) models.OpResult {
	if err := i.store.MarkAllNotificationsRead(userID); err != nil {
		return models.OpFail(err.Error())
	}
	return models.OpOk("全部已读")
}

func (i impl) Delete(id, userID string) models.OpResult {
	found, err := i.store.DeleteNotification(id, userID)
	if err != nil {
		return models.OpFail(err.Error())
	}
	if !found {
		return models.OpFail("通知不存在")
	}
	return models.OpOk("已删除")
}
