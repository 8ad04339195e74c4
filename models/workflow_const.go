package models

type ActionType string

const (
	ActionUpload        ActionType = "UPLOAD"
	ActionDistributeL3  ActionType = "DISTRIBUTE_L3"
	ActionAssignExpert  ActionType = "ASSIGN_EXPERT"
	ActionIdentifyYes   ActionType = "IDENTIFY_YES"
	ActionIdentifyNo    ActionType = "IDENTIFY_NO"
	ActionFillContact   ActionType = "FILL_CONTACT"
	ActionConnectStart  ActionType = "CONNECT_START"
	ActionFeedback      ActionType = "FEEDBACK"
	ActionReportL2      ActionType = "REPORT_L2"
	ActionRelease       ActionType = "RELEASE"
	ActionProgress      ActionType = "PROGRESS"
	ActionOverdueReason ActionType = "OVERDUE_REASON"
)

var actionHumanName = map[ActionType]string{
	ActionUpload:        "HR录入",
	ActionDistributeL3:  "二层分发",
	ActionAssignExpert:  "指派专家",
	ActionIdentifyYes:   "专家识别-通过",
	ActionIdentifyNo:    "专家识别-不通过",
	ActionFillContact:   "填写联系方式",
	ActionConnectStart:  "开始建联",
	ActionFeedback:      "提交反馈",
	ActionReportL2:      "上报二层",
	ActionRelease:       "释放简历",
	ActionProgress:      "更新进展",
	ActionOverdueReason: "填写超期原因",
}

func (a ActionType) ToHuman() string {
	if human, exist := actionHumanName[a]; exist {
		return human
	}
	return string(a)
}

type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "INFO"
	NotificationTypeWarning NotificationType = "WARNING"
	NotificationTypeUrgent  NotificationType = "URGENT"
	NotificationTypeSuccess NotificationType = "SUCCESS"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

type RequestType string

const (
	RequestTypeCreateL3Assistant RequestType = "CREATE_L3_ASSISTANT"
	RequestTypeCreateExpert      RequestType = "CREATE_EXPERT"
)

func (t RequestType) TargetRoleHuman() string {
	if t == RequestTypeCreateExpert {
		return "专家"
	}
	return "三层助理"
}
