package models

type ResumeStatus string

const (
	// ResumeStatusPoolHR is reserved: no transition reaches or leaves it,
	// HR-entered resumes start at POOL_L2.
	ResumeStatusPoolHR          ResumeStatus = "POOL_HR"
	ResumeStatusPoolL2          ResumeStatus = "POOL_L2"
	ResumeStatusPoolL3          ResumeStatus = "POOL_L3"
	ResumeStatusWaitIdentify    ResumeStatus = "WAIT_IDENTIFY"
	ResumeStatusWaitContactInfo ResumeStatus = "WAIT_CONTACT_INFO"
	ResumeStatusWaitConnection  ResumeStatus = "WAIT_CONNECTION"
	ResumeStatusWaitFeedback    ResumeStatus = "WAIT_FEEDBACK"
	ResumeStatusArchived        ResumeStatus = "ARCHIVED"
	ResumeStatusReleased        ResumeStatus = "RELEASED"
	ResumeStatusRejected        ResumeStatus = "REJECTED"
)

var resumeStatusHumanName = map[ResumeStatus]string{
	ResumeStatusPoolHR:          "待分发(HR)",
	ResumeStatusPoolL2:          "待分发(二层)",
	ResumeStatusPoolL3:          "待指派专家",
	ResumeStatusWaitIdentify:    "待识别",
	ResumeStatusWaitContactInfo: "待填联系方式",
	ResumeStatusWaitConnection:  "待建联",
	ResumeStatusWaitFeedback:    "待反馈",
	ResumeStatusArchived:        "已归档",
	ResumeStatusReleased:        "已释放",
	ResumeStatusRejected:        "不识别",
}

func (s ResumeStatus) ToHuman() string {
	if human, exist := resumeStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ResumeStatus) IsValid() bool {
	_, exist := resumeStatusHumanName[s]
	return exist
}

func (s ResumeStatus) IsTerminal() bool {
	return s == ResumeStatusArchived || s == ResumeStatusReleased
}
