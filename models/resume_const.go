package models

type ResumeSource string

const (
	ResumeSourceA ResumeSource = "A"
	ResumeSourceB ResumeSource = "B"
	ResumeSourceC ResumeSource = "C"
	ResumeSourceD ResumeSource = "D"
	ResumeSourceE ResumeSource = "E"
	ResumeSourceF ResumeSource = "F"
	ResumeSourceG ResumeSource = "G"
)

var sourceHumanName = map[ResumeSource]string{
	ResumeSourceA: "内部推荐",
	ResumeSourceB: "领英",
	ResumeSourceC: "招聘网站",
	ResumeSourceD: "猎头",
	ResumeSourceE: "招聘会",
	ResumeSourceF: "直接投递",
	ResumeSourceG: "其他",
}

func (s ResumeSource) ToHuman() string {
	if human, exist := sourceHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ResumeSource) IsValid() bool {
	_, exist := sourceHumanName[s]
	return exist
}

type SchoolTag string

const (
	SchoolTagC9                 SchoolTag = "C9"
	SchoolTagDomesticTarget     SchoolTag = "DOMESTIC_TARGET"
	SchoolTagDomesticGeneral    SchoolTag = "DOMESTIC_GENERAL"
	SchoolTagDomesticSpecial    SchoolTag = "DOMESTIC_SPECIAL"
	SchoolTagOverseasTopHarvard SchoolTag = "OVERSEAS_TOP50_HARVARD"
	SchoolTagOverseasTop50      SchoolTag = "OVERSEAS_TOP50"
	SchoolTagOverseasGeneral    SchoolTag = "OVERSEAS_GENERAL"
	SchoolTagOverseasSpecial    SchoolTag = "OVERSEAS_SPECIAL"
	SchoolTagNonTarget          SchoolTag = "NON_TARGET"
)

type ExcellenceTag string

const (
	ExcellenceTagTopClass      ExcellenceTag = "TOP_CLASS"
	ExcellenceTagTopJournal    ExcellenceTag = "TOP_JOURNAL"
	ExcellenceTagTopConference ExcellenceTag = "TOP_CONFERENCE"
	ExcellenceTagCompetition   ExcellenceTag = "COMPETITION"
)

type EducationLevel string

const (
	EducationLevelPhd      EducationLevel = "PHD"
	EducationLevelMaster   EducationLevel = "MASTER"
	EducationLevelBachelor EducationLevel = "BACHELOR"
)

type RecruitmentScenario string

const (
	ScenarioDomesticBachelorMaster RecruitmentScenario = "DOMESTIC_BACHELOR_MASTER"
	ScenarioDomesticPhd            RecruitmentScenario = "DOMESTIC_PHD"
	ScenarioOverseasBachelorMaster RecruitmentScenario = "OVERSEAS_BACHELOR_MASTER"
	ScenarioOverseasPhd            RecruitmentScenario = "OVERSEAS_PHD"
)

var scenarioHumanName = map[RecruitmentScenario]string{
	ScenarioDomesticBachelorMaster: "国内本硕",
	ScenarioDomesticPhd:            "国内博士",
	ScenarioOverseasBachelorMaster: "海外本硕",
	ScenarioOverseasPhd:            "海外博士",
}

func (s RecruitmentScenario) ToHuman() string {
	if human, exist := scenarioHumanName[s]; exist {
		return human
	}
	return string(s)
}

type CandidateType string

const (
	CandidateTypeGraduate CandidateType = "GRADUATE"
	CandidateTypeIntern   CandidateType = "INTERN"
)

func (c CandidateType) ToHuman() string {
	switch c {
	case CandidateTypeGraduate:
		return "应届生"
	case CandidateTypeIntern:
		return "实习生"
	}
	return string(c)
}
