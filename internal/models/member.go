package models

// CoxExperience classifies how much coxing experience a member has. The values
// mirror the options configured in the members database.
type CoxExperience string

const (
	CoxNovice          CoxExperience = "Novice"
	CoxNoviceShortTerm CoxExperience = "Novice (less than 1 term)"
	CoxExperienced     CoxExperience = "Experienced"
	CoxSenior          CoxExperience = "Senior"
)

// Member is a club member as stored in the members database.
type Member struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	MemberType    string        `json:"memberType"`
	CoxExperience CoxExperience `json:"coxExperience,omitempty"`
}
