package models

// AgentModel is an entry in the public agents roster, managed from the
// back office. Distinct from UserModel: not every roster agent has a login.
type AgentModel struct {
	Base
	Name     string `json:"name"  gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Phone    string `json:"phone"`
	Title    string `json:"title"`
	PhotoURL string `json:"photo_url"`
	Bio      string `json:"bio"   gorm:"type:text"`
}

func (AgentModel) TableName() string { return "agents" }
