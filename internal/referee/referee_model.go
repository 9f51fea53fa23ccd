package referee

import "github.com/DhavalSuthar-24/matchday/internal/models"

type Referee struct {
	models.Model
	Name string `json:"name" gorm:"size:50;not null"`
	models.Contact
}

func (Referee) TableName() string {
	return "referees"
}

func (r Referee) String() string {
	return r.Name
}
