package catalog

import "time"

// PlanType is a subscription tier capping how many classes a student may book
// per calendar month.
type PlanType struct {
	ID                string    `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Description       *string   `db:"description" json:"description,omitempty"`
	MonthlyClassLimit int       `db:"monthly_class_limit" json:"monthlyClassLimit"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
}

type ClassType struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Description    *string   `db:"description" json:"description,omitempty"`
	IntensityLevel *int      `db:"intensity_level" json:"intensityLevel,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

type PlanTypeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	// Older dashboard builds send the limit as classLimit instead of
	// monthlyClassLimit; both are accepted, the newer key wins.
	MonthlyClassLimit int  `json:"monthlyClassLimit" binding:"min=0"`
	ClassLimit        *int `json:"classLimit" binding:"omitempty,min=0"`
}

func (r PlanTypeRequest) normalized() PlanTypeRequest {
	if r.MonthlyClassLimit == 0 && r.ClassLimit != nil {
		r.MonthlyClassLimit = *r.ClassLimit
	}
	return r
}

type ClassTypeRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    *string `json:"description"`
	IntensityLevel *int    `json:"intensityLevel" binding:"omitempty,min=1,max=5"`
}
