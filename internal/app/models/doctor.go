package models

import (
	"directory-service/internal/pkg/directory"
)

type Doctor struct {
	ID              string   `json:"id" bson:"_id"`
	FullName        string   `json:"fullName" bson:"fullName"`
	Specialization  string   `json:"specialization" bson:"specialization"`
	HospitalName    string   `json:"hospitalName" bson:"hospitalName"`
	HospitalID      string   `json:"hospitalId,omitempty" bson:"hospitalId,omitempty"`
	District        string   `json:"district" bson:"district"`
	Email           string   `json:"email,omitempty" bson:"email,omitempty"`
	Rating          *float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	TotalReviews    *int     `json:"totalReviews,omitempty" bson:"totalReviews,omitempty"`
	ConsultationFee Fee      `json:"consultationFee,omitempty" bson:"consultationFee,omitempty"`
	IsAvailable     *bool    `json:"isAvailable,omitempty" bson:"isAvailable,omitempty"`
}

func (d Doctor) Facets() directory.Facets {
	return directory.Facets{
		Key:             d.ID,
		Name:            d.FullName,
		District:        d.District,
		Specializations: []string{d.Specialization},
		SpecialtyMatch:  directory.MatchExact,
	}
}
