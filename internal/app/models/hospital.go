package models

import (
	"directory-service/internal/pkg/directory"
)

type Hospital struct {
	ID           string      `json:"id" bson:"_id"`
	HospitalName string      `json:"hospitalName" bson:"hospitalName"`
	HospitalType string      `json:"hospitalType,omitempty" bson:"hospitalType,omitempty"`
	Location     string      `json:"location,omitempty" bson:"location,omitempty"`
	District     string      `json:"district" bson:"district"`
	Phone        string      `json:"phone,omitempty" bson:"phone,omitempty"`
	AltPhone     string      `json:"altPhone,omitempty" bson:"altPhone,omitempty"`
	Contact      string      `json:"contact,omitempty" bson:"contact,omitempty"`
	Specialties  Specialties `json:"specialties,omitempty" bson:"specialties,omitempty"`
	Description  string      `json:"description,omitempty" bson:"description,omitempty"`
}

func (h Hospital) Facets() directory.Facets {
	return directory.Facets{
		Key:             h.ID,
		Name:            h.HospitalName,
		District:        h.District,
		Specializations: h.Specialties,
		SpecialtyMatch:  directory.MatchContains,
	}
}
