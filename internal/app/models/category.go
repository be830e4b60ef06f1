package models

import "strings"

type Category string

const (
	CategoryDoctor   Category = "doctor"
	CategoryHospital Category = "hospital"
)

func (c Category) Valid() bool {
	return c == CategoryDoctor || c == CategoryHospital
}

func ParseCategory(value string) (Category, bool) {
	category := Category(strings.ToLower(strings.TrimSpace(value)))
	return category, category.Valid()
}
