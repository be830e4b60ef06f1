package requests

type CreateView struct {
	Category string `json:"category" validate:"omitempty,category"`
}

type SwitchCategory struct {
	Category string `json:"category" validate:"required,category"`
}

type ApplyFilters struct {
	Search         string `json:"search" validate:"max=100"`
	District       string `json:"district" validate:"omitempty,district"`
	Specialization string `json:"specialization" validate:"max=100"`
}

type ChangePage struct {
	Page int `json:"page" validate:"min=1"`
}

type SelectRecord struct {
	RecordID string `json:"recordId" validate:"required"`
}
