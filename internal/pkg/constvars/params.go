package constvars

const (
	URLParamViewID = "view_id"
)

const (
	URLQueryParamAsync = "async"
)
