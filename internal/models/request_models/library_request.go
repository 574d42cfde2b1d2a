package request_models

type LibraryQuery struct {
	Search  string `form:"search"`
	Filters string `form:"filters"`
}
