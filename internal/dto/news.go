package dto

// SearchHeadlinesRequest is the body for POST /headlines.
type SearchHeadlinesRequest struct {
	SearchHeadlines string `json:"searchHeadlines" binding:"required,newscategory"`
}

// SearchEverythingRequest is the body for POST /everything.
type SearchEverythingRequest struct {
	SearchEverything string `json:"searchEverything" binding:"required"`
}

// ListUsersParams defines query parameters for listing accounts.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
