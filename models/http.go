package models

// ErrorResponse is the JSON body written for every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// AppVersion is returned by GET /api/version.
type AppVersion struct {
	Version string `json:"version"`
	Date    string `json:"buildDate"`
	Commit  string `json:"buildCommit"`
}
