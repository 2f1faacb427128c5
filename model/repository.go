package model

type GithubRepository struct {
	ID              int64   `json:"-"` // ignored from json, only used to correlate records in logs
	Name            string  `json:"name"`
	FullName        string  `json:"fullName"`
	StarCount       int     `json:"starCount"`
	PrimaryLanguage *string `json:"primaryLanguage,omitempty"` // nil when github detected no language for the repository
}
