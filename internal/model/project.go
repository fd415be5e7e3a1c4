package model

// Project represents a project owned by a user.
//
// The JSON tags mirror the column names of the projects table (projectId,
// projectName, ...) so a row scans straight into this struct and serializes
// back out in the exact shape API clients expect.
//
// UserID references the owning user but is NOT a declared foreign key — the
// API accepts any owner id without checking that the user exists.
type Project struct {
	ID          int64  `json:"projectId"          db:"projectId"`
	Name        string `json:"projectName"        db:"projectName"`
	Description string `json:"projectDescription" db:"projectDescription"`
	UserID      int64  `json:"userId"             db:"userId"`
}
