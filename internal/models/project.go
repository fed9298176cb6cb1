package models

import (
	"github.com/dmitrijs2005/fundraise/internal/timex"
	"github.com/shopspring/decimal"
)

// NoOwner is shown instead of an owner label when the owner record is gone.
const NoOwner = "N/A"

// Project is a fundraising record owned by a single user.
type Project struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Details   string          `json:"details"`
	Target    decimal.Decimal `json:"target"`
	StartTime timex.Date      `json:"start_time"`
	EndTime   timex.Date      `json:"end_time"`
	OwnerID   int64           `json:"owner_id"`
}

// ProjectView is a project joined with its owner's display label.
type ProjectView struct {
	Project
	Owner string
}

// NextProjectID returns max(id)+1, or 1 for an empty slice.
func NextProjectID(projects []Project) int64 {
	var top int64
	for _, p := range projects {
		if p.ID > top {
			top = p.ID
		}
	}
	return top + 1
}

// JoinOwners builds views for projects, labelling each with its owner from
// users or NoOwner when the owner is unknown.
func JoinOwners(projects []Project, users []User) []ProjectView {
	byID := make(map[int64]User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		owner := NoOwner
		if u, ok := byID[p.OwnerID]; ok {
			owner = u.DisplayName()
		}
		views = append(views, ProjectView{Project: p, Owner: owner})
	}
	return views
}
