package domain

import "fmt"

// UnknownDisplay substitutes for a numeric field the upstream never sent.
const UnknownDisplay = "unknown"

// StatusView is the read-only projection of the latest snapshot rendered
// on the status page.
type StatusView struct {
	HasData            bool   `json:"hasData"`
	RankDisplay        string `json:"rankDisplay"`
	SignupCountDisplay string `json:"signupCountDisplay"`
	SchoolName         string `json:"schoolName,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}

// NewStatusView projects a snapshot into its display form.
func NewStatusView(s *Snapshot) StatusView {
	view := StatusView{
		HasData:            true,
		RankDisplay:        UnknownDisplay,
		SignupCountDisplay: UnknownDisplay,
		UpdatedAt:          s.TimestampUTC,
	}
	if s.SchoolName != nil {
		view.SchoolName = *s.SchoolName
	}
	if s.SchoolRank != nil {
		view.RankDisplay = fmt.Sprintf("#%d", *s.SchoolRank)
	}
	if s.SchoolSignupCount != nil {
		view.SignupCountDisplay = fmt.Sprintf("%d", *s.SchoolSignupCount)
	}
	return view
}
