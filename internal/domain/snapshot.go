package domain

// SnapshotKey is the single store key under which the latest snapshot
// lives. Each poll overwrites it wholesale; there is no history.
const SnapshotKey = "waitlist:snapshot"

// Snapshot is a point-in-time capture of one waitlist poll. Optional
// fields are nil when the upstream response carried no usable record.
type Snapshot struct {
	TimestampUTC        string  `json:"timestampUtc"`
	HTTPStatus          int     `json:"httpStatus"`
	EmailUsed           string  `json:"emailUsed"`
	SchoolName          *string `json:"schoolName"`
	SchoolRank          *int    `json:"schoolRank"`
	SchoolSignupCount   *int    `json:"schoolSignupCount"`
	StudentGovEmail     *string `json:"studentGovEmail"`
	StudentGovInstagram *string `json:"studentGovInstagram"`
	RawResponse         string  `json:"rawResponse"`
}
