package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mattear/waitlist-watch/internal/domain"
	"github.com/mattear/waitlist-watch/internal/jsonval"
	"github.com/mattear/waitlist-watch/internal/port"
)

// PollService runs one poll cycle: call the upstream signup endpoint,
// extract the success record from its JSONL response, and persist the
// resulting snapshot.
type PollService struct {
	client port.SignupClient
	store  port.KVStore
	email  string
	now    func() time.Time
}

// NewPollService creates a new poll service.
func NewPollService(client port.SignupClient, store port.KVStore, email string) *PollService {
	return &PollService{
		client: client,
		store:  store,
		email:  email,
		now:    time.Now,
	}
}

// Poll performs one poll-and-store cycle and returns the stored snapshot.
// A transport failure on the outbound call fails the whole operation and
// nothing is stored. A malformed or record-less response is not an error:
// the snapshot is stored with all extracted fields absent and the raw
// body kept for diagnosis.
func (s *PollService) Poll(ctx context.Context) (*domain.Snapshot, error) {
	status, body, err := s.client.Signup(ctx, s.email)
	if err != nil {
		return nil, fmt.Errorf("poll upstream: %w", err)
	}

	snapshot := &domain.Snapshot{
		TimestampUTC: s.now().UTC().Format(time.RFC3339),
		HTTPStatus:   status,
		EmailUsed:    s.email,
		RawResponse:  body,
	}

	if record, ok := extractSuccessRecord(body); ok {
		snapshot.SchoolName = strField(record, "schoolName")
		snapshot.SchoolRank = intField(record, "schoolRank")
		snapshot.SchoolSignupCount = intField(record, "schoolSignupCount")
		snapshot.StudentGovEmail = strField(record, "studentGovEmail")
		snapshot.StudentGovInstagram = strField(record, "studentGovInstagram")
	}

	stored, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.store.Set(ctx, domain.SnapshotKey, stored); err != nil {
		return nil, fmt.Errorf("store snapshot: %w", err)
	}

	slog.Info("stored waitlist snapshot",
		"http_status", status,
		"rank_found", snapshot.SchoolRank != nil,
		"signup_count_found", snapshot.SchoolSignupCount != nil,
	)
	return snapshot, nil
}

// extractSuccessRecord collapses a parse failure and an extraction miss
// into the same "no record" outcome.
func extractSuccessRecord(body string) (jsonval.Object, bool) {
	values, err := jsonval.ParseLines(body)
	if err != nil {
		return nil, false
	}
	return jsonval.FindSuccessRecordIn(values)
}

func strField(obj jsonval.Object, key string) *string {
	if v, ok := obj.Str(key); ok {
		return &v
	}
	return nil
}

func intField(obj jsonval.Object, key string) *int {
	if v, ok := obj.Int(key); ok {
		return &v
	}
	return nil
}
