package reputation

import (
	"context"
	"errors"

	"pawmates/internal/identity"
	reputationmetrics "pawmates/internal/reputation/metrics"
	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
	"pawmates/pkg/platform/sentinel"
	"pawmates/pkg/requestcontext"
)

// Service awards karma and badges in response to community contributions.
//
// Karma is monotonic: every recorded event adds a fixed positive amount and
// nothing ever subtracts. Badges are single-shot; the activity counter hits
// each threshold exactly once and the user badge list dedupes by name.
type Service struct {
	users    identity.UserStore
	activity ActivityStore
	metrics  *reputationmetrics.Metrics
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithMetrics attaches module metrics.
func WithMetrics(m *reputationmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(users identity.UserStore, activity ActivityStore, opts ...Option) *Service {
	s := &Service{users: users, activity: activity}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record applies the karma and badge consequences of one contribution event.
// Callers invoke it after their own state change has been applied, so the
// only failure mode left is an unknown user.
func (s *Service) Record(ctx context.Context, userID domain.UserID, event domain.KarmaEvent) error {
	if !event.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown karma event")
	}
	count, err := s.activity.Increment(ctx, userID, event)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to track activity")
	}
	points := PointsFor(event)
	earned := badgesEarnedAt(event, count)
	now := requestcontext.Now(ctx)

	_, err = s.users.Execute(ctx, userID, nil, func(u *identity.User) {
		_ = u.AddKarma(points)
		for _, def := range earned {
			u.AwardBadge(identity.Badge{
				Name:        def.Name,
				Description: def.Description,
				IconRef:     def.IconRef,
				DateAwarded: now,
			})
		}
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return err
	}

	s.metrics.AddKarmaAwarded(string(event), points)
	for _, def := range earned {
		s.metrics.IncrementBadgesAwarded(def.Name)
	}
	return nil
}

// ActivityCount reports the user's lifetime count for one contribution kind.
func (s *Service) ActivityCount(ctx context.Context, userID domain.UserID, event domain.KarmaEvent) (int, error) {
	return s.activity.Count(ctx, userID, event)
}

// Totals summarizes a user's lifetime contribution counts.
type Totals struct {
	Posts       int `json:"posts"`
	Comments    int `json:"comments"`
	Communities int `json:"communities"`
	Events      int `json:"events"`
}

// Totals returns the user's contribution counters across all event kinds.
func (s *Service) Totals(ctx context.Context, userID domain.UserID) (Totals, error) {
	var t Totals
	var err error
	if t.Posts, err = s.activity.Count(ctx, userID, domain.KarmaEventPostCreated); err != nil {
		return Totals{}, err
	}
	if t.Comments, err = s.activity.Count(ctx, userID, domain.KarmaEventCommentCreated); err != nil {
		return Totals{}, err
	}
	if t.Communities, err = s.activity.Count(ctx, userID, domain.KarmaEventCommunityCreated); err != nil {
		return Totals{}, err
	}
	if t.Events, err = s.activity.Count(ctx, userID, domain.KarmaEventEventCreated); err != nil {
		return Totals{}, err
	}
	return t, nil
}
