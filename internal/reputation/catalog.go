package reputation

import (
	"pawmates/pkg/domain"
)

// Karma awarded per contribution kind.
const (
	pointsPostCreated      = 5
	pointsCommentCreated   = 2
	pointsCommunityCreated = 15
	pointsEventCreated     = 10
)

// PointsFor returns the karma value of a contribution. Unknown events are
// worth nothing.
func PointsFor(event domain.KarmaEvent) int {
	switch event {
	case domain.KarmaEventPostCreated:
		return pointsPostCreated
	case domain.KarmaEventCommentCreated:
		return pointsCommentCreated
	case domain.KarmaEventCommunityCreated:
		return pointsCommunityCreated
	case domain.KarmaEventEventCreated:
		return pointsEventCreated
	default:
		return 0
	}
}

// BadgeDef ties a badge to the activity count that earns it.
type BadgeDef struct {
	Name        string
	Description string
	IconRef     string
	Event       domain.KarmaEvent
	Threshold   int
}

// Catalog lists every badge the engine can award. A badge is earned the
// moment the user's lifetime count for its event reaches the threshold.
var Catalog = []BadgeDef{
	{
		Name:        "First Post",
		Description: "Awarded for making your first post in any community.",
		IconRef:     "first_post_icon.png",
		Event:       domain.KarmaEventPostCreated,
		Threshold:   1,
	},
	{
		Name:        "Active Commenter",
		Description: "Awarded for making 5 comments.",
		IconRef:     "commenter_icon.png",
		Event:       domain.KarmaEventCommentCreated,
		Threshold:   5,
	},
	{
		Name:        "Community Starter",
		Description: "Awarded for creating your first community.",
		IconRef:     "community_starter_icon.png",
		Event:       domain.KarmaEventCommunityCreated,
		Threshold:   1,
	},
	{
		Name:        "Event Organizer",
		Description: "Awarded for creating your first community event.",
		IconRef:     "event_organizer_icon.png",
		Event:       domain.KarmaEventEventCreated,
		Threshold:   1,
	},
}

// badgesEarnedAt returns the badge definitions whose threshold equals the
// given count for the event. Equality, not gte, keeps the award single-shot
// even without consulting the user's badge list.
func badgesEarnedAt(event domain.KarmaEvent, count int) []BadgeDef {
	var out []BadgeDef
	for _, def := range Catalog {
		if def.Event == event && def.Threshold == count {
			out = append(out, def)
		}
	}
	return out
}
