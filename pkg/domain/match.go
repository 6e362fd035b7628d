package domain

import dErrors "pawmates/pkg/domain-errors"

// MatchType distinguishes the three kinds of connections the engine tracks.
type MatchType string

const (
	MatchTypePlaydate        MatchType = "pet-playdate"
	MatchTypeBusinessService MatchType = "business-service"
	MatchTypeOrgSupport      MatchType = "organization-support"
)

var validMatchTypes = map[MatchType]bool{
	MatchTypePlaydate:        true,
	MatchTypeBusinessService: true,
	MatchTypeOrgSupport:      true,
}

func (t MatchType) IsValid() bool  { return validMatchTypes[t] }
func (t MatchType) String() string { return string(t) }

// SwipeAction is a viewer's decision on a candidate pet.
type SwipeAction string

const (
	SwipeLike      SwipeAction = "like"
	SwipePass      SwipeAction = "pass"
	SwipeSuperlike SwipeAction = "superlike"
)

var validSwipeActions = map[SwipeAction]bool{
	SwipeLike:      true,
	SwipePass:      true,
	SwipeSuperlike: true,
}

// ParseSwipeAction constructs a SwipeAction from external input.
func ParseSwipeAction(s string) (SwipeAction, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "swipe action cannot be empty")
	}
	a := SwipeAction(s)
	if !a.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid swipe action")
	}
	return a, nil
}

func (a SwipeAction) IsValid() bool { return validSwipeActions[a] }

// IsPositive reports whether the action counts toward a mutual like.
func (a SwipeAction) IsPositive() bool { return a == SwipeLike || a == SwipeSuperlike }

func (a SwipeAction) String() string { return string(a) }

// MessageType labels a message for rendering; the engine assigns no further
// semantics to it.
type MessageType string

const (
	MessageTypeText               MessageType = "text"
	MessageTypeAppointmentRequest MessageType = "appointment-request"
	MessageTypeServiceInquiry     MessageType = "service-inquiry"
	MessageTypeSupportRequest     MessageType = "support-request"
)

var validMessageTypes = map[MessageType]bool{
	MessageTypeText:               true,
	MessageTypeAppointmentRequest: true,
	MessageTypeServiceInquiry:     true,
	MessageTypeSupportRequest:     true,
}

// ParseMessageType constructs a MessageType from external input. An empty
// value defaults to text.
func ParseMessageType(s string) (MessageType, error) {
	if s == "" {
		return MessageTypeText, nil
	}
	t := MessageType(s)
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid message type")
	}
	return t, nil
}

func (t MessageType) IsValid() bool  { return validMessageTypes[t] }
func (t MessageType) String() string { return string(t) }
