package domain

// Action is the kind of access being requested on a post.
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// Can decides whether actor may perform action on post. It is a pure
// function: posts are readable by anyone, writable only by their author.
//
// A nil post models creation, which happens before any object lookup: any
// authenticated actor may create, anonymous callers may not. The created
// post's author is set server-side to the actor, so ownership holds by
// construction.
func Can(actor *Identity, post *Post, action Action) bool {
	switch action {
	case ActionRead:
		return true
	case ActionWrite:
		if actor == nil {
			return false
		}
		if post == nil {
			return true
		}
		return actor.UserID == post.AuthorID
	default:
		return false
	}
}
