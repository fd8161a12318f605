package interfaces

import (
	"context"
	"io"

	domaintypes "turak/internal/domain/types"
)

// SessionService drives authentication, the password-reset flow, and profile
// updates. Failures surface on the Notifier; methods additionally return the
// error so callers can branch.
type SessionService interface {
	// CheckAuth resolves the current identity. Any failure clears it; the
	// call always completes so a UI can leave its startup state exactly once.
	CheckAuth(ctx context.Context) error

	Signup(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error

	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, code string) error
	ResetPassword(ctx context.Context, newPassword, confirmPassword string) error

	ConfirmEmail(ctx context.Context, email, code string) error
	ResendCode(ctx context.Context, email string) error

	UpdateProfile(
		ctx context.Context,
		fields map[string]string,
		avatarName string,
		avatar io.Reader,
	) error

	User() (domaintypes.User, bool)
	Status() domaintypes.SessionStatus
	Checking() bool
	ResetStage() domaintypes.ResetStage
	TokenInfo() (domaintypes.TokenClaims, bool)
}

// ListingService owns the public house catalog, per-house comments, like
// state, and the contact-seller flow.
type ListingService interface {
	FetchHouses(ctx context.Context) error
	Houses() []domaintypes.House
	House(id domaintypes.HouseID) (domaintypes.House, bool)

	FetchComments(ctx context.Context, house domaintypes.HouseID) error
	SubmitComment(ctx context.Context, house domaintypes.HouseID, content string) error
	DeleteComment(ctx context.Context, id domaintypes.CommentID, house domaintypes.HouseID) error
	Comments(house domaintypes.HouseID) []domaintypes.Comment

	ToggleLike(ctx context.Context, house domaintypes.HouseID) (domaintypes.LikeStatus, error)
	LikeStatus(house domaintypes.HouseID) (domaintypes.LikeStatus, bool)

	SendContactCode(ctx context.Context, email string) error
	VerifyContactCode(ctx context.Context, email, code string) error
	ContactSeller(ctx context.Context, house domaintypes.HouseID, req domaintypes.ContactRequest) error

	LastError() string
}

// ModerationService owns the pending (unverified) queue and the admin user
// roster. Every mutation refetches its collection from the server rather
// than patching locally.
type ModerationService interface {
	FetchPending(ctx context.Context) error
	Pending() []domaintypes.House
	VerifyHouse(ctx context.Context, id domaintypes.HouseID) error
	RejectHouse(ctx context.Context, id domaintypes.HouseID) error

	FetchUsers(ctx context.Context) error
	Users() []domaintypes.User
	BlockUser(ctx context.Context, id domaintypes.UserID) error

	FetchStats(ctx context.Context) (domaintypes.AdminStats, error)
}

// PostService owns the blog post collection.
type PostService interface {
	FetchPosts(ctx context.Context) error
	Posts() []domaintypes.Post
	CreatePost(ctx context.Context, draft domaintypes.PostDraft) error
	UpdatePost(ctx context.Context, id domaintypes.PostID, draft domaintypes.PostDraft) error
	DeletePost(ctx context.Context, id domaintypes.PostID) error
}

// ChatService owns the chat roster, the selected conversation, and the live
// push subscription.
type ChatService interface {
	FetchUsers(ctx context.Context) error
	ChatUsers() []domaintypes.ChatUser
	SelectUser(id domaintypes.UserID)
	SelectedUser() (domaintypes.UserID, bool)

	FetchMessages(ctx context.Context, peer domaintypes.UserID) error
	Messages() []domaintypes.ChatMessage
	SendMessage(ctx context.Context, text, image string) error

	Subscribe(ctx context.Context) error
	Unsubscribe()
}

// ConsultService holds the consultation form and submits it.
type ConsultService interface {
	SetField(name, value string) error
	Form() domaintypes.ConsultationForm
	Reset()
	Submit(ctx context.Context) error
}

// AssistantService owns the bot-assistant conversations: a roster of named
// threads and the selected thread's transcript.
type AssistantService interface {
	FetchThreads(ctx context.Context) error
	Threads() []domaintypes.AssistantThread
	SelectThread(id domaintypes.ThreadID)
	SelectedThread() (domaintypes.ThreadID, bool)

	FetchMessages(ctx context.Context, id domaintypes.ThreadID) error
	Messages() []domaintypes.AssistantMessage

	// Send posts the prompt to the selected thread and returns the bot's
	// reply. The prompt stays in the transcript even when the reply fails.
	Send(ctx context.Context, text string) (domaintypes.AssistantMessage, error)

	CreateThread(ctx context.Context) (domaintypes.ThreadID, error)
	RenameThread(ctx context.Context, id domaintypes.ThreadID, name string) error
}

// MarketService reads the currency board and the market analytics.
type MarketService interface {
	FetchCurrencies(ctx context.Context) error
	Currencies() []domaintypes.Currency

	FetchTrends(ctx context.Context, startDate, endDate string) (domaintypes.MarketTrends, error)
}

// AgentService submits agent applications and lets admins review them.
type AgentService interface {
	Apply(ctx context.Context, form domaintypes.AgentApplicationForm) error
	FetchApplications(ctx context.Context) error
	Applications() []domaintypes.AgentApplication
	Approve(ctx context.Context, id domaintypes.ApplicationID) error
	Reject(ctx context.Context, id domaintypes.ApplicationID) error
}
