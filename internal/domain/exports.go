package domain

import (
	interfaces "turak/internal/domain/interfaces"
	types "turak/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	UserID        = types.UserID
	HouseID       = types.HouseID
	CommentID     = types.CommentID
	PostID        = types.PostID
	ApplicationID = types.ApplicationID
	ThreadID      = types.ThreadID

	User          = types.User
	TokenPair     = types.TokenPair
	TokenClaims   = types.TokenClaims
	SessionStatus = types.SessionStatus
	ResetStage    = types.ResetStage

	House          = types.House
	Comment        = types.Comment
	LikeStatus     = types.LikeStatus
	ContactRequest = types.ContactRequest

	PredictionForm    = types.PredictionForm
	PredictionRequest = types.PredictionRequest
	PredictionRecord  = types.PredictionRecord
	GraphPoint        = types.GraphPoint

	Post      = types.Post
	PostDraft = types.PostDraft

	ChatUser    = types.ChatUser
	ChatMessage = types.ChatMessage
	ChatEvent   = types.ChatEvent

	AssistantThread  = types.AssistantThread
	AssistantMessage = types.AssistantMessage

	Currency     = types.Currency
	MarketTrends = types.MarketTrends
	PricePoint   = types.PricePoint
	SalesPoint   = types.SalesPoint
	RegionSales  = types.RegionSales

	ConsultationForm     = types.ConsultationForm
	AgentApplicationForm = types.AgentApplicationForm
	AgentApplication     = types.AgentApplication
	AdminStats           = types.AdminStats
)

// Session status and reset stage constants re-exported for callers of the
// aliased types.
const (
	SessionUnknown       = types.SessionUnknown
	SessionChecking      = types.SessionChecking
	SessionAuthenticated = types.SessionAuthenticated
	SessionAnonymous     = types.SessionAnonymous

	ResetNone         = types.ResetNone
	ResetRequested    = types.ResetRequested
	ResetCodeVerified = types.ResetCodeVerified
	ResetCompleted    = types.ResetCompleted

	EventNewMessage  = types.EventNewMessage
	EventMessageRead = types.EventMessageRead

	PropertyHouse     = types.PropertyHouse
	PropertyApartment = types.PropertyApartment
	RegionBishkek     = types.RegionBishkek
	RegionOsh         = types.RegionOsh
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	APIClient        = interfaces.APIClient
	ChatSocket       = interfaces.ChatSocket
	ChatSocketDialer = interfaces.ChatSocketDialer

	TokenSource = interfaces.TokenSource
	TokenStore  = interfaces.TokenStore
	Notifier    = interfaces.Notifier

	SessionService     = interfaces.SessionService
	ListingService     = interfaces.ListingService
	ModerationService  = interfaces.ModerationService
	PostService        = interfaces.PostService
	ChatService        = interfaces.ChatService
	AssistantService   = interfaces.AssistantService
	MarketService      = interfaces.MarketService
	ConsultService     = interfaces.ConsultService
	AgentService       = interfaces.AgentService
	PredictionWorkflow = interfaces.PredictionWorkflow
	PredictionHistory  = interfaces.PredictionHistory
)
