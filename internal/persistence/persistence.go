package persistence

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type FriendshipStatus string

const (
	FriendshipStatusPending  FriendshipStatus = "pending"
	FriendshipStatusAccepted FriendshipStatus = "accepted"
)

type Message struct {
	Id         string    `json:"id"`
	SenderId   string    `json:"senderId"`
	ReceiverId string    `json:"receiverId"`
	Text       string    `json:"text,omitempty"`
	Image      string    `json:"image,omitempty"`
	CreateTime time.Time `json:"createTime"`
}

// Friendship is directed while pending: RequesterId asked AddresseeId.
type Friendship struct {
	Id          string           `json:"id"`
	RequesterId string           `json:"requesterId"`
	AddresseeId string           `json:"addresseeId"`
	Status      FriendshipStatus `json:"status"`
	CreateTime  time.Time        `json:"createTime"`
	UpdateTime  time.Time        `json:"updateTime"`
}

func (f Friendship) Involves(userId string) bool {
	return f.RequesterId == userId || f.AddresseeId == userId
}

// Other returns the participant that is not userId.
func (f Friendship) Other(userId string) string {
	if f.RequesterId == userId {
		return f.AddresseeId
	}

	return f.RequesterId
}

type Group struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	AdminId     string    `json:"adminId"`
	MemberIds   []string  `json:"memberIds"`
	CreateTime  time.Time `json:"createTime"`
}

type GroupMessage struct {
	Id         string    `json:"id"`
	GroupId    string    `json:"groupId"`
	SenderId   string    `json:"senderId"`
	Text       string    `json:"text,omitempty"`
	Image      string    `json:"image,omitempty"`
	CreateTime time.Time `json:"createTime"`
}

type MessageStore interface {
	SaveMessage(ctx context.Context, message Message) (Message, error)
	ListConversation(ctx context.Context, userId string, otherUserId string) ([]Message, error)
}

// FriendshipStore keeps at most one friendship per pair of users.
// CreateFriendship returns ErrAlreadyExists when the pair already has one.
type FriendshipStore interface {
	CreateFriendship(ctx context.Context, requesterId string, addresseeId string) (Friendship, error)
	GetFriendship(ctx context.Context, id string) (Friendship, error)
	FindFriendshipBetween(ctx context.Context, userId string, otherUserId string) (Friendship, error)
	SetFriendshipStatus(ctx context.Context, id string, status FriendshipStatus) (Friendship, error)
	DeleteFriendship(ctx context.Context, id string) error
	ListFriendIds(ctx context.Context, userId string) ([]string, error)
	ListIncomingRequests(ctx context.Context, userId string) ([]Friendship, error)
	ListOutgoingRequests(ctx context.Context, userId string) ([]Friendship, error)
	CountIncomingRequests(ctx context.Context, userId string) (int64, error)
}

type GroupStore interface {
	CreateGroup(ctx context.Context, group Group) (Group, error)
	GetGroup(ctx context.Context, id string) (Group, error)
	ListGroupsForUser(ctx context.Context, userId string) ([]Group, error)
	SaveGroupMessage(ctx context.Context, message GroupMessage) (GroupMessage, error)
	ListGroupMessages(ctx context.Context, groupId string) ([]GroupMessage, error)
}

type Engine interface {
	MessageStore
	FriendshipStore
	GroupStore

	Setup(ctx context.Context) error
}
