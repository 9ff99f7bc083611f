package mongodb

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/goevery/chat/internal/persistence"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type Friendship struct {
	Id          bson.ObjectID `bson:"_id"`
	RequesterId string        `bson:"requesterId"`
	AddresseeId string        `bson:"addresseeId"`
	PairKey     string        `bson:"pairKey"`
	Status      string        `bson:"status"`
	CreateTime  time.Time     `bson:"createTime"`
	UpdateTime  time.Time     `bson:"updateTime"`
}

// pairKey is the same for both directions of a pair. A unique index on it
// keeps one friendship per pair.
func pairKey(userId string, otherUserId string) string {
	ids := []string{userId, otherUserId}
	slices.Sort(ids)

	return strings.Join(ids, ":")
}

func (f Friendship) toDomain() persistence.Friendship {
	return persistence.Friendship{
		Id:          f.Id.Hex(),
		RequesterId: f.RequesterId,
		AddresseeId: f.AddresseeId,
		Status:      persistence.FriendshipStatus(f.Status),
		CreateTime:  f.CreateTime,
		UpdateTime:  f.UpdateTime,
	}
}

func (e *PersistenceEngine) CreateFriendship(ctx context.Context, requesterId string, addresseeId string) (persistence.Friendship, error) {
	now := time.Now()
	document := Friendship{
		Id:          bson.NewObjectID(),
		RequesterId: requesterId,
		AddresseeId: addresseeId,
		PairKey:     pairKey(requesterId, addresseeId),
		Status:      string(persistence.FriendshipStatusPending),
		CreateTime:  now,
		UpdateTime:  now,
	}

	_, err := e.friendships.InsertOne(ctx, document)
	if mongo.IsDuplicateKeyError(err) {
		return persistence.Friendship{}, persistence.ErrAlreadyExists
	}
	if err != nil {
		return persistence.Friendship{}, err
	}

	return document.toDomain(), nil
}

func (e *PersistenceEngine) GetFriendship(ctx context.Context, id string) (persistence.Friendship, error) {
	objectId, err := objectIdFromHex(id)
	if err != nil {
		return persistence.Friendship{}, err
	}

	var document Friendship
	err = e.friendships.FindOne(ctx, bson.M{"_id": objectId}).Decode(&document)
	if err != nil {
		return persistence.Friendship{}, notFoundOr(err)
	}

	return document.toDomain(), nil
}

func (e *PersistenceEngine) FindFriendshipBetween(ctx context.Context, userId string, otherUserId string) (persistence.Friendship, error) {
	var document Friendship
	err := e.friendships.FindOne(ctx, bson.M{"pairKey": pairKey(userId, otherUserId)}).Decode(&document)
	if err != nil {
		return persistence.Friendship{}, notFoundOr(err)
	}

	return document.toDomain(), nil
}

func (e *PersistenceEngine) SetFriendshipStatus(ctx context.Context, id string, status persistence.FriendshipStatus) (persistence.Friendship, error) {
	objectId, err := objectIdFromHex(id)
	if err != nil {
		return persistence.Friendship{}, err
	}

	update := bson.M{
		"$set": bson.M{
			"status":     string(status),
			"updateTime": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var document Friendship
	err = e.friendships.FindOneAndUpdate(ctx, bson.M{"_id": objectId}, update, opts).Decode(&document)
	if err != nil {
		return persistence.Friendship{}, notFoundOr(err)
	}

	return document.toDomain(), nil
}

func (e *PersistenceEngine) DeleteFriendship(ctx context.Context, id string) error {
	objectId, err := objectIdFromHex(id)
	if err != nil {
		return err
	}

	result, err := e.friendships.DeleteOne(ctx, bson.M{"_id": objectId})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return persistence.ErrNotFound
	}

	return nil
}

func (e *PersistenceEngine) ListFriendIds(ctx context.Context, userId string) ([]string, error) {
	filter := bson.M{
		"status": string(persistence.FriendshipStatusAccepted),
		"$or": bson.A{
			bson.M{"requesterId": userId},
			bson.M{"addresseeId": userId},
		},
	}

	friendships, err := e.findFriendships(ctx, filter)
	if err != nil {
		return nil, err
	}

	return lo.Uniq(lo.Map(friendships, func(f persistence.Friendship, _ int) string {
		return f.Other(userId)
	})), nil
}

func (e *PersistenceEngine) ListIncomingRequests(ctx context.Context, userId string) ([]persistence.Friendship, error) {
	return e.findFriendships(ctx, bson.M{
		"addresseeId": userId,
		"status":      string(persistence.FriendshipStatusPending),
	})
}

func (e *PersistenceEngine) ListOutgoingRequests(ctx context.Context, userId string) ([]persistence.Friendship, error) {
	return e.findFriendships(ctx, bson.M{
		"requesterId": userId,
		"status":      string(persistence.FriendshipStatusPending),
	})
}

func (e *PersistenceEngine) CountIncomingRequests(ctx context.Context, userId string) (int64, error) {
	return e.friendships.CountDocuments(ctx, bson.M{
		"addresseeId": userId,
		"status":      string(persistence.FriendshipStatusPending),
	})
}

func (e *PersistenceEngine) findFriendships(ctx context.Context, filter bson.M) ([]persistence.Friendship, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createTime", Value: -1}})

	cursor, err := e.friendships.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var documents []Friendship
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, err
	}

	return lo.Map(documents, func(f Friendship, _ int) persistence.Friendship {
		return f.toDomain()
	}), nil
}
