package domain

import (
	"errors"
	"time"
)

var ErrAlreadyLiked = errors.New("animal already liked by this user")

// Like records one user liking one animal. A user may like a given
// animal at most once.
type Like struct {
	ID        string    `json:"id" bson:"_id"`
	AnimalID  string    `json:"animal_id" bson:"animal_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
