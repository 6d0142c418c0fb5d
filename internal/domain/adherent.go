package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Adherent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	DateJoined time.Time          `bson:"dateJoined" json:"dateJoined"`
}

func (a *Adherent) Validate() error {
	if a.Name == "" {
		return ErrInvalidAdherentName
	}
	if a.Email == "" {
		return ErrInvalidAdherentEmail
	}
	return nil
}

// AdherentUpdate carries the fields of a partial update. Nil fields are
// left untouched on the stored document.
type AdherentUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
