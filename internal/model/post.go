package model

import (
	"time"
)

type Post struct {
	ID        int64      `bson:"_id" json:"id"`
	Title     string     `bson:"title" json:"title"`
	Content   string     `bson:"content,omitempty" json:"content,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
