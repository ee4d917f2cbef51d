package entity

// Re-export persistent models so callers only need one import.

import (
	"safetytips/internal/entity/db"
)

type User = db.User
type Tip = db.Tip
type Activity = db.Activity
type ActivityEntry = db.ActivityEntry
