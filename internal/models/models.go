package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID                int64          `json:"id" db:"id"`
	Username          string         `json:"username" db:"username"`
	Password          string         `json:"-" db:"password"`
	Email             string         `json:"email" db:"email"`
	IsAdmin           bool           `json:"isadmin" db:"isadmin"`
	ResetToken        sql.NullString `json:"-" db:"reset_token"`
	ResetTokenExpires sql.NullTime   `json:"-" db:"reset_token_expires"`
}

type Program struct {
	ID              int64  `json:"id" db:"id"`
	Title           string `json:"titulo" db:"titulo"`
	Description     string `json:"descripcion" db:"descripcion"`
	AdministratorID int64  `json:"administrador_id" db:"administrador_id"`
}

// ReactionCounts maps a reaction type to the number of reactions of that
// type on a publication. Stored as JSONB on the publications row.
type ReactionCounts map[string]int

func (c ReactionCounts) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c)
}

func (c *ReactionCounts) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = ReactionCounts{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported type for ReactionCounts: %T", src)
	}
}

// Publication carries cached reaction aggregates (TotalReactions,
// ReactionsCount). The reactions table is the source of truth; the cached
// fields are recomputed inside the same transaction as every reaction
// mutation.
type Publication struct {
	ID             int64          `json:"id" db:"id"`
	UserID         int64          `json:"user_id" db:"user_id"`
	Username       string         `json:"username" db:"username"`
	Content        string         `json:"content" db:"content"`
	FilePaths      pq.StringArray `json:"file_paths" db:"file_paths"`
	TotalReactions int            `json:"total_reactions" db:"total_reactions"`
	ReactionsCount ReactionCounts `json:"reactions_count" db:"reactions_count"`
	ProgramID      sql.NullInt64  `json:"programa_id" db:"programa_id"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`

	Reactions []Reaction     `json:"reactions,omitempty" db:"-"`
	Comments  []*CommentNode `json:"comments,omitempty" db:"-"`
}

type Reaction struct {
	ID            int64         `json:"id" db:"id"`
	PublicationID int64         `json:"publication_id" db:"publication_id"`
	UserID        int64         `json:"user_id" db:"user_id"`
	ReactionType  string        `json:"reaction_type" db:"reaction_type"`
	ProgramID     sql.NullInt64 `json:"programa_id" db:"programa_id"`
	Username      string        `json:"username" db:"username"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

type Comment struct {
	ID              int64         `json:"id" db:"id"`
	PublicationID   int64         `json:"publication_id" db:"publication_id"`
	UserID          int64         `json:"user_id" db:"user_id"`
	ParentCommentID sql.NullInt64 `json:"parent_comment_id" db:"parent_comment_id"`
	Content         string        `json:"content" db:"content"`
	Username        string        `json:"username" db:"username"`
	ProgramID       sql.NullInt64 `json:"programa_id" db:"programa_id"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
}

// CommentNode is a comment with its replies attached, as returned to clients.
type CommentNode struct {
	Comment
	Replies []*CommentNode `json:"replies"`
}

// Claims is the caller identity decoded from a bearer token. It is attached
// to the request context by the auth middleware and never mutated afterwards.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isadmin"`
}
