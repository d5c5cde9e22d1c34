package domain

import (
	"fmt"
	"time"
)

// IDStamp is a name and an email address together with a zoned timestamp,
// as git records for the author and the committer of each commit.
type IDStamp struct {
	email     string
	name      string
	timestamp time.Time
}

// NewIDStamp stores its arguments verbatim. Neither the name nor the email is validated.
func NewIDStamp(name, email string, timestamp time.Time) IDStamp {
	return IDStamp{
		email:     email,
		name:      name,
		timestamp: timestamp,
	}
}

func (s IDStamp) Email() string { return s.email }

func (s IDStamp) Name() string { return s.name }

// Timestamp returns the instant with its original location
func (s IDStamp) Timestamp() time.Time { return s.timestamp }

// Ident renders the stamp the way git writes author and committer lines:
// "Name <email> 1700000000 +0100"
func (s IDStamp) Ident() string {
	return fmt.Sprintf("%s <%s> %d %s", s.name, s.email, s.timestamp.Unix(), s.timestamp.Format("-0700"))
}

func (s IDStamp) String() string {
	return s.Ident()
}
