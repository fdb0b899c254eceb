package group

import "time"

type Group struct {
	ID        string
	Name      string
	Members   MemberSet
	CreatedAt time.Time
	UpdatedAt time.Time
}
