package group

import "errors"

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrNameExists    = errors.New("group name already exists")
	ErrNoMemberIDs   = errors.New("no member IDs provided")
)
