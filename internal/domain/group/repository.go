package group

import "context"

type GroupRepository interface {
	Create(ctx context.Context, newGroup Group) (Group, error)
	GetByID(ctx context.Context, id string) (Group, error)
	// GetByIDForUpdate locks the group row for the duration of the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id string) (Group, error)
	GetAll(ctx context.Context) ([]Group, error)
	Update(ctx context.Context, id string, req UpdateGroupRequest) (Group, error)
	Delete(ctx context.Context, id string) (Group, error)
	SetMembers(ctx context.Context, id string, members MemberSet) (Group, error)
	// RemoveMemberEverywhere pulls an employee id out of every group's
	// member list. Used by the employee delete cascade.
	RemoveMemberEverywhere(ctx context.Context, memberID string) error
}
