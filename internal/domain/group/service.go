package group

import "context"

type GroupService interface {
	Create(ctx context.Context, req CreateGroupRequest) (GroupResponse, error)
	GetByID(ctx context.Context, id string) (GroupResponse, error)
	GetAll(ctx context.Context) ([]GroupResponse, error)
	Update(ctx context.Context, id string, req UpdateGroupRequest) (GroupResponse, error)
	Delete(ctx context.Context, id string) error
	AddMembers(ctx context.Context, groupID string, memberIDs []string) (GroupResponse, error)
	RemoveMember(ctx context.Context, groupID string, memberID string) (GroupResponse, error)
	SendMessage(ctx context.Context, req SendMessageRequest) (DeliverySummary, error)
}
