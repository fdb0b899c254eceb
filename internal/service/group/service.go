package group

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/group"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/database"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/email"
	"github.com/peopledesk/peopledesk-backend-go/internal/repository/postgresql"
)

type GroupServiceImpl struct {
	db *database.DB
	group.GroupRepository
	employee.EmployeeRepository
	mailer email.Mailer
}

func NewGroupService(
	db *database.DB,
	groupRepository group.GroupRepository,
	employeeRepository employee.EmployeeRepository,
	mailer email.Mailer,
) group.GroupService {
	return &GroupServiceImpl{
		db:                 db,
		GroupRepository:    groupRepository,
		EmployeeRepository: employeeRepository,
		mailer:             mailer,
	}
}

// Create implements group.GroupService. Duplicate ids in the initial
// member list collapse to one entry.
func (s *GroupServiceImpl) Create(ctx context.Context, req group.CreateGroupRequest) (group.GroupResponse, error) {
	if err := req.Validate(); err != nil {
		return group.GroupResponse{}, err
	}

	created, err := s.GroupRepository.Create(ctx, group.Group{
		Name:    req.Name,
		Members: group.NewMemberSet(req.Members...),
	})
	if err != nil {
		return group.GroupResponse{}, err
	}
	return s.populate(ctx, created)
}

// GetByID implements group.GroupService.
func (s *GroupServiceImpl) GetByID(ctx context.Context, id string) (group.GroupResponse, error) {
	g, err := s.GroupRepository.GetByID(ctx, id)
	if err != nil {
		return group.GroupResponse{}, err
	}
	return s.populate(ctx, g)
}

// GetAll implements group.GroupService.
func (s *GroupServiceImpl) GetAll(ctx context.Context) ([]group.GroupResponse, error) {
	groups, err := s.GroupRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]group.GroupResponse, 0, len(groups))
	for _, g := range groups {
		resp, err := s.populate(ctx, g)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Update implements group.GroupService.
func (s *GroupServiceImpl) Update(ctx context.Context, id string, req group.UpdateGroupRequest) (group.GroupResponse, error) {
	if err := req.Validate(); err != nil {
		return group.GroupResponse{}, err
	}

	updated, err := s.GroupRepository.Update(ctx, id, req)
	if err != nil {
		return group.GroupResponse{}, err
	}
	return s.populate(ctx, updated)
}

// Delete implements group.GroupService. Member employees are untouched.
func (s *GroupServiceImpl) Delete(ctx context.Context, id string) error {
	_, err := s.GroupRepository.Delete(ctx, id)
	return err
}

// AddMembers implements group.GroupService. Membership is a set: ids
// already present keep their position, new ids append in input order.
// The read-modify-write runs under a row lock so concurrent calls do not
// lose each other's members.
func (s *GroupServiceImpl) AddMembers(ctx context.Context, groupID string, memberIDs []string) (group.GroupResponse, error) {
	if len(memberIDs) == 0 {
		return group.GroupResponse{}, group.ErrNoMemberIDs
	}

	var updated group.Group
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		g, err := s.GroupRepository.GetByIDForUpdate(txCtx, groupID)
		if err != nil {
			return err
		}

		updated, err = s.GroupRepository.SetMembers(txCtx, groupID, g.Members.Add(memberIDs...))
		return err
	})
	if err != nil {
		return group.GroupResponse{}, err
	}
	return s.populate(ctx, updated)
}

// RemoveMember implements group.GroupService. Removing an id that is not
// a member leaves the group unchanged and succeeds.
func (s *GroupServiceImpl) RemoveMember(ctx context.Context, groupID string, memberID string) (group.GroupResponse, error) {
	var updated group.Group
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		g, err := s.GroupRepository.GetByIDForUpdate(txCtx, groupID)
		if err != nil {
			return err
		}

		updated, err = s.GroupRepository.SetMembers(txCtx, groupID, g.Members.Remove(memberID))
		return err
	})
	if err != nil {
		return group.GroupResponse{}, err
	}
	return s.populate(ctx, updated)
}

// SendMessage implements group.GroupService. Mails go out concurrently,
// one goroutine per resolvable member; a failed send never blocks the
// rest. Members whose employee record no longer exists count as skipped.
func (s *GroupServiceImpl) SendMessage(ctx context.Context, req group.SendMessageRequest) (group.DeliverySummary, error) {
	if err := req.Validate(); err != nil {
		return group.DeliverySummary{}, err
	}

	g, err := s.GroupRepository.GetByID(ctx, req.GroupID)
	if err != nil {
		return group.DeliverySummary{}, err
	}

	recipients, err := s.EmployeeRepository.GetByIDs(ctx, g.Members)
	if err != nil {
		return group.DeliverySummary{}, fmt.Errorf("resolve members of group %s: %w", g.ID, err)
	}

	summary := group.DeliverySummary{
		Requested: g.Members.Len(),
		Skipped:   g.Members.Len() - len(recipients),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, recipient := range recipients {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()

			err := s.mailer.Send(ctx, email.Message{
				To:      to,
				Subject: req.Subject,
				Body:    req.Message,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed = append(summary.Failed, group.DeliveryFailure{
					Email: to,
					Error: err.Error(),
				})
				return
			}
			summary.Sent++
		}(recipient.Email)
	}
	wg.Wait()

	slog.Info("Group message dispatched",
		"group_id", g.ID,
		"requested", summary.Requested,
		"sent", summary.Sent,
		"skipped", summary.Skipped,
		"failed", len(summary.Failed),
	)

	return summary, nil
}

func (s *GroupServiceImpl) populate(ctx context.Context, g group.Group) (group.GroupResponse, error) {
	members, err := s.EmployeeRepository.GetByIDs(ctx, g.Members)
	if err != nil {
		return group.GroupResponse{}, fmt.Errorf("expand members of group %s: %w", g.ID, err)
	}

	memberData := make([]employee.EmployeeData, 0, len(members))
	for _, member := range members {
		memberData = append(memberData, employee.ToData(member))
	}

	return group.GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		Members:   memberData,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}, nil
}
