package roster

import (
	"context"
	"sync"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

// userAPIMock is a mock implementation of userAPI.
type userAPIMock struct {
	// GetRoleFunc mocks the GetRole method.
	GetRoleFunc func(ctx context.Context, id string) (domain.Role, error)

	// ListUsersFunc mocks the ListUsers method.
	ListUsersFunc func(ctx context.Context) ([]domain.User, error)

	calls struct {
		// GetRole holds details about calls to the GetRole method.
		GetRole []struct {
			Ctx context.Context
			ID  string
		}
		// ListUsers holds details about calls to the ListUsers method.
		ListUsers []struct {
			Ctx context.Context
		}
	}
	lockGetRole   sync.RWMutex
	lockListUsers sync.RWMutex
}

// GetRole calls GetRoleFunc.
func (mock *userAPIMock) GetRole(ctx context.Context, id string) (domain.Role, error) {
	if mock.GetRoleFunc == nil {
		panic("userAPIMock.GetRoleFunc: method is nil but userAPI.GetRole was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetRole.Lock()
	mock.calls.GetRole = append(mock.calls.GetRole, callInfo)
	mock.lockGetRole.Unlock()
	return mock.GetRoleFunc(ctx, id)
}

// GetRoleCalls gets all the calls that were made to GetRole.
func (mock *userAPIMock) GetRoleCalls() []struct {
	Ctx context.Context
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		ID  string
	}
	mock.lockGetRole.RLock()
	calls = mock.calls.GetRole
	mock.lockGetRole.RUnlock()
	return calls
}

// ListUsers calls ListUsersFunc.
func (mock *userAPIMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	if mock.ListUsersFunc == nil {
		panic("userAPIMock.ListUsersFunc: method is nil but userAPI.ListUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

// ListUsersCalls gets all the calls that were made to ListUsers.
func (mock *userAPIMock) ListUsersCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListUsers.RLock()
	calls = mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

// actorActivityMock is a mock implementation of actorActivity.
type actorActivityMock struct {
	// LatestByActorFunc mocks the LatestByActor method.
	LatestByActorFunc func(ctx context.Context, actorID string, kind domain.FeedKind) (*domain.ActorActivity, error)

	calls struct {
		// LatestByActor holds details about calls to the LatestByActor method.
		LatestByActor []struct {
			Ctx     context.Context
			ActorID string
			Kind    domain.FeedKind
		}
	}
	lockLatestByActor sync.RWMutex
}

// LatestByActor calls LatestByActorFunc.
func (mock *actorActivityMock) LatestByActor(ctx context.Context, actorID string, kind domain.FeedKind) (*domain.ActorActivity, error) {
	if mock.LatestByActorFunc == nil {
		panic("actorActivityMock.LatestByActorFunc: method is nil but actorActivity.LatestByActor was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID string
		Kind    domain.FeedKind
	}{
		Ctx:     ctx,
		ActorID: actorID,
		Kind:    kind,
	}
	mock.lockLatestByActor.Lock()
	mock.calls.LatestByActor = append(mock.calls.LatestByActor, callInfo)
	mock.lockLatestByActor.Unlock()
	return mock.LatestByActorFunc(ctx, actorID, kind)
}

// LatestByActorCalls gets all the calls that were made to LatestByActor.
func (mock *actorActivityMock) LatestByActorCalls() []struct {
	Ctx     context.Context
	ActorID string
	Kind    domain.FeedKind
} {
	var calls []struct {
		Ctx     context.Context
		ActorID string
		Kind    domain.FeedKind
	}
	mock.lockLatestByActor.RLock()
	calls = mock.calls.LatestByActor
	mock.lockLatestByActor.RUnlock()
	return calls
}
