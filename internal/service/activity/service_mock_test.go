package activity

import (
	"context"
	"sync"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

// contentAPIMock is a mock implementation of contentAPI.
type contentAPIMock struct {
	// GetRecordFunc mocks the GetRecord method.
	GetRecordFunc func(ctx context.Context, id string) (domain.ChangeRecord, error)

	// ListCategoriesFunc mocks the ListCategories method.
	ListCategoriesFunc func(ctx context.Context) ([]domain.Category, error)

	// ListFieldsFunc mocks the ListFields method.
	ListFieldsFunc func(ctx context.Context, categoryID string) ([]domain.Field, error)

	// ListRecordsFunc mocks the ListRecords method.
	ListRecordsFunc func(ctx context.Context, categoryID string, orderBy string, limit int) ([]domain.ChangeRecord, error)

	calls struct {
		// GetRecord holds details about calls to the GetRecord method.
		GetRecord []struct {
			Ctx context.Context
			ID  string
		}
		// ListCategories holds details about calls to the ListCategories method.
		ListCategories []struct {
			Ctx context.Context
		}
		// ListFields holds details about calls to the ListFields method.
		ListFields []struct {
			Ctx        context.Context
			CategoryID string
		}
		// ListRecords holds details about calls to the ListRecords method.
		ListRecords []struct {
			Ctx        context.Context
			CategoryID string
			OrderBy    string
			Limit      int
		}
	}
	lockGetRecord      sync.RWMutex
	lockListCategories sync.RWMutex
	lockListFields     sync.RWMutex
	lockListRecords    sync.RWMutex
}

// GetRecord calls GetRecordFunc.
func (mock *contentAPIMock) GetRecord(ctx context.Context, id string) (domain.ChangeRecord, error) {
	if mock.GetRecordFunc == nil {
		panic("contentAPIMock.GetRecordFunc: method is nil but contentAPI.GetRecord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetRecord.Lock()
	mock.calls.GetRecord = append(mock.calls.GetRecord, callInfo)
	mock.lockGetRecord.Unlock()
	return mock.GetRecordFunc(ctx, id)
}

// GetRecordCalls gets all the calls that were made to GetRecord.
func (mock *contentAPIMock) GetRecordCalls() []struct {
	Ctx context.Context
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		ID  string
	}
	mock.lockGetRecord.RLock()
	calls = mock.calls.GetRecord
	mock.lockGetRecord.RUnlock()
	return calls
}

// ListCategories calls ListCategoriesFunc.
func (mock *contentAPIMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("contentAPIMock.ListCategoriesFunc: method is nil but contentAPI.ListCategories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx)
}

// ListCategoriesCalls gets all the calls that were made to ListCategories.
func (mock *contentAPIMock) ListCategoriesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListCategories.RLock()
	calls = mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

// ListFields calls ListFieldsFunc.
func (mock *contentAPIMock) ListFields(ctx context.Context, categoryID string) ([]domain.Field, error) {
	if mock.ListFieldsFunc == nil {
		panic("contentAPIMock.ListFieldsFunc: method is nil but contentAPI.ListFields was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CategoryID string
	}{
		Ctx:        ctx,
		CategoryID: categoryID,
	}
	mock.lockListFields.Lock()
	mock.calls.ListFields = append(mock.calls.ListFields, callInfo)
	mock.lockListFields.Unlock()
	return mock.ListFieldsFunc(ctx, categoryID)
}

// ListFieldsCalls gets all the calls that were made to ListFields.
func (mock *contentAPIMock) ListFieldsCalls() []struct {
	Ctx        context.Context
	CategoryID string
} {
	var calls []struct {
		Ctx        context.Context
		CategoryID string
	}
	mock.lockListFields.RLock()
	calls = mock.calls.ListFields
	mock.lockListFields.RUnlock()
	return calls
}

// ListRecords calls ListRecordsFunc.
func (mock *contentAPIMock) ListRecords(ctx context.Context, categoryID string, orderBy string, limit int) ([]domain.ChangeRecord, error) {
	if mock.ListRecordsFunc == nil {
		panic("contentAPIMock.ListRecordsFunc: method is nil but contentAPI.ListRecords was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CategoryID string
		OrderBy    string
		Limit      int
	}{
		Ctx:        ctx,
		CategoryID: categoryID,
		OrderBy:    orderBy,
		Limit:      limit,
	}
	mock.lockListRecords.Lock()
	mock.calls.ListRecords = append(mock.calls.ListRecords, callInfo)
	mock.lockListRecords.Unlock()
	return mock.ListRecordsFunc(ctx, categoryID, orderBy, limit)
}

// ListRecordsCalls gets all the calls that were made to ListRecords.
func (mock *contentAPIMock) ListRecordsCalls() []struct {
	Ctx        context.Context
	CategoryID string
	OrderBy    string
	Limit      int
} {
	var calls []struct {
		Ctx        context.Context
		CategoryID string
		OrderBy    string
		Limit      int
	}
	mock.lockListRecords.RLock()
	calls = mock.calls.ListRecords
	mock.lockListRecords.RUnlock()
	return calls
}

// auditAPIMock is a mock implementation of auditAPI.
type auditAPIMock struct {
	// QueryAuditEventsFunc mocks the QueryAuditEvents method.
	QueryAuditEventsFunc func(ctx context.Context, q domain.AuditQuery) ([]domain.AuditEvent, error)

	calls struct {
		// QueryAuditEvents holds details about calls to the QueryAuditEvents method.
		QueryAuditEvents []struct {
			Ctx context.Context
			Q   domain.AuditQuery
		}
	}
	lockQueryAuditEvents sync.RWMutex
}

// QueryAuditEvents calls QueryAuditEventsFunc.
func (mock *auditAPIMock) QueryAuditEvents(ctx context.Context, q domain.AuditQuery) ([]domain.AuditEvent, error) {
	if mock.QueryAuditEventsFunc == nil {
		panic("auditAPIMock.QueryAuditEventsFunc: method is nil but auditAPI.QueryAuditEvents was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.AuditQuery
	}{
		Ctx: ctx,
		Q:   q,
	}
	mock.lockQueryAuditEvents.Lock()
	mock.calls.QueryAuditEvents = append(mock.calls.QueryAuditEvents, callInfo)
	mock.lockQueryAuditEvents.Unlock()
	return mock.QueryAuditEventsFunc(ctx, q)
}

// QueryAuditEventsCalls gets all the calls that were made to QueryAuditEvents.
func (mock *auditAPIMock) QueryAuditEventsCalls() []struct {
	Ctx context.Context
	Q   domain.AuditQuery
} {
	var calls []struct {
		Ctx context.Context
		Q   domain.AuditQuery
	}
	mock.lockQueryAuditEvents.RLock()
	calls = mock.calls.QueryAuditEvents
	mock.lockQueryAuditEvents.RUnlock()
	return calls
}
