package schema

import (
	"context"
	"sync"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

// fieldListerMock is a mock implementation of fieldLister.
type fieldListerMock struct {
	// ListFieldsFunc mocks the ListFields method.
	ListFieldsFunc func(ctx context.Context, categoryID string) ([]domain.Field, error)

	calls struct {
		// ListFields holds details about calls to the ListFields method.
		ListFields []struct {
			Ctx        context.Context
			CategoryID string
		}
	}
	lockListFields sync.RWMutex
}

// ListFields calls ListFieldsFunc.
func (mock *fieldListerMock) ListFields(ctx context.Context, categoryID string) ([]domain.Field, error) {
	if mock.ListFieldsFunc == nil {
		panic("fieldListerMock.ListFieldsFunc: method is nil but fieldLister.ListFields was just called")
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
func (mock *fieldListerMock) ListFieldsCalls() []struct {
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
