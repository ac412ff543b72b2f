// Package mocks provides centralized mock implementations for testing.
//
// Two styles are used:
//
//   - Function-field mocks (MockDeckService, MockDeckStore): set the Fn field
//     for the behaviour a test needs; unset fields fall back to the default
//     return values.
//   - testify/mock mocks (TestifyMockEventEmitter): use On(...).Return(...)
//     and AssertExpectations when call arguments matter.
//
// Usage:
//
//	import "github.com/phrazzld/deck-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    svc := &mocks.MockDeckService{
//	        GetDeckFn: func(ctx context.Context, id string) (*domain.Deck, error) {
//	            return nil, store.ErrDeckNotFound
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
