//go:build unit

package store_test

import (
	"sync"
	"testing"

	"shootflow/internal/domain/request"
	"shootflow/internal/store"
	"shootflow/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestStore(t *testing.T) {
	t.Run("All returns insertion order", func(t *testing.T) {
		s := store.NewRequestStore()
		first := builder.NewRequestBuilder().BuildDomain()
		second := builder.NewRequestBuilder().BuildDomain()
		third := builder.NewRequestBuilder().BuildDomain()
		s.Put(first)
		s.Put(second)
		s.Put(third)

		ids := make([]uuid.UUID, 0, 3)
		for _, r := range s.All() {
			ids = append(ids, r.ID())
		}
		want := []uuid.UUID{first.ID(), second.ID(), third.ID()}
		if diff := cmp.Diff(want, ids); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Put is idempotent for the same id", func(t *testing.T) {
		s := store.NewRequestStore()
		r := builder.NewRequestBuilder().BuildDomain()
		s.Put(r)
		s.Put(r)

		assert.Len(t, s.All(), 1)
	})

	t.Run("ByStatus filters", func(t *testing.T) {
		s := store.NewRequestStore()
		s.Put(builder.NewRequestBuilder().WithStatus(request.StatusNewRequest).BuildDomain())
		s.Put(builder.NewRequestBuilder().WithStatus(request.StatusWithVendor).BuildDomain())
		s.Put(builder.NewRequestBuilder().WithStatus(request.StatusWithVendor).BuildDomain())

		assert.Len(t, s.ByStatus(request.StatusWithVendor), 2)
		assert.Len(t, s.ByStatus(request.StatusCompleted), 0)
	})

	t.Run("Siblings resolves the whole group from any member", func(t *testing.T) {
		s := store.NewRequestStore()
		members := builder.NewRequestBuilder().BuildGroupDomain(3)
		for _, m := range members {
			s.Put(m)
		}

		siblings := s.Siblings(members[1].ID())
		require.Len(t, siblings, 3)
		for i, m := range members {
			assert.Equal(t, m.ID(), siblings[i].ID())
		}
	})

	t.Run("Siblings of an ungrouped request is a group of one", func(t *testing.T) {
		s := store.NewRequestStore()
		r := builder.NewRequestBuilder().BuildDomain()
		s.Put(r)

		siblings := s.Siblings(r.ID())
		require.Len(t, siblings, 1)
		assert.Equal(t, r.ID(), siblings[0].ID())
	})

	t.Run("Siblings of unknown id is empty", func(t *testing.T) {
		s := store.NewRequestStore()
		assert.Nil(t, s.Siblings(uuid.New()))
	})

	t.Run("GroupMembers returns group order", func(t *testing.T) {
		s := store.NewRequestStore()
		members := builder.NewRequestBuilder().BuildGroupDomain(2)
		for _, m := range members {
			s.Put(m)
		}

		got := s.GroupMembers(*members[0].GroupID())
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].GroupIndex())
		assert.Equal(t, 2, got[1].GroupIndex())
	})
}

func TestRequestStoreLocking(t *testing.T) {
	t.Run("Lock serializes transitions on one id", func(t *testing.T) {
		s := store.NewRequestStore()
		r := builder.NewRequestBuilder().BuildDomain()
		s.Put(r)

		counter := 0
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := s.Lock(r.ID())
				counter++
				unlock()
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, counter)
	})

	t.Run("Lock on unknown id is a no-op", func(t *testing.T) {
		s := store.NewRequestStore()
		unlock := s.Lock(uuid.New())
		unlock()
	})
}
