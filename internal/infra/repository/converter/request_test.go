//go:build unit

package converter_test

import (
	"testing"
	"time"

	"shootflow/internal/domain/request"
	"shootflow/internal/infra/repository/converter"
	"shootflow/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestRowRoundTrip(t *testing.T) {
	t.Run("fully populated request survives the trip", func(t *testing.T) {
		quoted := decimal.NewFromFloat(42.50)
		line, _ := request.NewEquipmentLine("camera", 2, decimal.NewFromInt(150))
		line.QuotedRate = &quoted

		original := builder.NewRequestBuilder().
			WithStatus(request.StatusPendingInvoice).
			WithQuote(900).
			WithApprovedAmount(900).
			WithInvoice("inv-042.pdf").
			WithThreadID("thread-abc").
			WithActivity(request.ActionAutoCompleted, time.Date(2026, 3, 13, 0, 5, 0, 0, time.UTC)).
			With(func(b *builder.RequestBuilder) {
				b.Lines = []request.EquipmentLine{line}
			}).
			BuildDomain()

		row, err := converter.RequestToRow(original)
		require.NoError(t, err)
		restored, err := converter.RequestFromRow(row)
		require.NoError(t, err)

		if diff := cmp.Diff(original.Snapshot(), restored.Snapshot()); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("optional fields stay nil", func(t *testing.T) {
		original := builder.NewRequestBuilder().BuildDomain()

		row, err := converter.RequestToRow(original)
		require.NoError(t, err)
		assert.Nil(t, row.VendorQuote)
		assert.Nil(t, row.ApprovedAmount)
		assert.Nil(t, row.InvoiceName)
		assert.Nil(t, row.EmailThreadID)
		assert.Nil(t, row.GroupID)

		restored, err := converter.RequestFromRow(row)
		require.NoError(t, err)
		assert.Nil(t, restored.VendorQuote())
		assert.Nil(t, restored.Invoice())
		assert.Empty(t, restored.EmailThreadID())
	})

	t.Run("unknown status refused", func(t *testing.T) {
		row, err := converter.RequestToRow(builder.NewRequestBuilder().BuildDomain())
		require.NoError(t, err)
		row.Status = "lost_in_translation"

		_, err = converter.RequestFromRow(row)
		require.Error(t, err)
	})
}
