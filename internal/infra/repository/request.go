package repository

import (
	"context"

	"shootflow/internal/domain/request"
	"shootflow/internal/infra"
	"shootflow/internal/infra/repository/converter"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RequestRepository is the durable side of the persistence gateway. The
// in-memory collection is authoritative during a run; rows here trail it and
// are reconciled by retried saves.
type RequestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: db}
}

const loadAllSQL = `
SELECT id, status, requestor_name, requestor_email, approval_email, vendor_email,
       shoot_dates, equipment_lines, vendor_quote, approved_amount,
       rejection_reason, cancellation_reason, invoice_name, invoice_document,
       paid, activities, email_thread_id, group_id, group_index, group_size,
       created_at
FROM shoot_requests
ORDER BY created_at, group_index`

func (r *RequestRepository) LoadAll(ctx context.Context) ([]*request.ShootRequest, error) {
	rows, err := r.db.Query(ctx, loadAllSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load shoot requests", err)
	}
	defer rows.Close()

	var out []*request.ShootRequest
	for rows.Next() {
		var row converter.RequestRow
		if err := rows.Scan(
			&row.ID, &row.Status, &row.RequestorName, &row.RequestorEmail,
			&row.ApprovalEmail, &row.VendorEmail, &row.ShootDates,
			&row.EquipmentLines, &row.VendorQuote, &row.ApprovedAmount,
			&row.RejectionReason, &row.CancellationReason, &row.InvoiceName,
			&row.InvoiceDocument, &row.Paid, &row.Activities, &row.EmailThreadID,
			&row.GroupID, &row.GroupIndex, &row.GroupSize, &row.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan shoot request row", err)
		}
		req, err := converter.RequestFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode shoot request row", err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate shoot requests", err)
	}
	return out, nil
}

const saveSQL = `
INSERT INTO shoot_requests (
    id, status, requestor_name, requestor_email, approval_email, vendor_email,
    shoot_dates, equipment_lines, vendor_quote, approved_amount,
    rejection_reason, cancellation_reason, invoice_name, invoice_document,
    paid, activities, email_thread_id, group_id, group_index, group_size,
    created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
ON CONFLICT (id) DO UPDATE SET
    status = EXCLUDED.status,
    equipment_lines = EXCLUDED.equipment_lines,
    vendor_quote = EXCLUDED.vendor_quote,
    approved_amount = EXCLUDED.approved_amount,
    rejection_reason = EXCLUDED.rejection_reason,
    cancellation_reason = EXCLUDED.cancellation_reason,
    invoice_name = EXCLUDED.invoice_name,
    invoice_document = EXCLUDED.invoice_document,
    paid = EXCLUDED.paid,
    activities = EXCLUDED.activities,
    email_thread_id = EXCLUDED.email_thread_id`

func (r *RequestRepository) Save(ctx context.Context, req *request.ShootRequest) error {
	row, err := converter.RequestToRow(req)
	if err != nil {
		return infra.WrapRepoErr("failed to encode shoot request", err)
	}

	_, err = r.db.Exec(ctx, saveSQL,
		row.ID, row.Status, row.RequestorName, row.RequestorEmail,
		row.ApprovalEmail, row.VendorEmail, row.ShootDates,
		row.EquipmentLines, row.VendorQuote, row.ApprovedAmount,
		row.RejectionReason, row.CancellationReason, row.InvoiceName,
		row.InvoiceDocument, row.Paid, row.Activities, row.EmailThreadID,
		row.GroupID, row.GroupIndex, row.GroupSize, row.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save shoot request", err)
	}
	return nil
}
