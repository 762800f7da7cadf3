package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"
)

// WorkOrderPostgresRepository persists the WorkOrder aggregate in Postgres.
//
// Table layout:
//   - work_orders: one row per aggregate, keyed by id, always filtered by
//     company_id.
//   - work_order_items / work_order_milestones: child rows keyed by
//     work_order_id, replaced wholesale inside the parent's transaction.
//
// Money columns are NUMERIC and scanned through shopspring decimal, so values
// round-trip without float drift.

type WorkOrderPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderPostgresRepository)(nil)

func NewWorkOrderPostgresRepository(pool *pgxpool.Pool) *WorkOrderPostgresRepository {
	return &WorkOrderPostgresRepository{pool: pool}
}

const workOrderColumns = `
	id, company_id, quote_number, customer_id, title, description,
	status, pricing_model,
	subtotal, tax_rate, tax_amount, total_amount,
	flat_rate_amount, unit_count, unit_price,
	percentage, percentage_base_amount,
	recurring_rate, recurring_interval, milestone_base_amount,
	delivery_method, custom_message,
	presented_by, customer_reaction, presentation_next_steps, presentation_notes,
	deposit_amount, deposit_method, approval_notes,
	rejection_reason, competitor_name, rejection_notes,
	change_types, change_details, change_urgency,
	follow_up_date, follow_up_method, follow_up_reminder_mins, follow_up_reason, follow_up_notes,
	expiration_date, expired_notes, archived,
	sent_at, presented_at, customer_approved_at, rejected_at,
	changes_requested_at, follow_up_scheduled_at, expired_at, cancelled_at,
	scheduled_at, started_at, completed_at,
	created_at, updated_at`

const insertWorkOrderSQL = `
	INSERT INTO work_orders (` + workOrderColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
	        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
	        $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
	        $31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
	        $41, $42, $43, $44, $45, $46, $47, $48, $49, $50,
	        $51, $52, $53, $54, $55, $56)`

const updateWorkOrderSQL = `
	UPDATE work_orders SET
		quote_number = $3, customer_id = $4, title = $5, description = $6,
		status = $7, pricing_model = $8,
		subtotal = $9, tax_rate = $10, tax_amount = $11, total_amount = $12,
		flat_rate_amount = $13, unit_count = $14, unit_price = $15,
		percentage = $16, percentage_base_amount = $17,
		recurring_rate = $18, recurring_interval = $19, milestone_base_amount = $20,
		delivery_method = $21, custom_message = $22,
		presented_by = $23, customer_reaction = $24, presentation_next_steps = $25, presentation_notes = $26,
		deposit_amount = $27, deposit_method = $28, approval_notes = $29,
		rejection_reason = $30, competitor_name = $31, rejection_notes = $32,
		change_types = $33, change_details = $34, change_urgency = $35,
		follow_up_date = $36, follow_up_method = $37, follow_up_reminder_mins = $38, follow_up_reason = $39, follow_up_notes = $40,
		expiration_date = $41, expired_notes = $42, archived = $43,
		sent_at = $44, presented_at = $45, customer_approved_at = $46, rejected_at = $47,
		changes_requested_at = $48, follow_up_scheduled_at = $49, expired_at = $50, cancelled_at = $51,
		scheduled_at = $52, started_at = $53, completed_at = $54,
		created_at = $55, updated_at = $56
	WHERE id = $1 AND company_id = $2`

const selectWorkOrderSQL = `
	SELECT ` + workOrderColumns + `
	FROM work_orders
	WHERE company_id = $1 AND id = $2`

const listWorkOrdersSQL = `
	SELECT ` + workOrderColumns + `
	FROM work_orders
	WHERE company_id = $1 AND ($2::text[] IS NULL OR status = ANY($2))
	ORDER BY created_at DESC`

func workOrderArgs(w entities.WorkOrder) []any {
	return []any{
		w.ID, w.CompanyID, w.QuoteNumber, w.CustomerID, w.Title, w.Description,
		string(w.Status), string(w.PricingModel),
		w.Subtotal, w.TaxRate, w.TaxAmount, w.TotalAmount,
		w.FlatRateAmount, w.UnitCount, w.UnitPrice,
		w.Percentage, w.PercentageBaseAmount,
		w.RecurringRate, w.RecurringInterval, w.MilestoneBaseAmount,
		w.DeliveryMethod, w.CustomMessage,
		w.PresentedBy, w.CustomerReaction, w.PresentationNextSteps, w.PresentationNotes,
		w.DepositAmount, w.DepositMethod, w.ApprovalNotes,
		w.RejectionReason, w.CompetitorName, w.RejectionNotes,
		w.ChangeTypes, w.ChangeDetails, w.ChangeUrgency,
		w.FollowUpDate, w.FollowUpMethod, w.FollowUpReminderMins, w.FollowUpReason, w.FollowUpNotes,
		w.ExpirationDate, w.ExpiredNotes, w.Archived,
		w.SentAt, w.PresentedAt, w.CustomerApprovedAt, w.RejectedAt,
		w.ChangesRequestedAt, w.FollowUpScheduledAt, w.ExpiredAt, w.CancelledAt,
		w.ScheduledAt, w.StartedAt, w.CompletedAt,
		w.CreatedAt, w.UpdatedAt,
	}
}

func scanWorkOrder(row pgx.Row) (entities.WorkOrder, error) {
	var w entities.WorkOrder
	err := row.Scan(
		&w.ID, &w.CompanyID, &w.QuoteNumber, &w.CustomerID, &w.Title, &w.Description,
		&w.Status, &w.PricingModel,
		&w.Subtotal, &w.TaxRate, &w.TaxAmount, &w.TotalAmount,
		&w.FlatRateAmount, &w.UnitCount, &w.UnitPrice,
		&w.Percentage, &w.PercentageBaseAmount,
		&w.RecurringRate, &w.RecurringInterval, &w.MilestoneBaseAmount,
		&w.DeliveryMethod, &w.CustomMessage,
		&w.PresentedBy, &w.CustomerReaction, &w.PresentationNextSteps, &w.PresentationNotes,
		&w.DepositAmount, &w.DepositMethod, &w.ApprovalNotes,
		&w.RejectionReason, &w.CompetitorName, &w.RejectionNotes,
		&w.ChangeTypes, &w.ChangeDetails, &w.ChangeUrgency,
		&w.FollowUpDate, &w.FollowUpMethod, &w.FollowUpReminderMins, &w.FollowUpReason, &w.FollowUpNotes,
		&w.ExpirationDate, &w.ExpiredNotes, &w.Archived,
		&w.SentAt, &w.PresentedAt, &w.CustomerApprovedAt, &w.RejectedAt,
		&w.ChangesRequestedAt, &w.FollowUpScheduledAt, &w.ExpiredAt, &w.CancelledAt,
		&w.ScheduledAt, &w.StartedAt, &w.CompletedAt,
		&w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

func (r *WorkOrderPostgresRepository) Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertWorkOrderSQL, workOrderArgs(w)...); err != nil {
			return fmt.Errorf("insert work order: %w", err)
		}
		return insertChildren(ctx, tx, w.ID, w.Items, w.Milestones)
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return w, nil
}

func (r *WorkOrderPostgresRepository) GetByID(ctx context.Context, companyID, id string) (entities.WorkOrder, error) {
	w, err := scanWorkOrder(r.pool.QueryRow(ctx, selectWorkOrderSQL, companyID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.WorkOrder{}, nil
	}
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if err := r.loadChildren(ctx, &w); err != nil {
		return entities.WorkOrder{}, err
	}
	return w, nil
}

func (r *WorkOrderPostgresRepository) ListByCompany(ctx context.Context, companyID string, statuses []entities.Status) ([]entities.WorkOrder, error) {
	var filter []string
	for _, s := range statuses {
		filter = append(filter, string(s))
	}

	rows, err := r.pool.Query(ctx, listWorkOrdersSQL, companyID, filter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.WorkOrder
	for rows.Next() {
		w, err := scanWorkOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := r.loadChildren(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Update writes the whole row and, when replaceChildren is set, swaps the
// child sets inside the same transaction. The id/company_id key makes a retry
// of the same update idempotent.
func (r *WorkOrderPostgresRepository) Update(ctx context.Context, w entities.WorkOrder, replaceChildren bool) (entities.WorkOrder, error) {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateWorkOrderSQL, workOrderArgs(w)...)
		if err != nil {
			return fmt.Errorf("update work order: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		if !replaceChildren {
			return nil
		}
		if _, err := tx.Exec(ctx, `DELETE FROM work_order_items WHERE work_order_id = $1`, w.ID); err != nil {
			return fmt.Errorf("clear line items: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM work_order_milestones WHERE work_order_id = $1`, w.ID); err != nil {
			return fmt.Errorf("clear milestones: %w", err)
		}
		return insertChildren(ctx, tx, w.ID, w.Items, w.Milestones)
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return w, nil
}

func insertChildren(ctx context.Context, tx pgx.Tx, workOrderID string, items []entities.LineItem, milestones []entities.Milestone) error {
	for _, item := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO work_order_items
				(id, work_order_id, name, description, line_type, quantity, unit_price, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, workOrderID, item.Name, item.Description,
			string(item.LineType), item.Quantity, item.UnitPrice, item.SortOrder)
		if err != nil {
			return fmt.Errorf("insert line item: %w", err)
		}
	}
	for _, m := range milestones {
		_, err := tx.Exec(ctx, `
			INSERT INTO work_order_milestones
				(id, work_order_id, name, amount, percentage, sort_order, due_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			m.ID, workOrderID, m.Name, m.Amount, m.Percentage, m.SortOrder, m.DueDate)
		if err != nil {
			return fmt.Errorf("insert milestone: %w", err)
		}
	}
	return nil
}

func (r *WorkOrderPostgresRepository) loadChildren(ctx context.Context, w *entities.WorkOrder) error {
	rows, err := r.pool.Query(ctx, `
		SELECT id, work_order_id, name, description, line_type, quantity, unit_price, sort_order
		FROM work_order_items
		WHERE work_order_id = $1
		ORDER BY sort_order, id`, w.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var item entities.LineItem
		if err := rows.Scan(&item.ID, &item.WorkOrderID, &item.Name, &item.Description,
			&item.LineType, &item.Quantity, &item.UnitPrice, &item.SortOrder); err != nil {
			return err
		}
		w.Items = append(w.Items, item)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	mrows, err := r.pool.Query(ctx, `
		SELECT id, work_order_id, name, amount, percentage, sort_order, due_date
		FROM work_order_milestones
		WHERE work_order_id = $1
		ORDER BY sort_order, id`, w.ID)
	if err != nil {
		return err
	}
	defer mrows.Close()
	for mrows.Next() {
		var m entities.Milestone
		if err := mrows.Scan(&m.ID, &m.WorkOrderID, &m.Name, &m.Amount, &m.Percentage, &m.SortOrder, &m.DueDate); err != nil {
			return err
		}
		w.Milestones = append(w.Milestones, m)
	}
	return mrows.Err()
}
