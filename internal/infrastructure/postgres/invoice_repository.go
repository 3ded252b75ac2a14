package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wanjiru-dev/consultpro-api/internal/domain"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, number, client_id, issue_date, due_date, subtotal, tax, total,
	status, notes, created_at, updated_at`

// InvoiceRepo implements InvoiceRepository. Creation writes header and items
// in one transaction through the TxRunner.
type InvoiceRepo struct {
	q      Querier
	runner *TxRunner
}

// NewInvoiceRepository builds the adapter.
func NewInvoiceRepository(q Querier, runner *TxRunner) *InvoiceRepo {
	return &InvoiceRepo{q: q, runner: runner}
}

// Create persists the header and all items atomically. Returns
// domain.ErrDuplicate when the invoice number is taken.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	err := r.runner.Run(ctx, func(q Querier) error {
		headerQuery := `
			INSERT INTO invoices (` + invoiceColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
		if _, err := q.Exec(ctx, headerQuery,
			inv.ID, inv.Number, inv.ClientID, inv.IssueDate, inv.DueDate,
			inv.Subtotal, inv.Tax, inv.Total, inv.Status, inv.Notes, inv.CreatedAt, inv.UpdatedAt,
		); err != nil {
			return err
		}
		itemQuery := `
			INSERT INTO invoice_items (id, invoice_id, description, quantity, unit_amount, line_total)
			VALUES ($1, $2, $3, $4, $5, $6)`
		for _, it := range inv.Items {
			if _, err := q.Exec(ctx, itemQuery,
				it.ID, it.InvoiceID, it.Description, it.Quantity, it.UnitAmount, it.LineTotal,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID fetches an invoice with its items. Returns (nil, nil) when missing.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return inv, nil
}

// List returns invoices newest first, filtered by status and client. Items are
// not loaded for listings.
func (r *InvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + ` FROM invoices
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR client_id = $2)
		ORDER BY issue_date DESC, number DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, f.Status, f.ClientID, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// UpdateStatus moves an invoice to the given status.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE invoices SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}

// Delete removes an invoice and its items.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	return r.runner.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, id); err != nil {
			return fmt.Errorf("delete invoice items: %w", err)
		}
		if _, err := q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete invoice: %w", err)
		}
		return nil
	})
}

func (r *InvoiceRepo) loadItems(ctx context.Context, invoiceID string) ([]entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_amount, line_total
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var items []entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Description, &it.Quantity, &it.UnitAmount, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.ClientID, &inv.IssueDate, &inv.DueDate,
		&inv.Subtotal, &inv.Tax, &inv.Total, &inv.Status, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
