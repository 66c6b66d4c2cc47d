package services

import (
	"context"
	"log/slog"

	"accounts-service/internal/logging"
	"accounts-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// RedactedValue masks customer names so event records carry no PII
	RedactedValue = "***REDACTED***"
)

// EventLogger writes one structured record per successful state change.
// Records go to the request-scoped logger when one is attached.
type EventLogger struct {
	logger *slog.Logger
}

func NewEventLogger(logger *slog.Logger) *EventLogger {
	return &EventLogger{
		logger: logger,
	}
}

func (el *EventLogger) LogCustomerCreated(ctx context.Context, customer *models.Customer) {
	el.log(ctx, "customer created",
		slog.String("event_type", "customer_created"),
		slog.String("customer_id", customer.CustomerID.String()),
		slog.String("first_name", RedactedValue),
		slog.String("last_name", RedactedValue),
	)
}

func (el *EventLogger) LogAccountOpened(ctx context.Context, account *models.Account) {
	el.log(ctx, "account opened",
		slog.String("event_type", "account_opened"),
		slog.String("account_id", account.AccountID.String()),
		slog.String("customer_id", account.CustomerID.String()),
		slog.String("account_type", string(account.AccountType)),
		slog.String("currency", account.Currency),
		slog.String("initial_balance", account.Balance.String()),
	)
}

func (el *EventLogger) LogAccountStatusChange(ctx context.Context, accountID uuid.UUID, oldStatus, newStatus models.AccountStatus) {
	el.log(ctx, "account status change",
		slog.String("event_type", "account_status_change"),
		slog.String("account_id", accountID.String()),
		slog.String("old_status", string(oldStatus)),
		slog.String("new_status", string(newStatus)),
	)
}

func (el *EventLogger) LogBalanceUpdate(ctx context.Context, accountID uuid.UUID, oldBalance, newBalance decimal.Decimal, direction string) {
	el.log(ctx, "balance update",
		slog.String("event_type", "balance_update"),
		slog.String("account_id", accountID.String()),
		slog.String("direction", direction),
		slog.String("old_balance", oldBalance.String()),
		slog.String("new_balance", newBalance.String()),
	)
}

func (el *EventLogger) log(ctx context.Context, msg string, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("category", "account_event"))
	logging.FromContextOr(ctx, el.logger).LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}
