package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/marianadoces/console/internal/config"
	"github.com/marianadoces/console/internal/domain/models"
)

// Repository is the spreadsheet export sink for daily summaries. Unlike the
// MongoDB archive this sink is owner-facing: the sheet is what the business
// reads.
type Repository interface {
	AppendDailySummary(ctx context.Context, summary models.DailySummary) error
}

// GoogleSheetRepository implements Repository with the official Google
// Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	summaryRange  string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed export sink.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		summaryRange:  cfg.SummaryRange,
		logger:        logger,
	}, nil
}

// AppendDailySummary appends one summary row to the configured range. Row
// layout: date, orders, gross, fees, net, direct gross, iFood gross.
func (r *GoogleSheetRepository) AppendDailySummary(ctx context.Context, summary models.DailySummary) error {
	row := []interface{}{
		summary.Date.Format(models.DateLayout),
		summary.OrderCount,
		summary.GrossRevenue,
		summary.PlatformFees,
		summary.NetRevenue,
		summary.DirectRevenue,
		summary.IFoodRevenue,
	}
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, r.summaryRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append summary into range %s: %w", r.summaryRange, err)
	}

	r.logger.Debug("daily summary appended to sheet",
		zap.String("range", r.summaryRange),
		zap.String("date", summary.Date.Format(models.DateLayout)))
	return nil
}
