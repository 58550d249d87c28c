package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
	"github.com/SscSPs/visa_portal_backend/internal/utils/payments"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// maxParallelConversions bounds per-payment conversions in flight for one summary.
const maxParallelConversions = 8

type summaryService struct {
	BaseService
	paymentRepo    portsrepo.PaymentReader
	planRepo       portsrepo.PaymentPlanReader
	converter      portssvc.CurrencyConverterSvc
	tracker        *SelectionTracker
	sourceCurrency string
}

// NewSummaryService creates the payment summary service. Totals are summed in
// sourceCurrency before conversion; an empty value means USD.
func NewSummaryService(
	paymentRepo portsrepo.PaymentReader,
	planRepo portsrepo.PaymentPlanReader,
	converter portssvc.CurrencyConverterSvc,
	tracker *SelectionTracker,
	sourceCurrency string,
) portssvc.SummarySvc {
	sourceCurrency = strings.ToUpper(strings.TrimSpace(sourceCurrency))
	if sourceCurrency == "" {
		sourceCurrency = domain.DefaultBaseCurrency
	}
	if tracker == nil {
		tracker = NewSelectionTracker()
	}
	return &summaryService{
		paymentRepo:    paymentRepo,
		planRepo:       planRepo,
		converter:      converter,
		tracker:        tracker,
		sourceCurrency: sourceCurrency,
	}
}

var _ portssvc.SummarySvc = (*summaryService)(nil)

// selectionKey scopes a selection to who is looking at whose summary, so an
// admin view never cancels the client's own request.
func selectionKey(viewerID, userID string) string {
	return viewerID + ":" + userID
}

func (s *summaryService) Summarize(ctx context.Context, viewerID, userID, displayCurrency string) (*domain.PaymentSummary, error) {
	display := domain.DefaultBaseCurrency
	if strings.TrimSpace(displayCurrency) != "" {
		code, err := dto.NormalizeCurrencyCode(displayCurrency)
		if err != nil {
			return nil, err
		}
		display = code
	}

	key := selectionKey(viewerID, userID)
	ctx, gen, release := s.tracker.Begin(ctx, key)
	defer release()

	list, err := s.paymentRepo.ListPaymentsByUser(ctx, userID)
	if err != nil {
		if cause := context.Cause(ctx); cause != nil {
			return nil, cause
		}
		s.LogError(ctx, err, "Failed to load payments for summary", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load payments for summary: %w", err)
	}

	plan, err := s.planRepo.FindPlanByUserID(ctx, userID)
	if err != nil {
		if cause := context.Cause(ctx); cause != nil {
			return nil, cause
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load payment plan for summary", slog.String("user_id", userID))
			return nil, fmt.Errorf("failed to load payment plan for summary: %w", err)
		}
		plan = nil
	}

	summary, err := s.build(ctx, userID, display, list, plan)
	if err != nil {
		return nil, err
	}

	if err := context.Cause(ctx); err != nil {
		return nil, err
	}
	if err := s.tracker.Commit(key, gen); err != nil {
		s.LogDebug(ctx, "Discarding superseded summary",
			slog.String("user_id", userID),
			slog.String("display_currency", display))
		return nil, err
	}
	return summary, nil
}

func (s *summaryService) build(ctx context.Context, userID, display string, list []domain.Payment, plan *domain.PaymentPlan) (*domain.PaymentSummary, error) {
	paid := payments.TotalPaid(list)
	due := payments.TotalDue(list)

	var convPaid, convDue, convPlan decimal.Decimal
	converted := make([]domain.ConvertedPayment, len(list))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelConversions)

	g.Go(func() error {
		convPaid = s.converter.Convert(gctx, paid, s.sourceCurrency, display)
		return gctx.Err()
	})
	g.Go(func() error {
		convDue = s.converter.Convert(gctx, due, s.sourceCurrency, display)
		return gctx.Err()
	})
	if plan != nil {
		planCurrency := plan.CurrencyCode
		if planCurrency == "" {
			planCurrency = s.sourceCurrency
		}
		g.Go(func() error {
			convPlan = s.converter.Convert(gctx, plan.TotalAmount, planCurrency, display)
			return gctx.Err()
		})
	}
	for i := range list {
		g.Go(func() error {
			converted[i] = domain.ConvertedPayment{
				Payment:       list[i],
				DisplayAmount: s.converter.Convert(gctx, list[i].Amount, list[i].CurrencyCode, display),
			}
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		if cause := context.Cause(ctx); cause != nil {
			return nil, cause
		}
		return nil, err
	}

	sort.SliceStable(converted, func(a, b int) bool {
		return converted[a].PaymentDate.After(converted[b].PaymentDate)
	})

	hasPlan := plan != nil
	percentage := payments.Percentage(convPaid, convPlan)
	mixed := s.mixedCurrencies(list)
	if mixed {
		s.LogWarn(ctx, "Payments span several currencies; totals are summed before conversion",
			slog.String("user_id", userID),
			slog.String("source_currency", s.sourceCurrency),
			slog.Any("currencies", payments.DistinctCurrencies(list)))
	}

	return &domain.PaymentSummary{
		UserID:          userID,
		DisplayCurrency: display,
		SourceCurrency:  s.sourceCurrency,
		Totals: domain.DisplayTotals{
			TotalPaid:  convPaid,
			TotalDue:   convDue,
			PlanTotal:  convPlan,
			HasPlan:    hasPlan,
			Remaining:  payments.Remaining(convPaid, convDue, convPlan, hasPlan),
			Percentage: percentage,
		},
		GaugePercentage: payments.ClampPercentage(percentage),
		Band:            payments.BandFor(percentage),
		CompletedCount:  payments.CompletedCount(list),
		MixedCurrencies: mixed,
		Payments:        converted,
	}, nil
}

// mixedCurrencies reports whether any payment is recorded in a currency
// other than the one totals are assumed to be in.
func (s *summaryService) mixedCurrencies(list []domain.Payment) bool {
	for _, code := range payments.DistinctCurrencies(list) {
		if !strings.EqualFold(code, s.sourceCurrency) {
			return true
		}
	}
	return false
}
