package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/altruist/ucp-payments/internal/charges"
	"github.com/altruist/ucp-payments/internal/dto"
	"github.com/altruist/ucp-payments/internal/gateway"
	"github.com/altruist/ucp-payments/internal/metrics"
	"github.com/altruist/ucp-payments/internal/model"
	"github.com/altruist/ucp-payments/internal/validation"
)

// PaymentStore is the slice of the payment repository the orchestrator
// needs: insert the pending record, update it once with the outcome, list
// history.
type PaymentStore interface {
	Insert(ctx context.Context, p *model.Payment) error
	UpdateOutcome(ctx context.Context, id int64, status string, charges, totalAmount float64) error
	FindAll(ctx context.Context) ([]model.Payment, error)
}

// PaymentService orchestrates the policy-gated pipeline: apply defaults,
// validate, select a gateway, compute charges, persist the pending record,
// dispatch, persist the outcome, enrich the response.
type PaymentService struct {
	registry       *gateway.Registry
	validator      *validation.Validator
	payments       PaymentStore
	defaultCountry string
	now            func() time.Time
}

func NewPaymentService(registry *gateway.Registry, validator *validation.Validator, payments PaymentStore, defaultCountry string) *PaymentService {
	return &PaymentService{
		registry:       registry,
		validator:      validator,
		payments:       payments,
		defaultCountry: defaultCountry,
		now:            time.Now,
	}
}

func failed(message string) *dto.PaymentResponse {
	return &dto.PaymentResponse{Status: model.StatusFailed, Message: message}
}

// ProcessPayment runs the pipeline. Rejections before dispatch come back as
// FAILED responses and persist nothing; once a record is inserted the
// dispatch outcome is persisted whatever it is. The returned error is
// reserved for store failures.
func (s *PaymentService) ProcessPayment(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	log.Info().Str("name", req.Name).Str("method", req.PaymentMethod).Msg("processing payment request")

	if req.DestinationCountry == "" {
		req.DestinationCountry = s.defaultCountry
		log.Debug().Str("country", s.defaultCountry).Msg("using default country")
	}
	req.DestinationCountry = strings.ToUpper(req.DestinationCountry)

	if req.PaymentMethod == "" || req.Amount == nil {
		metrics.PaymentRejected(metrics.ReasonMissingField)
		return failed("Payment method and amount are required"), nil
	}

	result, err := s.validator.Validate(ctx, req.DestinationCountry, *req.Amount)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		metrics.PaymentRejected(metrics.ReasonPolicy)
		return failed(result.ErrorMessage), nil
	}

	gw, ok := s.registry.Lookup(req.PaymentMethod)
	if !ok {
		log.Error().Str("method", req.PaymentMethod).Msg("no gateway found for payment method")
		metrics.PaymentRejected(metrics.ReasonUnknownMethod)
		return failed("Unsupported payment method: " + req.PaymentMethod), nil
	}

	charge := charges.Calculate(req.DestinationCountry, req.Amount)
	totalAmount := *req.Amount + charge
	log.Info().
		Float64("charges", charge).
		Str("country", req.DestinationCountry).
		Float64("totalAmount", totalAmount).
		Msg("calculated charges")

	payment := &model.Payment{
		Name:               req.Name,
		ToAccount:          req.ToAccount,
		FromAccount:        req.FromAccount,
		Description:        req.Description,
		Amount:             *req.Amount,
		PaymentMethod:      strings.ToUpper(req.PaymentMethod),
		DestinationCountry: req.DestinationCountry,
		Timestamp:          s.now().UTC(),
	}
	if err := s.payments.Insert(ctx, payment); err != nil {
		return nil, fmt.Errorf("insert payment record: %w", err)
	}
	log.Debug().Int64("paymentId", payment.ID).Msg("payment record saved")

	response := dispatch(ctx, gw, req)

	if err := s.payments.UpdateOutcome(ctx, payment.ID, response.Status, charge, totalAmount); err != nil {
		return nil, fmt.Errorf("update payment record %d: %w", payment.ID, err)
	}

	response.PaymentID = &payment.ID
	response.Charges = charge
	response.TotalAmount = totalAmount
	metrics.PaymentProcessed(response.Status)

	log.Info().Str("status", response.Status).Int64("paymentId", payment.ID).Msg("payment processed")
	return response, nil
}

// dispatch calls the gateway and converts anything that escapes it into a
// FAILED response carrying the gateway's type code.
func dispatch(ctx context.Context, gw gateway.PaymentGateway, req *dto.PaymentRequest) (response *dto.PaymentResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("gateway", gw.GatewayType()).Msg("gateway dispatch failed")
			response = &dto.PaymentResponse{
				Status:      model.StatusFailed,
				Message:     fmt.Sprintf("%s payment failed: %v", gw.GatewayType(), r),
				GatewayUsed: gw.GatewayType(),
			}
		}
	}()
	return gw.ProcessPayment(ctx, req)
}

// AvailableGateways lists the registered method codes.
func (s *PaymentService) AvailableGateways() []string {
	return s.registry.Types()
}

// PaymentHistory returns every persisted payment record.
// TODO: add pagination once history grows beyond a demo dataset.
func (s *PaymentService) PaymentHistory(ctx context.Context) ([]model.Payment, error) {
	log.Info().Msg("fetching all payment history")
	return s.payments.FindAll(ctx)
}
