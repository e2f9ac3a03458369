package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	gatemcp "github.com/bobmcallan/vire-gate/internal/mcp"
	"github.com/bobmcallan/vire-gate/internal/schema"
	"github.com/bobmcallan/vire-gate/internal/storage/badger"
	"github.com/bobmcallan/vire-gate/internal/typeval"
)

// QuoteRequest is the get_quote tool's input.
type QuoteRequest struct {
	Ticker  *TickerSymbol `json:"ticker"`
	MaxAge  *typeval.Int  `json:"max_age_days"`
	Refresh *typeval.Bool `json:"refresh"`
}

// ValidationFields implements schema.Object.
func (r *QuoteRequest) ValidationFields() []schema.Field {
	return []schema.Field{
		schema.F("ticker", r.Ticker).Required().Exists("ticker"),
		schema.F("max_age_days", r.MaxAge).Range(typeval.Between(0, 30)),
		schema.F("refresh", r.Refresh),
	}
}

// OrderRequest is the create_order tool's input.
type OrderRequest struct {
	Portfolio  *typeval.Guid               `json:"portfolio_id"`
	Ticker     *TickerSymbol               `json:"ticker"`
	Quantity   *typeval.Int                `json:"quantity"`
	LimitPrice *typeval.Decimal            `json:"limit_price"`
	GoodUntil  *typeval.DateTime           `json:"good_until"`
	Note       *typeval.String             `json:"note"`
	DryRun     *typeval.Bool               `json:"dry_run"`
	Tags       *typeval.Collection[string] `json:"tags"`
}

// ValidationFields implements schema.Object.
func (r *OrderRequest) ValidationFields() []schema.Field {
	return []schema.Field{
		schema.F("portfolio_id", r.Portfolio).Required().Exists("portfolio"),
		schema.F("ticker", r.Ticker).Required(),
		schema.F("quantity", r.Quantity).Required().Range(typeval.Between(1, 10000)),
		schema.F("limit_price", r.LimitPrice).Range(typeval.Between("0.01", "100000.00")),
		schema.F("good_until", r.GoodUntil).Range(typeval.Between("2025-01-01", "2030-12-31")),
		schema.F("note", r.Note).Range(typeval.Between(1, 200)),
		schema.F("dry_run", r.DryRun),
		schema.F("tags", r.Tags).Range(typeval.Between(0, 10)),
	}
}

// EntityRequest is the register_entity and deregister_entity tools' input.
type EntityRequest struct {
	Entity *typeval.String `json:"entity"`
	Key    *typeval.String `json:"key"`
}

// ValidationFields implements schema.Object.
func (r *EntityRequest) ValidationFields() []schema.Field {
	return []schema.Field{
		schema.F("entity", r.Entity).Required().Range(typeval.Between(1, 64)),
		schema.F("key", r.Key).Required().Range(typeval.Between(1, 128)),
	}
}

// toolDefinitions builds the gate's tool catalog. The entity tools write to
// the registry that backs the processor's existence checks, so the catalog
// is self-contained: register a portfolio or ticker, then reference it.
func toolDefinitions(store *badger.EntityStore) []gatemcp.ToolDefinition {
	return []gatemcp.ToolDefinition{
		{
			Name:        "get_quote",
			Description: "Get the latest quote for a listed ticker.",
			Params: []gatemcp.ParamDefinition{
				{Name: "ticker", Kind: typeval.KindString, Description: "Exchange ticker, e.g. BHP.AX", Required: true},
				{Name: "max_age_days", Kind: typeval.KindInt, Description: "Maximum acceptable quote age in days (0-30)"},
				{Name: "refresh", Kind: typeval.KindBool, Description: "Force a refresh from the upstream feed"},
			},
			NewRequest: func() schema.Object { return &QuoteRequest{} },
			Handle:     handleGetQuote,
		},
		{
			Name:        "create_order",
			Description: "Create an order against a registered portfolio.",
			Params: []gatemcp.ParamDefinition{
				{Name: "portfolio_id", Kind: typeval.KindGuid, Description: "Portfolio identifier", Required: true},
				{Name: "ticker", Kind: typeval.KindString, Description: "Exchange ticker, e.g. BHP.AX", Required: true},
				{Name: "quantity", Kind: typeval.KindInt, Description: "Units to trade (1-10000)", Required: true},
				{Name: "limit_price", Kind: typeval.KindDecimal, Description: "Limit price per unit"},
				{Name: "good_until", Kind: typeval.KindDateTime, Description: "Order expiry date-time"},
				{Name: "note", Kind: typeval.KindString, Description: "Free-text note (up to 200 characters)"},
				{Name: "dry_run", Kind: typeval.KindBool, Description: "Validate and price without placing the order"},
				{Name: "tags", Kind: typeval.KindCollection, Description: "Up to 10 classification tags"},
			},
			NewRequest: func() schema.Object { return &OrderRequest{} },
			Handle:     handleCreateOrder,
		},
		{
			Name:        "register_entity",
			Description: "Register an entity in the system of record used by existence checks.",
			Params: []gatemcp.ParamDefinition{
				{Name: "entity", Kind: typeval.KindString, Description: "Entity kind, e.g. portfolio or ticker", Required: true},
				{Name: "key", Kind: typeval.KindString, Description: "Entity identifier", Required: true},
			},
			NewRequest: func() schema.Object { return &EntityRequest{} },
			Handle:     handleRegisterEntity(store),
		},
		{
			Name:        "deregister_entity",
			Description: "Remove an entity from the system of record used by existence checks.",
			Params: []gatemcp.ParamDefinition{
				{Name: "entity", Kind: typeval.KindString, Description: "Entity kind, e.g. portfolio or ticker", Required: true},
				{Name: "key", Kind: typeval.KindString, Description: "Entity identifier", Required: true},
			},
			NewRequest: func() schema.Object { return &EntityRequest{} },
			Handle:     handleDeregisterEntity(store),
		},
	}
}

// handleGetQuote acknowledges a validated quote request.
func handleGetQuote(ctx context.Context, req schema.Object) (string, error) {
	q := req.(*QuoteRequest)
	resp := map[string]any{
		"ticker": q.Ticker.Value(),
		"as_of":  time.Now().UTC().Format(time.RFC3339),
		"status": "queued",
	}
	if !q.MaxAge.IsAbsent() {
		resp["max_age_days"] = q.MaxAge.Value()
	}
	if !q.Refresh.IsAbsent() {
		resp["refresh"] = q.Refresh.Value()
	}
	out, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to render quote response: %w", err)
	}
	return string(out), nil
}

// handleCreateOrder accepts a validated order and assigns it an identifier.
func handleCreateOrder(ctx context.Context, req schema.Object) (string, error) {
	o := req.(*OrderRequest)
	resp := map[string]any{
		"order_id":     uuid.New().String(),
		"portfolio_id": o.Portfolio.Value().String(),
		"ticker":       o.Ticker.Value(),
		"quantity":     o.Quantity.Value(),
		"status":       "accepted",
	}
	if !o.LimitPrice.IsAbsent() {
		resp["limit_price"] = o.LimitPrice.Value().StringFixed(2)
	}
	if !o.GoodUntil.IsAbsent() {
		resp["good_until"] = o.GoodUntil.Value().Format(typeval.DateTimeLayout)
	}
	if !o.DryRun.IsAbsent() && o.DryRun.Value() {
		resp["status"] = "validated"
	}
	out, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to render order response: %w", err)
	}
	return string(out), nil
}

// handleRegisterEntity writes a validated entity record to the registry.
func handleRegisterEntity(store *badger.EntityStore) gatemcp.HandlerFunc {
	return func(ctx context.Context, req schema.Object) (string, error) {
		e := req.(*EntityRequest)
		if err := store.Register(ctx, e.Entity.Value(), e.Key.Value()); err != nil {
			return "", err
		}
		return fmt.Sprintf(`{"entity":%q,"key":%q,"status":"registered"}`, e.Entity.Value(), e.Key.Value()), nil
	}
}

// handleDeregisterEntity removes a validated entity record from the registry.
func handleDeregisterEntity(store *badger.EntityStore) gatemcp.HandlerFunc {
	return func(ctx context.Context, req schema.Object) (string, error) {
		e := req.(*EntityRequest)
		if err := store.Deregister(ctx, e.Entity.Value(), e.Key.Value()); err != nil {
			return "", err
		}
		return fmt.Sprintf(`{"entity":%q,"key":%q,"status":"deregistered"}`, e.Entity.Value(), e.Key.Value()), nil
	}
}
