package queries

import (
	"errors"
	"time"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/transportorder"
	"transportation/internal/pkg/guard"
)

var (
	ErrGetOrdersByTransportUnitQueryIsNotConstructed = errors.New(
		"GetOrdersByTransportUnitQuery must be created via NewGetOrdersByTransportUnitQuery constructor",
	)
)

// GetOrdersByTransportUnitQuery retrieves all transport orders assigned to one
// transport unit, regardless of their lifecycle state.
//
// Example:
//
//	query, err := NewGetOrdersByTransportUnitQuery("4711")
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders for unit: %w", err)
//	}
type GetOrdersByTransportUnitQuery struct {
	transportUnitBK kernel.Barcode

	guard guard.ConstructorGuard
}

// NewGetOrdersByTransportUnitQuery creates a query for the given transport
// unit barcode.
func NewGetOrdersByTransportUnitQuery(transportUnitBK string) (GetOrdersByTransportUnitQuery, error) {
	bk, err := kernel.NewBarcode(transportUnitBK)
	if err != nil {
		return GetOrdersByTransportUnitQuery{}, err
	}

	return GetOrdersByTransportUnitQuery{
		transportUnitBK: bk,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByTransportUnitQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByTransportUnitQueryIsNotConstructed)
}

// TransportUnitBK returns the transport unit to look up.
func (q GetOrdersByTransportUnitQuery) TransportUnitBK() kernel.Barcode {
	return q.transportUnitBK
}

// TransportOrderQueryResponse represents one transport order in a read model.
// It carries the fields a monitoring client needs to display an order without
// loading the aggregate.
type TransportOrderQueryResponse struct {
	ID                  kernel.UUID
	TransportUnitBK     string
	Priority            transportorder.PriorityLevel
	State               transportorder.State
	SourceLocation      string
	TargetLocation      string
	TargetLocationGroup string
	StartDate           *time.Time
	EndDate             *time.Time
	ProblemText         string
}
