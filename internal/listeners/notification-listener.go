package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"medequip-system/internal/entities"
	"medequip-system/internal/events"
	"medequip-system/pkg/eventbus"
	ws "medequip-system/pkg/websocket"
)

// NotificationListener forwards fault report events to the websocket
// hub. New reports go to technicians only; updates go to everyone.
type NotificationListener struct {
	hub    *ws.Hub
	logger *zap.Logger
}

func NewNotificationListener(hub *ws.Hub, logger *zap.Logger) *NotificationListener {
	return &NotificationListener{hub: hub, logger: logger}
}

func (l *NotificationListener) Subscribe(bus *eventbus.Bus) {
	bus.Subscribe(events.FaultReportCreatedName, l.onFaultReportCreated)
	bus.Subscribe(events.FaultReportUpdatedName, l.onFaultReportUpdated)
}

func (l *NotificationListener) onFaultReportCreated(ctx context.Context, event eventbus.Event) error {
	created, ok := event.(events.FaultReportCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.Name())
	}
	l.hub.BroadcastToRole(entities.RoleTechnician, ws.TypeNewFaultReport, created.Report)
	return nil
}

func (l *NotificationListener) onFaultReportUpdated(ctx context.Context, event eventbus.Event) error {
	updated, ok := event.(events.FaultReportUpdatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.Name())
	}
	l.hub.BroadcastAll(ws.TypeFaultReportUpdated, updated.Report)
	return nil
}
