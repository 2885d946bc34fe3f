package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"ordertracker/internal/entities"
	"ordertracker/internal/pkg/session"
	"ordertracker/internal/service/analytics"
	"ordertracker/internal/service/lifecycle"
	"ordertracker/internal/service/policy"
	"ordertracker/internal/service/query"
	"ordertracker/pkg/logger"
)

// Details - заказ вместе с тем, что текущая роль может с ним сделать.
type Details struct {
	Order       entities.Order
	Actions     policy.Actions
	NextStatus  *lifecycle.NextStep
	NextPayment *lifecycle.NextStep
}

type Service struct {
	log        logger.Logger
	gateway    Gateway
	collection Collection
	publisher  EventPublisher
	clock      Clock
	location   *time.Location
}

func New(
	log logger.Logger,
	gateway Gateway,
	collection Collection,
	publisher EventPublisher,
	clock Clock,
	location *time.Location,
) *Service {
	return &Service{
		log:        log.With(logger.NewField("service", "order")),
		gateway:    gateway,
		collection: collection,
		publisher:  publisher,
		clock:      clock,
		location:   location,
	}
}

func (s *Service) CreateOrder(ctx context.Context, sess session.Session, draft entities.OrderDraft, attachment *entities.Upload) (*entities.Order, error) {
	if err := s.authorize(sess, policy.ActionCreate); err != nil {
		return nil, err
	}

	payload, err := ValidateDraft(draft, s.clock.Now().In(s.location))
	if err != nil {
		return nil, err
	}
	if !validateUpload(attachment) {
		return nil, &ValidationError{Violations: []FieldViolation{{Field: "file", Err: ErrInvalidAttachment}}}
	}

	created, err := s.gateway.Create(ctx, payload, attachment)
	if err != nil {
		OrderMutationsFailedTotal.WithLabelValues("create").Inc()
		return nil, fmt.Errorf("create order: %w", err)
	}

	if created == nil {
		// без записи нет и id, заказ найдется только в перечитанной коллекции
		s.refreshAfterMutation(ctx)
		return nil, fmt.Errorf("create order: store returned no record: %w", ErrRepository)
	}

	s.collection.Upsert(*created)
	s.refreshAfterMutation(ctx)

	return created, nil
}

func (s *Service) UpdateOrder(ctx context.Context, sess session.Session, id string, patch entities.OrderPatch) (*entities.Order, error) {
	if err := s.authorize(sess, policy.ActionEdit); err != nil {
		return nil, err
	}
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}

	modify, err := ValidatePatch(patch, s.location)
	if err != nil {
		return nil, err
	}

	updated, err := s.gateway.Update(ctx, id, modify)
	if err != nil {
		OrderMutationsFailedTotal.WithLabelValues("update").Inc()
		return nil, fmt.Errorf("update order %s: %w", id, err)
	}

	if updated == nil {
		// хранилище не вернуло запись - применяем изменения к свежей копии
		current, err := s.fetchOrder(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("update order %s: %w", id, err)
		}
		applied := modify.Apply(*current)
		s.collection.Upsert(applied)
		return &applied, nil
	}

	s.collection.Upsert(*updated)
	s.refreshAfterMutation(ctx)

	return updated, nil
}

func (s *Service) DeleteOrder(ctx context.Context, sess session.Session, id string) error {
	if err := s.authorize(sess, policy.ActionDelete); err != nil {
		return err
	}
	if !isValidOrderID(id) {
		return ErrInvalidOrderID
	}

	if err := s.gateway.Delete(ctx, id); err != nil {
		OrderMutationsFailedTotal.WithLabelValues("delete").Inc()
		return fmt.Errorf("delete order %s: %w", id, err)
	}

	s.collection.Remove(id)
	s.refreshAfterMutation(ctx)

	return nil
}

func (s *Service) AdvanceStatus(ctx context.Context, sess session.Session, id string) (*entities.Order, error) {
	return s.advance(ctx, sess, id, policy.ActionAdvanceStatus, func(o entities.Order) (lifecycle.NextStep, bool) {
		return lifecycle.NextStatus(o.Status, o.Type)
	})
}

func (s *Service) AdvancePayment(ctx context.Context, sess session.Session, id string) (*entities.Order, error) {
	return s.advance(ctx, sess, id, policy.ActionAdvancePayment, func(o entities.Order) (lifecycle.NextStep, bool) {
		return lifecycle.NextPayment(o.PaymentStatus)
	})
}

// advance: политика -> движок -> хранилище -> обновление коллекции.
// При ошибке хранилища локальное состояние не трогается.
func (s *Service) advance(
	ctx context.Context,
	sess session.Session,
	id string,
	action policy.Action,
	next func(entities.Order) (lifecycle.NextStep, bool),
) (*entities.Order, error) {
	if err := s.authorize(sess, action); err != nil {
		return nil, err
	}
	role, _ := sess.CurrentRole()

	current, err := s.fetchOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	step, ok := next(*current)
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrTransitionUnavailable)
	}
	if !policy.Allowed(role, *current, action) {
		return nil, ErrForbidden
	}

	updated, err := s.gateway.Update(ctx, id, step.Modify())
	if err != nil {
		OrderMutationsFailedTotal.WithLabelValues(step.Action.String()).Inc()
		return nil, fmt.Errorf("%s order %s: %w", step.Action, id, err)
	}
	if updated == nil {
		// хранилище не вернуло запись - применяем шаг локально
		applied := step.Apply(*current)
		updated = &applied
	}

	OrderTransitionsTotal.WithLabelValues(step.Action.String(), role.String()).Inc()

	s.collection.Upsert(*updated)
	s.publishTransition(ctx, sess, *current, step)
	s.refreshAfterMutation(ctx)

	return updated, nil
}

func (s *Service) GetOrder(ctx context.Context, sess session.Session, id string) (*Details, error) {
	role, ok := sess.CurrentRole()
	if !ok {
		return nil, ErrUnauthenticated
	}

	found, err := s.fetchOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &Details{
		Order:   *found,
		Actions: policy.Permitted(role, *found),
	}
	if step, ok := lifecycle.NextStatus(found.Status, found.Type); ok {
		details.NextStatus = &step
	}
	if step, ok := lifecycle.NextPayment(found.PaymentStatus); ok {
		details.NextPayment = &step
	}
	return details, nil
}

func (s *Service) ListOrders(_ context.Context, filter entities.OrderFilter) []entities.Order {
	return query.Filter(s.collection.Orders(), filter)
}

func (s *Service) SearchOrders(ctx context.Context, q entities.SearchQuery) ([]entities.Order, error) {
	orders, err := s.gateway.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}
	return orders, nil
}

func (s *Service) Dashboard(_ context.Context) analytics.Dashboard {
	return analytics.BuildDashboard(s.collection.Orders())
}

func (s *Service) Analytics(_ context.Context) analytics.Report {
	return analytics.Build(s.collection.Orders(), s.location)
}

func (s *Service) CalendarMonth(_ context.Context, year int, month time.Month) []query.CalendarCell {
	return query.CalendarMonth(s.collection.Orders(), year, month, s.location)
}

func (s *Service) OrdersOnDate(_ context.Context, day time.Time) []entities.Order {
	return query.OrdersOnDate(s.collection.Orders(), day, s.location)
}

func (s *Service) Location() *time.Location {
	return s.location
}

// Refresh перечитывает всю коллекцию из хранилища.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	orders, err := s.gateway.Search(ctx, entities.SearchQuery{})
	if err != nil {
		return 0, fmt.Errorf("refresh collection: %w", err)
	}
	s.collection.Replace(orders)
	return len(orders), nil
}

// fetchOrder - у хранилища нет get-by-id, ищем в свежей коллекции.
func (s *Service) fetchOrder(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}

	orders, err := s.gateway.Search(ctx, entities.SearchQuery{})
	if err != nil {
		return nil, fmt.Errorf("fetch order %s: %w", id, err)
	}
	s.collection.Replace(orders)

	found, ok := lo.Find(orders, func(o entities.Order) bool {
		return o.ID == id
	})
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
	}
	return &found, nil
}

func (s *Service) authorize(sess session.Session, action policy.Action) error {
	role, ok := sess.CurrentRole()
	if !ok {
		return ErrUnauthenticated
	}
	if !policy.RoleAllows(role, action) {
		return fmt.Errorf("%s by %s: %w", action, role, ErrForbidden)
	}
	return nil
}

func (s *Service) refreshAfterMutation(ctx context.Context) {
	if _, err := s.Refresh(ctx); err != nil {
		s.log.Warn("collection refresh after mutation failed",
			logger.NewField("error", err),
		)
	}
}

func (s *Service) publishTransition(ctx context.Context, sess session.Session, before entities.Order, step lifecycle.NextStep) {
	from, to := step.Transition(before)
	event := entities.LifecycleEvent{
		EventID:    uuid.NewString(),
		OrderID:    before.ID,
		Action:     step.Action,
		From:       from,
		To:         to,
		Actor:      sess.Username,
		OccurredAt: s.clock.Now().UTC(),
	}

	err := s.publisher.PublishLifecycle(ctx, event)
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.Error("publish lifecycle event",
			logger.NewField("error", err),
			logger.NewField("order", event.OrderID),
			logger.NewField("action", event.Action.String()),
		)
	}
}
