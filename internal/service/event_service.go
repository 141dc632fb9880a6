package service

import (
	"context"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/repository"
)

type EventService interface {
	List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	Get(ctx context.Context, id int) (*model.Event, error)
	Create(ctx context.Context, caller model.Caller, req model.CreateEventRequest) (*model.Event, error)
	Update(ctx context.Context, caller model.Caller, id int, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, caller model.Caller, id int) error
}

type EventServiceImpl struct {
	repo   repository.EventRepository
	access *AccessFilter
}

func NewEventService(repo repository.EventRepository, places repository.PlaceRepository) EventService {
	return &EventServiceImpl{repo: repo, access: NewAccessFilter(repo, places)}
}

func (s *EventServiceImpl) List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	return s.repo.List(ctx, filter)
}

func (s *EventServiceImpl) Get(ctx context.Context, id int) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventServiceImpl) Create(ctx context.Context, caller model.Caller, req model.CreateEventRequest) (*model.Event, error) {
	if err := s.access.AuthorizeNewListing(caller); err != nil {
		return nil, err
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Organizer:   req.Organizer,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Capacity:    req.Capacity,
		TicketPrice: req.TicketPrice,
		Images:      req.Images,
		ProviderID:  listingOwner(caller, req.ProviderID),
	}
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) Update(ctx context.Context, caller model.Caller, id int, params model.UpdateEventParams) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.AuthorizeListing(caller, event.ProviderID); err != nil {
		return nil, err
	}
	if !caller.IsAdmin() {
		params.ProviderID = nil
	}

	// validate the event as it will look after the update
	merged := *event
	if params.StartDate != nil {
		merged.StartDate = *params.StartDate
	}
	if params.EndDate != nil {
		merged.EndDate = *params.EndDate
	}
	if params.Capacity != nil {
		merged.Capacity = *params.Capacity
	}
	if params.TicketPrice != nil {
		merged.TicketPrice = *params.TicketPrice
	}
	if err := validateEvent(&merged); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, params)
}

func (s *EventServiceImpl) Delete(ctx context.Context, caller model.Caller, id int) error {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.access.AuthorizeListing(caller, event.ProviderID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func validateEvent(event *model.Event) error {
	if !event.EndDate.After(event.StartDate) {
		return validationError("endDate must be after startDate")
	}
	if event.Capacity < 1 {
		return validationError("capacity must be at least 1")
	}
	if event.TicketPrice < 0 {
		return validationError("ticketPrice must not be negative")
	}
	return nil
}
