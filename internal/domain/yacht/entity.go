package yacht

import (
	"time"

	"github.com/google/uuid"
)

type Yacht struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	title       string
	description string
	yachtType   Type
	capacity    Capacity
	location    string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// Details is the owner-editable part of a yacht.
type Details struct {
	Title       string
	Description string
	Type        string
	Capacity    int
	Location    string
	Status      string
}

func New(ownerID uuid.UUID, d Details, now time.Time) (*Yacht, error) {
	if d.Status == "" {
		d.Status = string(StatusAvailable)
	}
	y := &Yacht{id: uuid.New(), ownerID: ownerID, createdAt: now}
	if err := y.Update(d, now); err != nil {
		return nil, err
	}
	return y, nil
}

func Reconstruct(id, ownerID uuid.UUID, title, description string, t Type, capacity int, location string,
	status Status, createdAt, updatedAt time.Time) *Yacht {
	return &Yacht{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		yachtType:   t,
		capacity:    Capacity(capacity),
		location:    location,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces the editable fields. An empty status keeps the current one.
func (y *Yacht) Update(d Details, now time.Time) error {
	title, err := boundedText(d.Title, MaxTitleLength, ErrTitleRequired, ErrTitleTooLong)
	if err != nil {
		return err
	}
	description, err := boundedText(d.Description, MaxDescriptionLength, ErrDescriptionRequired, ErrDescriptionTooLong)
	if err != nil {
		return err
	}
	location, err := boundedText(d.Location, MaxLocationLength, ErrLocationRequired, ErrLocationTooLong)
	if err != nil {
		return err
	}
	t, err := NewType(d.Type)
	if err != nil {
		return err
	}
	capacity, err := NewCapacity(d.Capacity)
	if err != nil {
		return err
	}
	status := y.status
	if d.Status != "" {
		if status, err = NewStatus(d.Status); err != nil {
			return err
		}
	}

	y.title = title
	y.description = description
	y.location = location
	y.yachtType = t
	y.capacity = capacity
	y.status = status
	y.updatedAt = now
	return nil
}

func (y *Yacht) AcceptsBookings() bool { return y.status.AcceptsBookings() }

func (y *Yacht) ID() uuid.UUID        { return y.id }
func (y *Yacht) OwnerID() uuid.UUID   { return y.ownerID }
func (y *Yacht) Title() string        { return y.title }
func (y *Yacht) Description() string  { return y.description }
func (y *Yacht) Type() Type           { return y.yachtType }
func (y *Yacht) Capacity() Capacity   { return y.capacity }
func (y *Yacht) Location() string     { return y.location }
func (y *Yacht) Status() Status       { return y.status }
func (y *Yacht) CreatedAt() time.Time { return y.createdAt }
func (y *Yacht) UpdatedAt() time.Time { return y.updatedAt }
