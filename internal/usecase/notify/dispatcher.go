package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/message"
	"yacht-charter/internal/domain/review"
	"yacht-charter/internal/domain/shared/events"
	"yacht-charter/internal/pkg/config"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/usecase/shared"
)

const topicBase = "notifications.v1"

// Notification kinds the relay consumers understand.
const (
	KindOwnerNewBooking           = "notify_owner_of_new_booking"
	KindRequesterBookingConfirmed = "notify_requester_of_confirmation"
	KindOwnerNewReview            = "notify_owner_of_new_review"
	KindRecipientNewMessage       = "notify_recipient_of_new_message"
)

var knownKinds = map[string]map[events.Party]string{
	booking.EventCreated:   {events.PartyOwner: KindOwnerNewBooking},
	booking.EventConfirmed: {events.PartyRequester: KindRequesterBookingConfirmed},
	review.EventCreated:    {events.PartyOwner: KindOwnerNewReview},
	message.EventSent:      {events.PartyRecipient: KindRecipientNewMessage},
}

var knownParties = map[events.Party]bool{
	events.PartyOwner:     true,
	events.PartyRequester: true,
	events.PartyRecipient: true,
}

// Policy maps an event name to the parties that get notified.
type Policy map[string][]events.Party

// PolicyFromConfig builds the table from NOTIFY_ON_* settings.
func PolicyFromConfig(cfg config.NotificationConfig) Policy {
	entries := map[string]string{
		booking.EventCreated:   cfg.OnCreated,
		booking.EventConfirmed: cfg.OnConfirmed,
		booking.EventRejected:  cfg.OnRejected,
		booking.EventCancelled: cfg.OnCancelled,
		booking.EventCompleted: cfg.OnCompleted,
		review.EventCreated:    cfg.OnReviewCreated,
		message.EventSent:      cfg.OnMessageSent,
	}
	p := make(Policy, len(entries))
	for name, v := range entries {
		for _, r := range config.Recipients(v) {
			party := events.Party(r)
			if !knownParties[party] {
				slog.Warn("ignoring unknown notification recipient", "event", name, "recipient", r)
				continue
			}
			p[name] = append(p[name], party)
		}
	}
	return p
}

// DefaultPolicy notifies the owner of new bookings and reviews, the
// requester of confirmations and the recipient of each message.
func DefaultPolicy() Policy {
	return Policy{
		booking.EventCreated:   {events.PartyOwner},
		booking.EventConfirmed: {events.PartyRequester},
		review.EventCreated:    {events.PartyOwner},
		message.EventSent:      {events.PartyRecipient},
	}
}

type Dispatcher struct {
	policy Policy
	topic  string
}

func NewDispatcher(policy Policy, topicPrefix string) *Dispatcher {
	return &Dispatcher{policy: policy, topic: topicPrefix + topicBase}
}

func NewDispatcherFromConfig(cfg config.Config) *Dispatcher {
	return NewDispatcher(PolicyFromConfig(cfg.Notification), cfg.Kafka.TopicPrefix)
}

// Plan turns recorded events into outbox jobs. Events nobody is subscribed
// to produce nothing.
func (d *Dispatcher) Plan(evts []events.DomainEvent) ([]shared.NotificationJob, error) {
	var jobs []shared.NotificationJob
	for _, e := range evts {
		parties := d.policy[e.EventName()]
		if len(parties) == 0 {
			continue
		}
		addressed, ok := e.(events.Addressed)
		if !ok {
			continue
		}
		payload, err := json.Marshal(e)
		if err != nil {
			return nil, errs.Wrapf(err, "failed to encode %s", e.EventName())
		}
		for _, party := range parties {
			recipient, ok := addressed.Recipient(party)
			if !ok {
				continue
			}
			jobs = append(jobs, shared.NotificationJob{
				Kind:        kindFor(e.EventName(), party),
				Topic:       d.topic,
				EventName:   e.EventName(),
				AggregateID: e.AggregateID(),
				RecipientID: recipient,
				Payload:     payload,
				OccurredAt:  e.OccurredAt(),
				RunAt:       e.OccurredAt(),
			})
		}
	}
	return jobs, nil
}

// Dispatch writes the jobs for evts through the transaction's outbox.
func (d *Dispatcher) Dispatch(ctx context.Context, repo shared.NotificationRepository, evts []events.DomainEvent) error {
	jobs, err := d.Plan(evts)
	if err != nil {
		return err
	}
	for _, job := range jobs {
		if err := repo.CreateJob(ctx, job); err != nil {
			return err
		}
	}
	return nil
}

func kindFor(event string, party events.Party) string {
	if k, ok := knownKinds[event][party]; ok {
		return k
	}
	return "notify_" + string(party) + ":" + event
}
